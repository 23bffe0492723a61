package logging

import (
	"math"
	"strings"
	"testing"
)

func TestFormatMetric(t *testing.T) {
	cases := []struct {
		value    float64
		decimals int
		want     string
	}{
		{1.2345, 2, "1.23"},
		{0, 2, "0.00"},
		{math.NaN(), 2, MissingValue},
		{math.Inf(1), 2, MissingValue},
		{0.00005, 2, "5.00e-05"},
	}
	for _, c := range cases {
		got := formatMetric(c.value, c.decimals)
		if got != c.want {
			t.Errorf("formatMetric(%v, %d) = %q, want %q", c.value, c.decimals, got, c.want)
		}
	}
}

func TestFormatMetricSigned(t *testing.T) {
	if got := formatMetricSigned(2.5, 1); got != "+2.5" {
		t.Errorf("formatMetricSigned(2.5) = %q, want +2.5", got)
	}
	if got := formatMetricSigned(-1.2, 1); got != "-1.2" {
		t.Errorf("formatMetricSigned(-1.2) = %q, want -1.2", got)
	}
	if got := formatMetricSigned(math.NaN(), 1); got != MissingValue {
		t.Errorf("formatMetricSigned(NaN) = %q, want %q", got, MissingValue)
	}
}

func TestFormatMetricWithUnit(t *testing.T) {
	if got := formatMetricWithUnit(3.0, 1, "dB"); got != "3.0 dB" {
		t.Errorf("formatMetricWithUnit = %q, want '3.0 dB'", got)
	}
	if got := formatMetricWithUnit(math.NaN(), 1, "dB"); got != MissingValue {
		t.Errorf("formatMetricWithUnit(NaN) = %q, want %q", got, MissingValue)
	}
}

func TestMetricTableString(t *testing.T) {
	table := NewMetricTable([]string{"identity", "noise_10db"})
	table.AddMetricRow("SNR", []float64{42.0, 18.5}, 1, "dB", "")
	table.AddMetricRow("BER", []float64{0, 6.25}, 2, "%", "")

	out := table.String()
	if !strings.Contains(out, "identity") || !strings.Contains(out, "noise_10db") {
		t.Fatalf("table missing headers: %q", out)
	}
	if !strings.Contains(out, "42.0") || !strings.Contains(out, "18.5") {
		t.Fatalf("table missing SNR values: %q", out)
	}
	if !strings.Contains(out, "6.25") {
		t.Fatalf("table missing BER value: %q", out)
	}
}

func TestMetricTableEmptyIsEmptyString(t *testing.T) {
	table := NewMetricTable([]string{"identity"})
	if got := table.String(); got != "" {
		t.Fatalf("empty table should render empty string, got %q", got)
	}
}

func TestMetricTableMissingValuesAsDash(t *testing.T) {
	table := NewMetricTable([]string{"a", "b"})
	table.AddRow("only one", []string{"1.0"}, "", "")
	out := table.String()
	if !strings.Contains(out, "-") {
		t.Fatalf("expected missing column to render as dash: %q", out)
	}
}

func TestMetricTableInterpretationColumn(t *testing.T) {
	table := NewMetricTable([]string{"identity"})
	table.AddRow("BER", []string{"0.00"}, "%", "lossless")
	out := table.String()
	if !strings.Contains(out, "Interpretation") || !strings.Contains(out, "lossless") {
		t.Fatalf("expected interpretation column, got %q", out)
	}
}
