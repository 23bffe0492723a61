package eval

import (
	"math"
	"testing"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

func syntheticSignal(n int) sig.Signal {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(float64(i) * 0.05)
	}
	return sig.NewSignal(samples, sig.I16, 44100)
}

func TestResampleRoundTripPreservesLength(t *testing.T) {
	s := syntheticSignal(1000)
	out := resampleRoundTrip(s)
	if len(out.Samples) != len(s.Samples) {
		t.Fatalf("length changed: got %d, want %d", len(out.Samples), len(s.Samples))
	}
}

func TestQuantizeDowngradeStepsDType(t *testing.T) {
	if got := stepDown(sig.I16); got != sig.U8 {
		t.Fatalf("stepDown(I16) = %v, want U8", got)
	}
	if got := stepDown(sig.I32); got != sig.I16 {
		t.Fatalf("stepDown(I32) = %v, want I16", got)
	}
	s := syntheticSignal(500)
	out := quantizeDowngrade(s)
	if len(out.Samples) != len(s.Samples) {
		t.Fatalf("quantizeDowngrade changed length")
	}
	if out.DType != s.DType {
		t.Fatalf("quantizeDowngrade must preserve the original dtype, got %v", out.DType)
	}
}

func TestAddNoisePreservesLengthAndDegradesSignal(t *testing.T) {
	s := syntheticSignal(2000)
	out := addNoise(s, 10)
	if len(out.Samples) != len(s.Samples) {
		t.Fatalf("addNoise changed length")
	}
	var diff float64
	for i := range s.Samples {
		diff += math.Abs(out.Samples[i] - s.Samples[i])
	}
	if diff == 0 {
		t.Fatalf("addNoise did not perturb the signal")
	}
}

func TestButterworthAtQuarterRatePreservesLength(t *testing.T) {
	s := syntheticSignal(2000)
	low := butterworthAtQuarterRate(s, sig.LowPass)
	high := butterworthAtQuarterRate(s, sig.HighPass)
	if len(low.Samples) != len(s.Samples) || len(high.Samples) != len(s.Samples) {
		t.Fatalf("butterworth changed signal length")
	}
}

func TestBuildModificationsListsExpectedNames(t *testing.T) {
	basic := buildModifications(false)
	names := map[string]bool{}
	for _, m := range basic {
		names[m.Name] = true
	}
	for _, want := range []string{"identity", "resample_half_then_back", "quantize_downgrade", "noise_20db", "noise_10db", "mp3_128kbps", "mp3_96kbps", "butterworth_lowpass_sr4", "butterworth_highpass_sr4"} {
		if !names[want] {
			t.Fatalf("missing modification %q in basic list", want)
		}
	}
	if names["noise_15db"] {
		t.Fatalf("basic list should not include noise_15db")
	}

	extended := buildModifications(true)
	if len(extended) != len(basic)+1 {
		t.Fatalf("extended list should add exactly one modification (15dB noise), got %d vs %d", len(extended), len(basic))
	}
}
