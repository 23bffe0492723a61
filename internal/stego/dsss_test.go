package stego

import (
	"testing"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

func repeatSignal(s sig.Signal, times int) sig.Signal {
	out := make([]float64, 0, s.Len()*times)
	for i := 0; i < times; i++ {
		out = append(out, s.Samples...)
	}
	return sig.NewSignal(out, s.DType, s.SampleRate)
}

// S6 from spec.md: DSSS round trip and wrong-password BER near 50%.
func TestDSSSRoundTrip(t *testing.T) {
	cover := repeatSignal(seededInt16Cover(7, 131072), 3)
	payload := bitsFromString("42")

	m, _ := Lookup(TagDSSS)
	stego, side, err := m.Encode(cover, payload, SideParams{"password": "some password 123", "alpha": 0.005})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := m.Decode(stego, side)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !equalBits(decoded, payload) {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", decoded, payload)
	}

	wrongSide := SideParams{"l": side.L(), "password": "a different password"}
	wrongDecoded, _ := m.Decode(stego, wrongSide)
	mismatches := 0
	for i := range payload {
		if payload[i] != wrongDecoded[i] {
			mismatches++
		}
	}
	ratio := float64(mismatches) / float64(len(payload))
	if ratio < 0.2 {
		t.Fatalf("expected a wrong password to scramble most bits, got mismatch ratio %f", ratio)
	}
}

func TestDSSSSecretTooLarge(t *testing.T) {
	cover := seededInt16Cover(8, 8)
	payload := bitsFromString("too large for eight samples")

	m, _ := Lookup(TagDSSS)
	_, _, err := m.Encode(cover, payload, SideParams{})
	if err == nil {
		t.Fatalf("expected SecretTooLarge")
	}
}
