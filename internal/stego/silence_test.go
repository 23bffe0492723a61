package stego

import (
	"math/rand/v2"
	"testing"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

// S7 from spec.md: synthetic cover with interleaved silent and noisy
// runs, 8-bit payload.
func syntheticSilenceCover() sig.Signal {
	rng := rand.New(rand.NewPCG(9, 9))
	var samples []float64
	for i := 0; i < 20; i++ {
		for j := 0; j < 650; j++ {
			samples = append(samples, 0)
		}
		for j := 0; j < 300; j++ {
			samples = append(samples, float64(rng.IntN(30000)-15000))
		}
	}
	return sig.NewSignal(samples, sig.I16, 44100)
}

func TestSilenceIntervalRoundTrip(t *testing.T) {
	cover := syntheticSilenceCover()
	payload := bitsFromString("A") // 8 bits

	m, _ := Lookup(TagSilenceInterval)
	stego, side, err := m.Encode(cover, payload, SideParams{"min_silence_len": 400})
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
}
