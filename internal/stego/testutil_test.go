package stego

import (
	"math/rand/v2"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

// seededInt16Cover returns a deterministic pseudo-random int16-scale
// cover of length n, mirroring the seeded fixtures spec.md's S3-S8
// scenarios describe.
func seededInt16Cover(seed uint64, n int) sig.Signal {
	rng := rand.New(rand.NewPCG(seed, seed^0xabcdef))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(rng.IntN(65536) - 32768)
	}
	return sig.NewSignal(samples, sig.I16, 44100)
}

func bitsFromString(s string) []int {
	out := make([]int, 0, len(s)*8)
	for _, b := range []byte(s) {
		for i := 7; i >= 0; i-- {
			out = append(out, int((b>>uint(i))&1))
		}
	}
	return out
}

func equalBits(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
