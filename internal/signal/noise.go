package signal

import (
	"math"
	"math/rand/v2"
)

// AddNoise returns a copy of x with zero-mean Gaussian noise added,
// scaled so the result sits at the requested SNR in dB relative to
// the (already centred/normalised) input signal's power.
func AddNoise(x []float64, snrDB float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	var signalPower float64
	for _, v := range x {
		signalPower += v * v
	}
	signalPower /= float64(len(x))
	noisePower := signalPower / math.Pow(10, snrDB/10)
	sigma := math.Sqrt(noisePower)
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 1))
	}
	for i, v := range x {
		out[i] = v + sigma*rng.NormFloat64()
	}
	return out
}
