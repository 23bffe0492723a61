// Package stats computes the distortion and bit-error metrics
// reported after every encode/decode round: MSE, RMSD, SNR-dB,
// PSNR-dB and BER-%.
package stats

import "math"

// StatBundle is the metric set computed after each encode/decode
// round, as spec.md §3 names it.
type StatBundle struct {
	SNRdB      float64
	PSNRdB     float64
	MSE        float64
	RMSD       float64
	BERPercent float64
	SourceLen  int
	SecretLen  int
	StegoLen   int
}

// MSE returns the mean squared error between two equal-length
// signals.
func MSE(a, b []float64) float64 {
	n := minLen(a, b)
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum / float64(n)
}

// RMSD returns sqrt(MSE(a, b)).
func RMSD(a, b []float64) float64 {
	return math.Sqrt(MSE(a, b))
}

// SNRdB returns the signal-to-noise ratio in dB of b relative to a
// (a = reference/cover, b = cover+noise/stego).
func SNRdB(a, b []float64) float64 {
	n := minLen(a, b)
	if n == 0 {
		return math.NaN()
	}
	var signalPower, noisePower float64
	for i := 0; i < n; i++ {
		signalPower += a[i] * a[i]
		d := a[i] - b[i]
		noisePower += d * d
	}
	if noisePower == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(signalPower/noisePower)
}

// PSNRdB returns the peak signal-to-noise ratio in dB, using the
// reference signal's peak absolute value as the "peak" term.
func PSNRdB(a, b []float64) float64 {
	mse := MSE(a, b)
	if mse == 0 {
		return math.Inf(1)
	}
	var peak float64
	for _, v := range a {
		if m := math.Abs(v); m > peak {
			peak = m
		}
	}
	if peak == 0 {
		return math.NaN()
	}
	return 20*math.Log10(peak) - 10*math.Log10(mse)
}

// BERPercent returns the percentage of mismatched bits between sent
// and decoded payloads, 0-100.
func BERPercent(sent, decoded []int) float64 {
	n := len(sent)
	if n == 0 {
		return 0
	}
	mismatches := 0
	for i := 0; i < n && i < len(decoded); i++ {
		if sent[i] != decoded[i] {
			mismatches++
		}
	}
	mismatches += absInt(len(decoded) - len(sent))
	if mismatches > n {
		mismatches = n
	}
	return 100 * float64(mismatches) / float64(n)
}

// Compute assembles a full StatBundle for one encode/decode round.
func Compute(cover, stego []float64, sent, decoded []int) StatBundle {
	return StatBundle{
		SNRdB:      SNRdB(cover, stego),
		PSNRdB:     PSNRdB(cover, stego),
		MSE:        MSE(cover, stego),
		RMSD:       RMSD(cover, stego),
		BERPercent: BERPercent(sent, decoded),
		SourceLen:  len(cover),
		SecretLen:  len(sent),
		StegoLen:   len(stego),
	}
}

func minLen(a, b []float64) int {
	if len(a) < len(b) {
		return len(a)
	}
	return len(b)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
