package signal

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// rfftMag returns |rfft(s)|, the half-spectrum magnitude (length
// len(s)/2+1) gonum's real-input FFT produces.
func rfftMag(s []float64) []float64 {
	n := len(s)
	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, s)
	mag := make([]float64, len(coeff))
	for i, c := range coeff {
		mag[i] = math.Hypot(real(c), imag(c))
	}
	return mag
}

// Cepstrum computes the plain cepstrum c = irfft(log(|rfft(s)|)),
// used by echo_single's decoder.
func Cepstrum(s []float64) []float64 {
	n := len(s)
	if n == 0 {
		return nil
	}
	mag := rfftMag(s)
	logMag := make([]complex128, len(mag))
	for i, m := range mag {
		logMag[i] = complex(math.Log(m+1e-12), 0)
	}
	fft := fourier.NewFFT(n)
	return fft.Sequence(nil, logMag)
}

// PowerCepstrum computes c = irfft(log(|rfft(s)|)^2), used by the
// autocepstrum decoders (echo_bipolar, echo_bf, echo_bipolar_bf).
func PowerCepstrum(s []float64) []float64 {
	n := len(s)
	if n == 0 {
		return nil
	}
	mag := rfftMag(s)
	logMagSq := make([]complex128, len(mag))
	for i, m := range mag {
		l := math.Log(m + 1e-12)
		logMagSq[i] = complex(l*l, 0)
	}
	fft := fourier.NewFFT(n)
	return fft.Sequence(nil, logMagSq)
}

// Autocorrelation returns the autocorrelation of x: full convolution
// of x with its reverse, sliced from the zero-lag point onward, i.e.
// correlate(x, x, "full")[len(x)-1:].
func Autocorrelation(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	for lag := 0; lag < n; lag++ {
		var sum float64
		for i := 0; i < n-lag; i++ {
			sum += x[i] * x[i+lag]
		}
		out[lag] = sum
	}
	return out
}

// Autocepstrum computes the autocorrelation of a segment's power
// cepstrum: a = correlate(c, c, full)[len(c)-1:] where c = PowerCepstrum(s).
func Autocepstrum(s []float64) []float64 {
	c := PowerCepstrum(s)
	return Autocorrelation(c)
}

// FullFFT and FullIFFT expose the complex, full-spectrum transform
// used by phase coding, which needs arbitrary phase manipulation
// rather than the Hermitian-symmetric rfft/irfft pair above.
func FullFFT(s []float64) []complex128 {
	n := len(s)
	in := make([]complex128, n)
	for i, v := range s {
		in[i] = complex(v, 0)
	}
	cfft := fourier.NewCmplxFFT(n)
	return cfft.Coefficients(nil, in)
}

func FullIFFT(spec []complex128) []float64 {
	n := len(spec)
	cfft := fourier.NewCmplxFFT(n)
	out := cfft.Sequence(nil, spec)
	re := make([]float64, n)
	for i, c := range out {
		re[i] = real(c)
	}
	return re
}
