// Package signal implements the numeric primitives the encode/decode
// methods are built from: dtype-preserving casts, segmenters, the bit
// spreader, cepstrum helpers, a deterministic PN generator, and the
// noise/resample/filter primitives used only by the evaluation harness.
package signal

import (
	"math"
)

// DType identifies a PCM sample's storage width and kind. Only the
// values reachable from a WAV read or an explicit cast are valid.
type DType int

const (
	U8 DType = iota
	I16
	I32
	I64
	F16
	F32
	F64
)

// String renders the dtype the way side-params and error messages do.
func (d DType) String() string {
	switch d {
	case U8:
		return "u8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F16:
		return "f16"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the dtype is a floating-point kind.
func (d DType) IsFloat() bool {
	return d == F16 || d == F32 || d == F64
}

// BitWidth returns the storage width in bits, used by LSB's depth bound.
func (d DType) BitWidth() int {
	switch d {
	case U8:
		return 8
	case I16, F16:
		return 16
	case I32, F32:
		return 32
	case I64, F64:
		return 64
	default:
		return 0
	}
}

// maxval returns the maximum magnitude representable by an integer
// dtype, used to scale samples into the f64 domain and back. Float
// dtypes are already on the [-1, 1] PCM convention and map 1-to-1.
func maxval(d DType) float64 {
	switch d {
	case U8:
		return 127.5 // centred u8: (255)/2, stored as offset-binary in PCM math below
	case I16:
		return float64(math.MaxInt16)
	case I32:
		return float64(math.MaxInt32)
	case I64:
		return float64(math.MaxInt64)
	default:
		return 1.0
	}
}

// Signal is a single-channel sequence of samples carried internally
// as f64, tagged with the dtype it was cast from/to and its sample
// rate. All method math happens on Samples; dtype only matters at the
// read/write and ToDType boundaries.
type Signal struct {
	Samples    []float64
	DType      DType
	SampleRate int
}

// NewSignal wraps samples already in f64 with their declared dtype.
func NewSignal(samples []float64, dtype DType, sampleRate int) Signal {
	return Signal{Samples: samples, DType: dtype, SampleRate: sampleRate}
}

// Len returns the sample count.
func (s Signal) Len() int { return len(s.Samples) }

// Clone returns a deep copy so callers can mutate without aliasing.
func (s Signal) Clone() Signal {
	cp := make([]float64, len(s.Samples))
	copy(cp, s.Samples)
	return Signal{Samples: cp, DType: s.DType, SampleRate: s.SampleRate}
}

// Centre subtracts the mean from every sample: centre(x) = x - mean(x).
func Centre(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	mean := sum / float64(len(x))
	for i, v := range x {
		out[i] = v - mean
	}
	return out
}

// Normalise divides by the peak absolute value: normalise(x) = x / max(|x|).
// A signal whose peak is exactly zero is returned unchanged.
func Normalise(x []float64) []float64 {
	out := make([]float64, len(x))
	var peak float64
	for _, v := range x {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		copy(out, x)
		return out
	}
	for i, v := range x {
		out[i] = v / peak
	}
	return out
}

// CentreNormalise applies Centre then Normalise, the standard
// penultimate step before a dtype-preserving cast on the encode path.
func CentreNormalise(x []float64) []float64 {
	return Normalise(Centre(x))
}

// ToDType casts f64 samples scaled for dtype `from` into f64 samples
// scaled for dtype `to`: x is first unscaled to the [-1, 1] domain via
// maxval(from), then rescaled by maxval(to). Float dtypes have
// maxval == 1, so float-to-float casts are the identity.
func ToDType(x []float64, from, to DType) []float64 {
	out := make([]float64, len(x))
	if from == to {
		copy(out, x)
		return out
	}
	fromMax := maxval(from)
	toMax := maxval(to)
	for i, v := range x {
		f := v / fromMax
		y := f * toMax
		if !to.IsFloat() {
			y = math.Round(y)
		}
		out[i] = y
	}
	return out
}

// Channel0 reduces a possibly multi-channel, interleaved sample slice
// to channel 0, matching the façade's "drop channel >0" contract.
func Channel0(interleaved []float64, channels int) []float64 {
	if channels <= 1 {
		out := make([]float64, len(interleaved))
		copy(out, interleaved)
		return out
	}
	n := len(interleaved) / channels
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = interleaved[i*channels]
	}
	return out
}
