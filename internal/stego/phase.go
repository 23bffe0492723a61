package stego

import (
	"fmt"
	"math"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

type phaseMethod struct{}

func init() { register(phaseMethod{}) }

func (phaseMethod) Tag() MethodTag { return TagPhase }

func (phaseMethod) EncodeArgs() []OptionDescriptor { return nil }
func (phaseMethod) DecodeArgs() []OptionDescriptor { return nil }

// phaseSegmentLen returns N = 2 * 2^ceil(log2(2*l)), the rounded-up
// power-of-two segment length phase coding requires.
func phaseSegmentLen(l int) int {
	if l <= 0 {
		return 2
	}
	exp := math.Ceil(math.Log2(2 * float64(l)))
	return 2 * int(math.Pow(2, exp))
}

func (phaseMethod) Encode(cover sig.Signal, payload []int, opts SideParams) (sig.Signal, SideParams, error) {
	l := len(payload)
	n := phaseSegmentLen(l)
	if n > len(cover.Samples) {
		return sig.Signal{}, nil, fmt.Errorf("%w: segment length %d exceeds cover length %d", ErrSecretTooLarge, n, len(cover.Samples))
	}

	pieces, rest := sig.SplitIntoPiecesOfLenNWithRest(cover.Samples, n)
	if len(pieces) == 0 {
		return sig.Signal{}, nil, fmt.Errorf("%w: cover too short for phase coding", ErrSecretTooLarge)
	}

	mags := make([][]float64, len(pieces))
	phases := make([][]float64, len(pieces))
	for i, seg := range pieces {
		spec := sig.FullFFT(seg)
		mags[i] = make([]float64, n)
		phases[i] = make([]float64, n)
		for k, c := range spec {
			mags[i][k] = math.Hypot(real(c), imag(c))
			phases[i][k] = math.Atan2(imag(c), real(c))
		}
	}

	diffs := make([][]float64, max0(len(pieces)-1))
	for i := 0; i < len(pieces)-1; i++ {
		diffs[i] = make([]float64, n)
		for k := 0; k < n; k++ {
			diffs[i][k] = phases[i+1][k] - phases[i][k]
		}
	}

	half := n / 2
	for j := 0; j < l; j++ {
		k := half - l + j
		var val float64
		if payload[j] == 1 {
			val = -math.Pi / 2
		} else {
			val = math.Pi / 2
		}
		phases[0][k] = val
		mirrorK := half + l - j
		if mirrorK < n {
			phases[0][mirrorK] = -val
		}
	}

	for i := 1; i < len(pieces); i++ {
		for k := 0; k < n; k++ {
			phases[i][k] = phases[i-1][k] + diffs[i-1][k]
		}
	}

	out := make([]float64, 0, len(cover.Samples))
	for i := range pieces {
		spec := make([]complex128, n)
		for k := 0; k < n; k++ {
			spec[k] = complex(mags[i][k]*math.Cos(phases[i][k]), mags[i][k]*math.Sin(phases[i][k]))
		}
		out = append(out, sig.FullIFFT(spec)...)
	}
	out = append(out, rest...)

	final := sig.CentreNormalise(out)
	final = sig.ToDType(final, sig.F64, cover.DType)
	stego := sig.NewSignal(final, cover.DType, cover.SampleRate)

	side := SideParams{"l": l}
	return stego, side, nil
}

func (phaseMethod) Decode(stego sig.Signal, side SideParams) ([]int, error) {
	l := side.L()
	if l == 0 {
		return []int{}, nil
	}
	n := phaseSegmentLen(l)
	if n > len(stego.Samples) {
		n = len(stego.Samples)
	}
	seg := stego.Samples[:n]
	spec := sig.FullFFT(seg)

	half := n / 2
	out := make([]int, l)
	for j := 0; j < l; j++ {
		k := half - l + j
		if k < 0 || k >= len(spec) {
			continue
		}
		angle := math.Atan2(imag(spec[k]), real(spec[k]))
		if angle < 0 {
			out[j] = 1
		} else {
			out[j] = 0
		}
	}
	return out, nil
}

func max0(x int) int {
	if x < 0 {
		return 0
	}
	return x
}
