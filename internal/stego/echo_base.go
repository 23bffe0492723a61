package stego

import (
	"fmt"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

// echoParams is the parameter set shared by all four echo variants.
type echoParams struct {
	D0          int
	D1          int
	Alpha       float64
	DecayRate   float64
	DelaySearch string
}

func parseEchoParams(opts SideParams) echoParams {
	d0 := opts.Int("d0", 150)
	return echoParams{
		D0:          d0,
		D1:          opts.Int("d1", d0+50),
		Alpha:       opts.Float("alpha", 0.5),
		DecayRate:   opts.Float("decay_rate", 0.85),
		DelaySearch: opts.String("delay_search", ""),
	}
}

func echoEncodeArgs() []OptionDescriptor {
	return []OptionDescriptor{
		{Name: "d0", Kind: "int", Default: 150, Help: "delay encoding bit 0, in samples"},
		{Name: "d1", Kind: "int", Default: 200, Help: "delay encoding bit 1, in samples"},
		{Name: "alpha", Kind: "float", Default: 0.5, Help: "echo amplitude"},
		{Name: "decay_rate", Kind: "float", Default: 0.85, Help: "secondary echo attenuation"},
		{Name: "delay_search", Kind: "string", Default: "", Help: "\"\", \"bruteforce\" or \"basinhopping\""},
	}
}

func echoDecodeArgs() []OptionDescriptor {
	return []OptionDescriptor{
		{Name: "d0", Kind: "int", Default: 150, Help: "delay encoding bit 0, in samples"},
		{Name: "d1", Kind: "int", Default: 200, Help: "delay encoding bit 1, in samples"},
	}
}

// delayForward returns a copy of x delayed by d samples: zero-padded
// at the start, tail truncated to preserve length.
func delayForward(x []float64, d int) []float64 {
	out := make([]float64, len(x))
	if d <= 0 || d >= len(x) {
		return out
	}
	copy(out[d:], x[:len(x)-d])
	return out
}

// delayBackward returns a copy of x advanced by d samples (an
// anti-causal, "leading" echo): zero-padded at the end.
func delayBackward(x []float64, d int) []float64 {
	out := make([]float64, len(x))
	if d <= 0 || d >= len(x) {
		return out
	}
	copy(out[:len(x)-d], x[d:])
	return out
}

func addScaled(dst []float64, src []float64, scale float64) {
	for i := range dst {
		dst[i] += src[i] * scale
	}
}

// kernelFunc builds the additive echo kernel for one bit's delay.
type kernelFunc func(cover []float64, delay int, p echoParams) []float64

// cepstrumFunc computes the decoder's lag-domain representation of a
// segment (plain cepstrum for echo_single, autocepstrum otherwise).
type cepstrumFunc func(segment []float64) []float64

// compareFunc decides the bit from the lag-domain representation.
type compareFunc func(c []float64, d0, d1 int) int

// echoMethod is the generic engine all four echo variants share:
// kernel shape, decode transform and decode comparison differ;
// segmenting, masking, capacity checks and delay search do not.
type echoMethod struct {
	tag     MethodTag
	kernel  kernelFunc
	ceps    cepstrumFunc
	compare compareFunc
}

func (e echoMethod) Tag() MethodTag                    { return e.tag }
func (e echoMethod) EncodeArgs() []OptionDescriptor    { return echoEncodeArgs() }
func (e echoMethod) DecodeArgs() []OptionDescriptor    { return echoDecodeArgs() }

func (e echoMethod) checkParams(p echoParams, coverLen, payloadLen int) error {
	if p.D0 <= 0 || p.D1 <= p.D0 {
		return fmt.Errorf("%w: require 0 < d0 < d1 (got d0=%d, d1=%d)", ErrInvalidParameter, p.D0, p.D1)
	}
	if coverLen < 1024*payloadLen {
		return fmt.Errorf("%w: cover length %d below 1024*%d required for %s", ErrSecretTooLarge, coverLen, payloadLen, e.tag)
	}
	return nil
}

// encodeWithParams runs one concrete (d0,d1) candidate, used directly
// by Encode and repeatedly by the delay-search strategies.
func (e echoMethod) encodeWithParams(cover sig.Signal, payload []int, p echoParams) sig.Signal {
	cov := cover.Samples

	out := make([]float64, len(cov))
	copy(out, cov)

	if len(payload) > 0 {
		kernel0 := e.kernel(cov, p.D0, p)
		kernel1 := e.kernel(cov, p.D1, p)
		mask := sig.SpreadBits(payload, len(cov), sig.IdentityBit)
		for i := range out {
			out[i] += kernel1[i]*mask[i] + kernel0[i]*(1-mask[i])
		}
	}

	final := sig.CentreNormalise(out)
	final = sig.ToDType(final, sig.F64, cover.DType)
	return sig.NewSignal(final, cover.DType, cover.SampleRate)
}

func (e echoMethod) Encode(cover sig.Signal, payload []int, opts SideParams) (sig.Signal, SideParams, error) {
	p := parseEchoParams(opts)
	if err := e.checkParams(p, len(cover.Samples), len(payload)); err != nil {
		return sig.Signal{}, nil, err
	}

	if p.DelaySearch != "" {
		best, err := searchDelays(e, cover, payload, p)
		if err != nil {
			return sig.Signal{}, nil, err
		}
		p = best
	}

	stego := e.encodeWithParams(cover, payload, p)
	side := SideParams{
		"l":          len(payload),
		"d0":         p.D0,
		"d1":         p.D1,
		"alpha":      p.Alpha,
		"decay_rate": p.DecayRate,
	}
	return stego, side, nil
}

func (e echoMethod) Decode(stego sig.Signal, side SideParams) ([]int, error) {
	l := side.L()
	if l == 0 {
		return []int{}, nil
	}
	d0 := side.Int("d0", 150)
	d1 := side.Int("d1", d0+50)

	segments, _ := sig.SplitIntoNEqualWithRest(stego.Samples, l)
	out := make([]int, l)
	for i, seg := range segments {
		c := e.ceps(seg)
		out[i] = e.compare(c, d0, d1)
	}
	return out, nil
}
