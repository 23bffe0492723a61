package stego

import (
	"fmt"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

type dsssMethod struct{}

func init() { register(dsssMethod{}) }

func (dsssMethod) Tag() MethodTag { return TagDSSS }

func (dsssMethod) EncodeArgs() []OptionDescriptor {
	return []OptionDescriptor{
		{Name: "password", Kind: "string", Default: "", Help: "passphrase seeding the PN sequence"},
		{Name: "alpha", Kind: "float", Default: 0.005, Help: "spreading amplitude"},
	}
}

func (dsssMethod) DecodeArgs() []OptionDescriptor {
	return []OptionDescriptor{
		{Name: "password", Kind: "string", Default: "", Help: "passphrase seeding the PN sequence"},
	}
}

func (dsssMethod) Encode(cover sig.Signal, payload []int, opts SideParams) (sig.Signal, SideParams, error) {
	if len(payload) > len(cover.Samples) {
		return sig.Signal{}, nil, fmt.Errorf("%w: %d payload bits exceed cover length %d", ErrSecretTooLarge, len(payload), len(cover.Samples))
	}
	password := opts.String("password", "")
	alpha := opts.Float("alpha", 0.005)

	m := sig.SpreadBits(payload, len(cover.Samples), sig.BipolarBit)
	pn := sig.PN(password, len(cover.Samples))

	cn := sig.CentreNormalise(cover.Samples)
	combined := make([]float64, len(cn))
	for i := range combined {
		combined[i] = cn[i] + alpha*m[i]*pn[i]
	}

	final := sig.CentreNormalise(combined)
	final = sig.ToDType(final, sig.F64, cover.DType)
	stego := sig.NewSignal(final, cover.DType, cover.SampleRate)

	side := SideParams{"l": len(payload), "password": password, "alpha": alpha}
	return stego, side, nil
}

func (dsssMethod) Decode(stego sig.Signal, side SideParams) ([]int, error) {
	l := side.L()
	if l == 0 {
		return []int{}, nil
	}
	password := side.String("password", "")
	pn := sig.PN(password, len(stego.Samples))

	stegoSegs, _ := sig.SplitIntoNEqualWithRest(stego.Samples, l)
	pnSegs, _ := sig.SplitIntoNEqualWithRest(pn, l)

	out := make([]int, l)
	for i := 0; i < l; i++ {
		var sum float64
		seg := stegoSegs[i]
		pnSeg := pnSegs[i]
		for j := range seg {
			sum += seg[j] * pnSeg[j]
		}
		if sum > 0 {
			out[i] = 1
		}
	}
	return out, nil
}
