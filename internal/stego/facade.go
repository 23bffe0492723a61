package stego

import (
	"fmt"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
	"github.com/linuxmatters/audiosteg/internal/stats"
)

// Facade owns cover and payload for the duration of one encode or
// decode call, remembers the cover's original dtype, drops any
// channel beyond 0, and exposes the stat bundle on demand. It never
// mutates its inputs in place; each method borrows them immutably and
// returns a freshly owned stego signal.
type Facade struct {
	Tag     MethodTag
	method  Method
	cover   sig.Signal
	payload []int
	stego   sig.Signal
	side    SideParams
}

// NewFacade builds a façade for tag over a (possibly multi-channel)
// cover, reducing it to channel 0 first.
func NewFacade(tag MethodTag, cover sig.Signal, channels int, payload []int) (*Facade, error) {
	m, err := Lookup(tag)
	if err != nil {
		return nil, err
	}
	mono := cover
	mono.Samples = sig.Channel0(cover.Samples, channels)
	return &Facade{Tag: tag, method: m, cover: mono, payload: payload}, nil
}

// Encode runs the method's encoder and remembers the result for
// StatBundle.
func (f *Facade) Encode(opts SideParams) (sig.Signal, SideParams, error) {
	stego, side, err := f.method.Encode(f.cover, f.payload, opts)
	if err != nil {
		return sig.Signal{}, nil, err
	}
	f.stego = stego
	f.side = side
	return stego, side, nil
}

// Decode runs the method's decoder against an externally supplied
// stego signal (e.g. after a robustness modification) and side-params.
func (f *Facade) Decode(stego sig.Signal, side SideParams) ([]int, error) {
	return f.method.Decode(stego, side)
}

// StatBundle computes distortion/BER metrics for the last Encode call
// against a decode of the same stego, or against an explicit decoded
// payload if provided.
func (f *Facade) StatBundle(decoded []int) (stats.StatBundle, error) {
	if f.stego.Samples == nil {
		return stats.StatBundle{}, fmt.Errorf("stat bundle requested before encode")
	}
	if decoded == nil {
		var err error
		decoded, err = f.method.Decode(f.stego, f.side)
		if err != nil {
			return stats.StatBundle{}, err
		}
	}
	return stats.Compute(f.cover.Samples, f.stego.Samples, f.payload, decoded), nil
}

// EncodeArgs/DecodeArgs expose the method's CLI option descriptors.
func (f *Facade) EncodeArgs() []OptionDescriptor { return f.method.EncodeArgs() }
func (f *Facade) DecodeArgs() []OptionDescriptor { return f.method.DecodeArgs() }
