// Package stego implements the nine encode/decode methods, the
// shared delay-search strategies the echo variants use, and the
// method façade that dispatches by tag and computes the stat bundle.
package stego

import (
	"fmt"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

// MethodTag names one of the nine methods. Never mutated once set.
type MethodTag string

const (
	TagLSB             MethodTag = "lsb"
	TagEchoSingle      MethodTag = "echo_single"
	TagEchoBipolar     MethodTag = "echo_bipolar"
	TagEchoBF          MethodTag = "echo_bf"
	TagEchoBipolarBF   MethodTag = "echo_bipolar_bf"
	TagPhase           MethodTag = "phase"
	TagDSSS            MethodTag = "dsss"
	TagSilenceInterval MethodTag = "silence_interval"
	TagToneInsertion   MethodTag = "tone_insertion"
)

// AllTags lists every method tag, in the order the CLI and
// evaluation harness enumerate them.
var AllTags = []MethodTag{
	TagLSB, TagEchoSingle, TagEchoBipolar, TagEchoBF, TagEchoBipolarBF,
	TagPhase, TagDSSS, TagSilenceInterval, TagToneInsertion,
}

// SideParams is a mapping of recognized option names to scalar
// values (ints, floats, strings), transmitted out-of-band between
// encode and decode. `l` (payload bit length) is always present.
type SideParams map[string]any

func (p SideParams) Int(key string, def int) int {
	if v, ok := p[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return def
}

func (p SideParams) Float(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return def
}

func (p SideParams) String(key string, def string) string {
	if v, ok := p[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func (p SideParams) Bool(key string, def bool) bool {
	if v, ok := p[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// L returns the payload bit length side-param, required by every
// method.
func (p SideParams) L() int { return p.Int("l", 0) }

// OptionDescriptor documents one CLI-facing option of a method,
// surfaced by EncodeArgs/DecodeArgs for introspection (the `describe`
// command renders these; kong's struct-tag flags are the actual
// encode/decode input path).
type OptionDescriptor struct {
	Name    string
	Kind    string // "int", "float", "string", "bool"
	Default any
	Help    string
}

// Method is the contract every encoder/decoder implements.
type Method interface {
	Tag() MethodTag
	Encode(cover sig.Signal, payload []int, opts SideParams) (stego sig.Signal, side SideParams, err error)
	Decode(stego sig.Signal, side SideParams) (payload []int, err error)
	EncodeArgs() []OptionDescriptor
	DecodeArgs() []OptionDescriptor
}

// byTag holds the registry the façade dispatches through.
var byTag = map[MethodTag]Method{}

func register(m Method) {
	byTag[m.Tag()] = m
}

// Lookup returns the Method for a tag, or an error for an unknown
// one (InvalidParameter: unknown method tag).
func Lookup(tag MethodTag) (Method, error) {
	m, ok := byTag[tag]
	if !ok {
		return nil, fmt.Errorf("%w: unknown method tag %q", ErrInvalidParameter, tag)
	}
	return m, nil
}
