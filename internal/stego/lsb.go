package stego

import (
	"fmt"
	"math"
	"math/rand/v2"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
	bitpkg "github.com/linuxmatters/audiosteg/internal/bits"
)

type lsbMethod struct{}

func init() { register(lsbMethod{}) }

func (lsbMethod) Tag() MethodTag { return TagLSB }

func (lsbMethod) EncodeArgs() []OptionDescriptor {
	return []OptionDescriptor{
		{Name: "depth", Kind: "int", Default: 1, Help: "number of LSBs used per sample"},
		{Name: "only_needed", Kind: "bool", Default: false, Help: "leave samples beyond capacity untouched"},
	}
}

func (lsbMethod) DecodeArgs() []OptionDescriptor {
	return []OptionDescriptor{
		{Name: "depth", Kind: "int", Default: 1, Help: "number of LSBs used per sample"},
	}
}

// reinterpretDType maps float dtypes to the same-width integer dtype
// LSB masking operates on, per spec.md §4.3's raw-bytes bridge.
// Integer dtypes pass through unchanged.
func reinterpretDType(d sig.DType) sig.DType {
	switch d {
	case sig.F64:
		return sig.I64
	case sig.F32:
		return sig.I32
	case sig.F16:
		return sig.I16
	default:
		return d
	}
}

// toRawInt reinterprets the raw bit pattern of a sample value into an
// integer, per dtype: floats are bit-punned (not scaled), integers
// are rounded to their nearest representable value.
func toRawInt(v float64, d sig.DType) int64 {
	switch d {
	case sig.F64:
		return int64(math.Float64bits(v))
	case sig.F32:
		return int64(math.Float32bits(float32(v)))
	case sig.F16:
		return int64(float64ToFloat16Bits(v))
	default:
		return int64(math.Round(v))
	}
}

// fromRawInt is the inverse of toRawInt.
func fromRawInt(raw int64, d sig.DType) float64 {
	switch d {
	case sig.F64:
		return math.Float64frombits(uint64(raw))
	case sig.F32:
		return float64(math.Float32frombits(uint32(raw)))
	case sig.F16:
		return float16BitsToFloat64(uint16(raw))
	default:
		return float64(raw)
	}
}

func float64ToFloat16Bits(v float64) uint16 {
	f32 := float32(v)
	bits := math.Float32bits(f32)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xff) - 127 + 15
	mant := bits & 0x7fffff
	if exp <= 0 {
		return sign
	}
	if exp >= 0x1f {
		return sign | 0x7c00
	}
	return sign | uint16(exp<<10) | uint16(mant>>13)
}

func float16BitsToFloat64(h uint16) float64 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1f
	mant := uint32(h & 0x3ff)
	var bits uint32
	switch {
	case exp == 0:
		bits = sign
	case exp == 0x1f:
		bits = sign | 0x7f800000 | (mant << 13)
	default:
		bits = sign | ((exp - 15 + 127) << 23) | (mant << 13)
	}
	return float64(math.Float32frombits(bits))
}

func (lsbMethod) Encode(cover sig.Signal, payload []int, opts SideParams) (sig.Signal, SideParams, error) {
	depth := opts.Int("depth", 1)
	onlyNeeded := opts.Bool("only_needed", false)
	maxDepth := reinterpretDType(cover.DType).BitWidth()
	if depth < 1 || depth > maxDepth {
		return sig.Signal{}, nil, fmt.Errorf("%w: depth %d out of range [1,%d]", ErrInvalidParameter, depth, maxDepth)
	}

	chunks := bitpkg.PackLittleEndianChunks(payload, depth)
	if len(chunks) > len(cover.Samples) {
		return sig.Signal{}, nil, fmt.Errorf("%w: %d chunks exceed cover capacity %d", ErrSecretTooLarge, len(chunks), len(cover.Samples))
	}

	mask := int64((uint64(1) << uint(depth)) - 1)
	out := make([]float64, len(cover.Samples))
	for i, v := range cover.Samples {
		raw := toRawInt(v, cover.DType)
		cleared := raw &^ mask
		var chunk int64
		if i < len(chunks) {
			chunk = int64(chunks[i])
		} else if !onlyNeeded {
			chunk = int64(rand.Uint64N(uint64(1) << uint(depth)))
		} else {
			out[i] = v
			continue
		}
		newRaw := cleared | (chunk & mask)
		out[i] = fromRawInt(newRaw, cover.DType)
	}

	// LSB manipulates the cover's raw bit pattern directly; unlike the
	// additive methods, it must not run through centre/normalise
	// (which would rescale every sample and destroy the embedded
	// low-order bits). The samples built above are already expressed
	// in cover.DType's native scale.
	stego := sig.NewSignal(out, cover.DType, cover.SampleRate)

	side := SideParams{"l": len(payload), "depth": depth, "only_needed": onlyNeeded}
	return stego, side, nil
}

func (lsbMethod) Decode(stego sig.Signal, side SideParams) ([]int, error) {
	l := side.L()
	if l == 0 {
		return []int{}, nil
	}
	depth := side.Int("depth", 1)
	mask := int64((uint64(1) << uint(depth)) - 1)

	out := make([]int, 0, l+depth)
	for _, v := range stego.Samples {
		if len(out) >= l {
			break
		}
		raw := toRawInt(v, stego.DType)
		chunk := uint64(raw & mask)
		out = append(out, bitpkg.UnpackLittleEndianChunk(chunk, depth)...)
	}
	if len(out) > l {
		out = out[:l]
	}
	return out, nil
}
