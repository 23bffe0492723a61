package stego

import (
	"fmt"
	"math"

	bitpkg "github.com/linuxmatters/audiosteg/internal/bits"
	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

const silenceThresholdRatio = 0.15

type silenceMethod struct{}

func init() { register(silenceMethod{}) }

func (silenceMethod) Tag() MethodTag { return TagSilenceInterval }

func (silenceMethod) EncodeArgs() []OptionDescriptor {
	return []OptionDescriptor{
		{Name: "min_silence_len", Kind: "int", Default: 400, Help: "minimum silence run length, in samples"},
	}
}

func (silenceMethod) DecodeArgs() []OptionDescriptor {
	return []OptionDescriptor{
		{Name: "min_silence_len", Kind: "int", Default: 400, Help: "minimum silence run length, in samples"},
	}
}

func silenceRuns(samples []float64, threshold float64) (starts, lens []int) {
	mask := make([]bool, len(samples))
	for i, v := range samples {
		mask[i] = math.Abs(v) <= threshold
	}
	return sig.ConsecutiveRuns(mask)
}

// nibblesFromPayload pads payload to a multiple of 4 bits and packs
// each 4-bit group into a nibble value 0-15 (little-endian bit
// order, matching LSB's chunk convention); only the low nibble of
// each unit ever carries data.
func nibblesFromPayload(payload []int) []int {
	chunks := bitpkg.PackLittleEndianChunks(payload, 4)
	nibbles := make([]int, len(chunks))
	for i, c := range chunks {
		nibbles[i] = int(c)
	}
	return nibbles
}

func (silenceMethod) Encode(cover sig.Signal, payload []int, opts SideParams) (sig.Signal, SideParams, error) {
	minLen := opts.Int("min_silence_len", 400)

	var peak float64
	for _, v := range cover.Samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	threshold := silenceThresholdRatio * peak

	starts, lens := silenceRuns(cover.Samples, threshold)
	nibbles := nibblesFromPayload(payload)

	out := make([]float64, len(cover.Samples))
	copy(out, cover.Samples)

	truncateAt := make(map[int]int) // run index -> new length
	runIdx := 0
	for _, nib := range nibbles {
		placed := false
		for ; runIdx < len(starts); runIdx++ {
			length := lens[runIdx]
			if length < minLen {
				continue
			}
			// Largest newLen <= length with newLen % 16 == nib.
			newLen := length - (((length%16)-nib+16)%16)
			found := false
			for newLen >= minLen {
				if newLen%16 == nib {
					found = true
					break
				}
				newLen -= 16
			}
			if !found {
				continue
			}
			truncateAt[runIdx] = newLen
			runIdx++
			placed = true
			break
		}
		if !placed {
			return sig.Signal{}, nil, fmt.Errorf("%w: not enough silence runs to carry payload", ErrSecretTooLarge)
		}
	}

	// Build the output by walking the cover once, dropping the
	// truncated tail of any run selected for embedding.
	result := make([]float64, 0, len(cover.Samples))
	pos := 0
	for i, start := range starts {
		result = append(result, out[pos:start]...)
		length := lens[i]
		if newLen, ok := truncateAt[i]; ok {
			result = append(result, out[start:start+newLen]...)
		} else {
			result = append(result, out[start:start+length]...)
		}
		pos = start + length
	}
	result = append(result, out[pos:]...)

	stego := sig.NewSignal(result, cover.DType, cover.SampleRate)
	side := SideParams{"l": len(payload), "min_silence_len": minLen}
	return stego, side, nil
}

func (silenceMethod) Decode(stego sig.Signal, side SideParams) ([]int, error) {
	l := side.L()
	if l == 0 {
		return []int{}, nil
	}
	minLen := side.Int("min_silence_len", 400)

	var peak float64
	for _, v := range stego.Samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	threshold := silenceThresholdRatio * peak

	_, lens := silenceRuns(stego.Samples, threshold)

	need := (l + 3) / 4
	out := make([]int, 0, need*4)
	count := 0
	for _, length := range lens {
		if length < minLen {
			continue
		}
		nib := length % 16
		out = append(out, bitpkg.UnpackLittleEndianChunk(uint64(nib), 4)...)
		count++
		if count >= need {
			break
		}
	}
	if len(out) > l {
		out = out[:l]
	}
	for len(out) < l {
		out = append(out, 0)
	}
	return out, nil
}
