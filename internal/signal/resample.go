package signal

// ResampleKind selects the 1-D interpolation kernel for Resample.
type ResampleKind int

const (
	Nearest ResampleKind = iota
	Linear
)

// Resample re-samples x (treated as evenly spaced on [0, len(x)-1])
// onto outLen evenly spaced points using the requested interpolation
// kind. Used only by the evaluation harness's resample modification.
func Resample(x []float64, outLen int, kind ResampleKind) []float64 {
	out := make([]float64, outLen)
	if len(x) == 0 || outLen == 0 {
		return out
	}
	if len(x) == 1 {
		for i := range out {
			out[i] = x[0]
		}
		return out
	}
	scale := float64(len(x)-1) / float64(maxInt(outLen-1, 1))
	for i := 0; i < outLen; i++ {
		pos := float64(i) * scale
		switch kind {
		case Nearest:
			idx := int(pos + 0.5)
			if idx >= len(x) {
				idx = len(x) - 1
			}
			out[i] = x[idx]
		default: // Linear
			lo := int(pos)
			if lo >= len(x)-1 {
				out[i] = x[len(x)-1]
				continue
			}
			frac := pos - float64(lo)
			out[i] = x[lo]*(1-frac) + x[lo+1]*frac
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
