package stego

import sig "github.com/linuxmatters/audiosteg/internal/signal"

// echo_bipolar_bf: combines the bf and bipolar shapes — forward and
// backward echoes, each with a positive component and a delayed
// (+5) negative component. Decoded with the same disjunction as
// echo_bipolar, over the autocepstrum.
func init() {
	register(echoMethod{
		tag: TagEchoBipolarBF,
		kernel: func(cover []float64, delay int, p echoParams) []float64 {
			fwd := delayForward(cover, delay)
			fwdNeg := delayForward(cover, delay+5)
			back := delayBackward(cover, delay)
			backNeg := delayBackward(cover, delay+5)

			out := make([]float64, len(cover))
			addScaled(out, fwd, p.Alpha)
			addScaled(out, fwdNeg, -p.Alpha*p.DecayRate)
			addScaled(out, back, p.Alpha)
			addScaled(out, backNeg, -p.Alpha*p.DecayRate)
			return out
		},
		ceps: sig.Autocepstrum,
		compare: func(c []float64, d0, d1 int) int {
			if d1+5 >= len(c) {
				return 0
			}
			if c[d0] < c[d1] || c[d0+5] > c[d1+5] {
				return 1
			}
			return 0
		},
	})
}
