package stego

import sig "github.com/linuxmatters/audiosteg/internal/signal"

// echo_bipolar: two echoes per bit — one negative at delay d{0,1},
// one positive and attenuated by decay_rate at delay d{0,1}+5.
// Decoded with the autocepstrum and the disjunction
// c[d0] < c[d1] OR c[d0+5] > c[d1+5].
func init() {
	register(echoMethod{
		tag: TagEchoBipolar,
		kernel: func(cover []float64, delay int, p echoParams) []float64 {
			out := delayForward(cover, delay)
			for i := range out {
				out[i] *= -p.Alpha
			}
			pos := delayForward(cover, delay+5)
			addScaled(out, pos, p.Alpha*p.DecayRate)
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
