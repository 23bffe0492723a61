package stego

import sig "github.com/linuxmatters/audiosteg/internal/signal"

// echo_bf: backward-and-forward echoes at +-d{0,1}, no sign
// inversion; the backward (leading) component is attenuated by
// decay_rate as the secondary echo. Decoded with the autocepstrum,
// comparing c[d0] against c[d1].
func init() {
	register(echoMethod{
		tag: TagEchoBF,
		kernel: func(cover []float64, delay int, p echoParams) []float64 {
			out := delayForward(cover, delay)
			for i := range out {
				out[i] *= p.Alpha
			}
			back := delayBackward(cover, delay)
			addScaled(out, back, p.Alpha*p.DecayRate)
			return out
		},
		ceps: sig.Autocepstrum,
		compare: func(c []float64, d0, d1 int) int {
			if d0 >= len(c) || d1 >= len(c) {
				return 0
			}
			if c[d1] > c[d0] {
				return 1
			}
			return 0
		},
	})
}
