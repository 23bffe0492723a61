package stego

import sig "github.com/linuxmatters/audiosteg/internal/signal"

// echo_single: one forward echo per bit. Bit 0 uses delay d0 at
// amplitude alpha; bit 1 uses delay d1 at amplitude alpha*decay_rate.
// Decoded with the plain cepstrum (not the autocepstrum), comparing
// c[d0] against c[d1] directly (the canonical index per spec.md's
// resolved ambiguity: c[d0], not c[d0+1]).
func init() {
	register(echoMethod{
		tag: TagEchoSingle,
		kernel: func(cover []float64, delay int, p echoParams) []float64 {
			amp := p.Alpha
			if delay == p.D1 {
				amp = p.Alpha * p.DecayRate
			}
			out := delayForward(cover, delay)
			for i := range out {
				out[i] *= amp
			}
			return out
		},
		ceps: sig.Cepstrum,
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
