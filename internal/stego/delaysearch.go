package stego

import (
	"math/rand/v2"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
	"github.com/linuxmatters/audiosteg/internal/stats"
)

// roundTripBER encodes and immediately decodes payload with candidate
// params p, returning the resulting BER — the fitness probe both
// delay-search strategies minimise.
func roundTripBER(e echoMethod, cover sig.Signal, payload []int, p echoParams) float64 {
	stego := e.encodeWithParams(cover, payload, p)
	decoded, _ := e.Decode(stego, SideParams{"l": len(payload), "d0": p.D0, "d1": p.D1})
	return stats.BERPercent(payload, decoded)
}

// searchDelays dispatches to the requested delay-search strategy.
func searchDelays(e echoMethod, cover sig.Signal, payload []int, base echoParams) (echoParams, error) {
	switch base.DelaySearch {
	case "bruteforce":
		return bruteforceSearch(e, cover, payload, base), nil
	case "basinhopping":
		return basinhoppingSearch(e, cover, payload, base), nil
	default:
		return base, nil
	}
}

// bruteforceSearch scans d0' in [d0, d0+10), d1' in [d1, d1+30) with
// d0' < d1', returning the first zero-BER candidate or else the
// candidate with the minimum BER.
func bruteforceSearch(e echoMethod, cover sig.Signal, payload []int, base echoParams) echoParams {
	best := base
	bestBER := roundTripBER(e, cover, payload, withDelays(base, base.D0, base.D1))

	for d0 := base.D0; d0 < base.D0+10; d0++ {
		for d1 := base.D1; d1 < base.D1+30; d1++ {
			if d0 >= d1 {
				continue
			}
			cand := withDelays(base, d0, d1)
			ber := roundTripBER(e, cover, payload, cand)
			if ber < bestBER {
				bestBER = ber
				best = cand
			}
			if bestBER == 0 {
				return best
			}
		}
	}
	return best
}

// basinhoppingSearch minimises BER over integer (d0', d1') with a
// basin-hopping outer loop of up to 100 iterations: each iteration
// perturbs both coordinates by up to +-10 (preserving d0' < d1'),
// accepting the move if it does not worsen BER, and terminates early
// on BER == 0.
func basinhoppingSearch(e echoMethod, cover sig.Signal, payload []int, base echoParams) echoParams {
	current := base
	currentBER := roundTripBER(e, cover, payload, current)
	best := current
	bestBER := currentBER

	for i := 0; i < 100 && bestBER > 0; i++ {
		d0 := current.D0 + rand.IntN(21) - 10
		d1 := current.D1 + rand.IntN(21) - 10
		if d0 < 1 {
			d0 = 1
		}
		if d1 <= d0 {
			d1 = d0 + 1
		}
		cand := withDelays(base, d0, d1)
		ber := roundTripBER(e, cover, payload, cand)
		if ber <= currentBER {
			current = cand
			currentBER = ber
			if ber < bestBER {
				best = cand
				bestBER = ber
			}
		}
	}
	return best
}

func withDelays(p echoParams, d0, d1 int) echoParams {
	p.D0 = d0
	p.D1 = d1
	return p
}
