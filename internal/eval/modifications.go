package eval

import (
	"context"
	"math/rand/v2"

	"github.com/linuxmatters/audiosteg/internal/mp3x"
	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

// Modification is one named channel degradation applied to a stego
// signal before decode, per spec.md §4.10's fixed modification list.
type Modification struct {
	Name  string
	Apply func(ctx context.Context, s sig.Signal) (sig.Signal, bool, error)
}

// buildModifications returns the ordered modification list: identity,
// resample down-then-up, one-step quantisation downgrade, additive
// noise at 20/10 (and 15 if extended) dB SNR, MP3 128-and-96 kbit
// round-trip, and Butterworth low/high-pass at sample_rate/4. A
// modification's bool return is false when it could not run (missing
// MP3 binary) — the caller skips the row rather than failing the task.
func buildModifications(extended bool) []Modification {
	mods := []Modification{
		{"identity", func(_ context.Context, s sig.Signal) (sig.Signal, bool, error) {
			return s, true, nil
		}},
		{"resample_half_then_back", func(_ context.Context, s sig.Signal) (sig.Signal, bool, error) {
			return resampleRoundTrip(s), true, nil
		}},
		{"quantize_downgrade", func(_ context.Context, s sig.Signal) (sig.Signal, bool, error) {
			return quantizeDowngrade(s), true, nil
		}},
	}

	snrs := []float64{20, 10}
	if extended {
		snrs = append(snrs, 15)
	}
	for _, snr := range snrs {
		snr := snr
		mods = append(mods, Modification{
			name20(snr),
			func(_ context.Context, s sig.Signal) (sig.Signal, bool, error) {
				return addNoise(s, snr), true, nil
			},
		})
	}

	mods = append(mods,
		Modification{"mp3_128kbps", mp3Modification(128)},
		Modification{"mp3_96kbps", mp3Modification(96)},
		Modification{"butterworth_lowpass_sr4", func(_ context.Context, s sig.Signal) (sig.Signal, bool, error) {
			return butterworthAtQuarterRate(s, sig.LowPass), true, nil
		}},
		Modification{"butterworth_highpass_sr4", func(_ context.Context, s sig.Signal) (sig.Signal, bool, error) {
			return butterworthAtQuarterRate(s, sig.HighPass), true, nil
		}},
	)
	return mods
}

func name20(snr float64) string {
	switch snr {
	case 20:
		return "noise_20db"
	case 15:
		return "noise_15db"
	case 10:
		return "noise_10db"
	default:
		return "noise_custom"
	}
}

func resampleRoundTrip(s sig.Signal) sig.Signal {
	half := sig.Resample(s.Samples, maxInt(len(s.Samples)/2, 1), sig.Linear)
	back := sig.Resample(half, len(s.Samples), sig.Linear)
	return sig.NewSignal(back, s.DType, s.SampleRate)
}

// quantizeDowngrade casts the signal down to the next coarser dtype of
// the same kind (integer to narrower integer, float to narrower float)
// and back, simulating a one-step bit-depth reduction. u8 has no
// coarser step and float-to-float casts do not round, so u8 and float
// signals come back unchanged.
func quantizeDowngrade(s sig.Signal) sig.Signal {
	coarser := stepDown(s.DType)
	down := sig.ToDType(s.Samples, s.DType, coarser)
	back := sig.ToDType(down, coarser, s.DType)
	return sig.NewSignal(back, s.DType, s.SampleRate)
}

func stepDown(d sig.DType) sig.DType {
	switch d {
	case sig.I64:
		return sig.I32
	case sig.I32:
		return sig.I16
	case sig.I16:
		return sig.U8
	case sig.F64:
		return sig.F32
	case sig.F32:
		return sig.F16
	default:
		return d
	}
}

func addNoise(s sig.Signal, snrDB float64) sig.Signal {
	rng := rand.New(rand.NewPCG(uint64(snrDB*1000)+1, uint64(len(s.Samples))+1))
	noisy := sig.AddNoise(sig.CentreNormalise(s.Samples), snrDB, rng)
	cast := sig.ToDType(noisy, sig.F64, s.DType)
	return sig.NewSignal(cast, s.DType, s.SampleRate)
}

func butterworthAtQuarterRate(s sig.Signal, kind sig.ButterworthKind) sig.Signal {
	cutoff := float64(s.SampleRate) / 4
	filtered := sig.Butterworth(s.Samples, cutoff, s.SampleRate, kind)
	return sig.NewSignal(filtered, s.DType, s.SampleRate)
}

func mp3Modification(bitrateKbps int) func(context.Context, sig.Signal) (sig.Signal, bool, error) {
	return func(ctx context.Context, s sig.Signal) (sig.Signal, bool, error) {
		out, err := mp3x.RoundTrip(ctx, s, bitrateKbps)
		if err != nil {
			if err == mp3x.ErrBinaryMissing {
				return sig.Signal{}, false, nil
			}
			return sig.Signal{}, false, err
		}
		return out, true, nil
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
