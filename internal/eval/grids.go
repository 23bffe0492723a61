package eval

import "github.com/linuxmatters/audiosteg/internal/stego"

// paramGrid returns the SideParams combinations to sweep for a
// method, per spec.md §4.3-4.8. extended adds the slower/rarer cases:
// basin-hopping and bruteforce delay search for the echo variants,
// extra DSSS passwords and alphas, extra tone-insertion frequency
// pairs, and a longer minimum silence run length.
func paramGrid(tag stego.MethodTag, extended bool) []stego.SideParams {
	switch tag {
	case stego.TagLSB:
		return lsbGrid(extended)
	case stego.TagEchoSingle, stego.TagEchoBipolar, stego.TagEchoBF, stego.TagEchoBipolarBF:
		return echoGrid(extended)
	case stego.TagPhase:
		return []stego.SideParams{{}}
	case stego.TagDSSS:
		return dsssGrid(extended)
	case stego.TagSilenceInterval:
		return silenceGrid(extended)
	case stego.TagToneInsertion:
		return toneGrid(extended)
	default:
		return []stego.SideParams{{}}
	}
}

func lsbGrid(extended bool) []stego.SideParams {
	grid := []stego.SideParams{
		{"depth": 1, "only_needed": false},
		{"depth": 2, "only_needed": false},
	}
	if extended {
		grid = append(grid,
			stego.SideParams{"depth": 4, "only_needed": false},
			stego.SideParams{"depth": 1, "only_needed": true},
		)
	}
	return grid
}

func echoGrid(extended bool) []stego.SideParams {
	grid := []stego.SideParams{
		{"d0": 150, "d1": 200, "alpha": 0.5, "decay_rate": 0.85, "delay_search": ""},
	}
	if extended {
		grid = append(grid,
			stego.SideParams{"d0": 150, "d1": 200, "alpha": 0.5, "decay_rate": 0.85, "delay_search": "bruteforce"},
			stego.SideParams{"d0": 150, "d1": 200, "alpha": 0.5, "decay_rate": 0.85, "delay_search": "basinhopping"},
		)
	}
	return grid
}

func dsssGrid(extended bool) []stego.SideParams {
	grid := []stego.SideParams{
		{"password": "", "alpha": 0.005},
	}
	if extended {
		grid = append(grid,
			stego.SideParams{"password": "correcthorsebattery", "alpha": 0.005},
			stego.SideParams{"password": "", "alpha": 0.01},
		)
	}
	return grid
}

func silenceGrid(extended bool) []stego.SideParams {
	grid := []stego.SideParams{
		{"min_silence_len": 400},
	}
	if extended {
		grid = append(grid, stego.SideParams{"min_silence_len": 800})
	}
	return grid
}

func toneGrid(extended bool) []stego.SideParams {
	grid := []stego.SideParams{
		{"f0": 1250.0, "f1": 8575.0},
	}
	if extended {
		grid = append(grid, stego.SideParams{"f0": 1500.0, "f1": 6000.0})
	}
	return grid
}
