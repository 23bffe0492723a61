package cli

import "github.com/linuxmatters/audiosteg/internal/stego"

// Each method gets its own encode/decode command pair, carrying the
// flags spec.md §4.3-4.8 declare as that method's opts. Decode needs
// the same flags as encode since side-params travel out-of-band and
// this CLI has no channel to carry them other than re-entering them.

type lsbEncodeCmd struct {
	Globals
	Depth      int        `default:"1" help:"Bits per sample to use (1..bitwidth)"`
	OnlyNeeded bool       `help:"Skip randomising unused tail samples"`
	Secret     PayloadArg `arg:"" help:"Text to hide, or @path/to/file"`
}

func (c *lsbEncodeCmd) Run() error {
	return runEncode(stego.TagLSB, c.Globals, c.Secret, stego.SideParams{
		"depth": c.Depth, "only_needed": c.OnlyNeeded,
	})
}

type lsbDecodeCmd struct {
	Globals
	Depth int `default:"1" help:"Bits per sample used at encode time"`
	L     int `required:"" help:"Payload bit length recorded at encode time"`
}

func (c *lsbDecodeCmd) Run() error {
	return runDecode(stego.TagLSB, c.Globals, stego.SideParams{"depth": c.Depth, "l": c.L})
}

type echoEncodeCmd struct {
	Globals
	D0          int        `default:"150" help:"Delay for bit 0, in samples"`
	D1          int        `default:"200" help:"Delay for bit 1, in samples"`
	Alpha       float64    `default:"0.5" help:"Echo amplitude"`
	DecayRate   float64    `default:"0.85" help:"Secondary-echo attenuation"`
	DelaySearch string     `help:"'', 'bruteforce', or 'basinhopping'"`
	Secret      PayloadArg `arg:"" help:"Text to hide, or @path/to/file"`
}

func (c *echoEncodeCmd) opts() stego.SideParams {
	return stego.SideParams{
		"d0": c.D0, "d1": c.D1, "alpha": c.Alpha,
		"decay_rate": c.DecayRate, "delay_search": c.DelaySearch,
	}
}

type echoDecodeCmd struct {
	Globals
	D0 int `default:"150" help:"Delay for bit 0 recorded at encode time"`
	D1 int `default:"200" help:"Delay for bit 1 recorded at encode time"`
	L  int `required:"" help:"Payload bit length recorded at encode time"`
}

func (c *echoDecodeCmd) opts() stego.SideParams {
	return stego.SideParams{"d0": c.D0, "d1": c.D1, "l": c.L}
}

type echoSingleEncodeCmd struct{ echoEncodeCmd }

func (c *echoSingleEncodeCmd) Run() error {
	return runEncode(stego.TagEchoSingle, c.Globals, c.Secret, c.opts())
}

type echoSingleDecodeCmd struct{ echoDecodeCmd }

func (c *echoSingleDecodeCmd) Run() error {
	return runDecode(stego.TagEchoSingle, c.Globals, c.opts())
}

type echoBipolarEncodeCmd struct{ echoEncodeCmd }

func (c *echoBipolarEncodeCmd) Run() error {
	return runEncode(stego.TagEchoBipolar, c.Globals, c.Secret, c.opts())
}

type echoBipolarDecodeCmd struct{ echoDecodeCmd }

func (c *echoBipolarDecodeCmd) Run() error {
	return runDecode(stego.TagEchoBipolar, c.Globals, c.opts())
}

type echoBFEncodeCmd struct{ echoEncodeCmd }

func (c *echoBFEncodeCmd) Run() error {
	return runEncode(stego.TagEchoBF, c.Globals, c.Secret, c.opts())
}

type echoBFDecodeCmd struct{ echoDecodeCmd }

func (c *echoBFDecodeCmd) Run() error {
	return runDecode(stego.TagEchoBF, c.Globals, c.opts())
}

type echoBipolarBFEncodeCmd struct{ echoEncodeCmd }

func (c *echoBipolarBFEncodeCmd) Run() error {
	return runEncode(stego.TagEchoBipolarBF, c.Globals, c.Secret, c.opts())
}

type echoBipolarBFDecodeCmd struct{ echoDecodeCmd }

func (c *echoBipolarBFDecodeCmd) Run() error {
	return runDecode(stego.TagEchoBipolarBF, c.Globals, c.opts())
}

type phaseEncodeCmd struct {
	Globals
	Secret PayloadArg `arg:"" help:"Text to hide, or @path/to/file"`
}

func (c *phaseEncodeCmd) Run() error {
	return runEncode(stego.TagPhase, c.Globals, c.Secret, stego.SideParams{})
}

type phaseDecodeCmd struct {
	Globals
	L int `required:"" help:"Payload bit length recorded at encode time"`
}

func (c *phaseDecodeCmd) Run() error {
	return runDecode(stego.TagPhase, c.Globals, stego.SideParams{"l": c.L})
}

type dsssEncodeCmd struct {
	Globals
	Password string     `help:"Spreading-sequence passphrase"`
	Alpha    float64    `default:"0.005" help:"Spreading amplitude"`
	Secret   PayloadArg `arg:"" help:"Text to hide, or @path/to/file"`
}

func (c *dsssEncodeCmd) Run() error {
	return runEncode(stego.TagDSSS, c.Globals, c.Secret, stego.SideParams{
		"password": c.Password, "alpha": c.Alpha,
	})
}

type dsssDecodeCmd struct {
	Globals
	Password string `help:"Spreading-sequence passphrase used at encode time"`
	L        int    `required:"" help:"Payload bit length recorded at encode time"`
}

func (c *dsssDecodeCmd) Run() error {
	return runDecode(stego.TagDSSS, c.Globals, stego.SideParams{"password": c.Password, "l": c.L})
}

type silenceEncodeCmd struct {
	Globals
	MinSilenceLen int        `default:"400" help:"Minimum silence run length, in samples"`
	Secret        PayloadArg `arg:"" help:"Text to hide, or @path/to/file"`
}

func (c *silenceEncodeCmd) Run() error {
	return runEncode(stego.TagSilenceInterval, c.Globals, c.Secret, stego.SideParams{
		"min_silence_len": c.MinSilenceLen,
	})
}

type silenceDecodeCmd struct {
	Globals
	MinSilenceLen int `default:"400" help:"Minimum silence run length used at encode time"`
	L             int `required:"" help:"Payload bit length recorded at encode time"`
}

func (c *silenceDecodeCmd) Run() error {
	return runDecode(stego.TagSilenceInterval, c.Globals, stego.SideParams{
		"min_silence_len": c.MinSilenceLen, "l": c.L,
	})
}

type toneEncodeCmd struct {
	Globals
	F0     float64    `default:"1250.0" help:"Reference tone frequency for bit 0, in Hz"`
	F1     float64    `default:"8575.0" help:"Reference tone frequency for bit 1, in Hz"`
	Secret PayloadArg `arg:"" help:"Text to hide, or @path/to/file"`
}

func (c *toneEncodeCmd) Run() error {
	return runEncode(stego.TagToneInsertion, c.Globals, c.Secret, stego.SideParams{
		"f0": c.F0, "f1": c.F1,
	})
}

type toneDecodeCmd struct {
	Globals
	F0 float64 `default:"1250.0" help:"Reference tone frequency for bit 0 used at encode time"`
	F1 float64 `default:"8575.0" help:"Reference tone frequency for bit 1 used at encode time"`
	L  int     `required:"" help:"Payload bit length recorded at encode time"`
}

func (c *toneDecodeCmd) Run() error {
	return runDecode(stego.TagToneInsertion, c.Globals, stego.SideParams{
		"f0": c.F0, "f1": c.F1, "l": c.L,
	})
}

// CLI is the root kong command tree: one subcommand per method tag,
// each with nested encode/decode commands, plus version/debug flags
// and the eval subcommand.
type CLI struct {
	Version bool `short:"v" help:"Show version information"`
	Debug   bool `short:"d" help:"Enable debug logging"`

	LSB struct {
		Encode lsbEncodeCmd `cmd:"" help:"Hide a payload via LSB substitution"`
		Decode lsbDecodeCmd `cmd:"" help:"Recover a payload hidden via LSB substitution"`
	} `cmd:"" help:"LSB substitution"`

	EchoSingle struct {
		Encode echoSingleEncodeCmd `cmd:""`
		Decode echoSingleDecodeCmd `cmd:""`
	} `cmd:"" name:"echo-single" help:"Single-echo kernel hiding"`

	EchoBipolar struct {
		Encode echoBipolarEncodeCmd `cmd:""`
		Decode echoBipolarDecodeCmd `cmd:""`
	} `cmd:"" name:"echo-bipolar" help:"Bipolar echo kernel hiding"`

	EchoBF struct {
		Encode echoBFEncodeCmd `cmd:""`
		Decode echoBFDecodeCmd `cmd:""`
	} `cmd:"" name:"echo-bf" help:"Forward/backward echo kernel hiding"`

	EchoBipolarBF struct {
		Encode echoBipolarBFEncodeCmd `cmd:""`
		Decode echoBipolarBFDecodeCmd `cmd:""`
	} `cmd:"" name:"echo-bipolar-bf" help:"Bipolar forward/backward echo kernel hiding"`

	Phase struct {
		Encode phaseEncodeCmd `cmd:""`
		Decode phaseDecodeCmd `cmd:""`
	} `cmd:"" help:"Phase coding"`

	DSSS struct {
		Encode dsssEncodeCmd `cmd:""`
		Decode dsssDecodeCmd `cmd:""`
	} `cmd:"" name:"dsss" help:"Direct-sequence spread spectrum"`

	SilenceInterval struct {
		Encode silenceEncodeCmd `cmd:""`
		Decode silenceDecodeCmd `cmd:""`
	} `cmd:"" name:"silence-interval" help:"Silence-interval coding"`

	ToneInsertion struct {
		Encode toneEncodeCmd `cmd:""`
		Decode toneDecodeCmd `cmd:""`
	} `cmd:"" name:"tone-insertion" help:"Tone insertion"`

	Eval EvalCmd `cmd:"" help:"Run the robustness-evaluation pipeline over a dataset"`

	Describe DescribeCmd `cmd:"" help:"List each method's encode/decode options"`
}
