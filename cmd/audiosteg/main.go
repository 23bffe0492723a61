package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/linuxmatters/audiosteg/internal/cli"
	"github.com/linuxmatters/audiosteg/internal/stegolog"
)

// version is set via ldflags at build time.
// Local dev builds: "dev"
// Release builds: git tag (e.g. "0.1.0")
var version = "dev"

func main() {
	cliArgs := &cli.CLI{}
	kctx := kong.Parse(cliArgs,
		kong.Name("audiosteg"),
		kong.Description("Audio steganography toolkit and robustness evaluator"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	stegolog.SetDebug(cliArgs.Debug)

	err := kctx.Run()
	if err != nil {
		cli.PrintError(err.Error())
	}
	os.Exit(cli.ExitCode(err))
}
