package cli

import (
	"fmt"

	"github.com/linuxmatters/audiosteg/internal/stego"
)

// DescribeCmd lists every method's encode/decode options, sourced
// from each method's OptionDescriptor set rather than duplicating
// them by hand — the one CLI surface that actually calls
// Method.EncodeArgs/DecodeArgs.
type DescribeCmd struct {
	Method string `arg:"" optional:"" help:"Restrict to a single method tag; omit for all"`
}

func (c *DescribeCmd) Run() error {
	tags := stego.AllTags
	if c.Method != "" {
		tags = []stego.MethodTag{stego.MethodTag(c.Method)}
	}
	for _, tag := range tags {
		method, err := stego.Lookup(tag)
		if err != nil {
			return err
		}
		PrintSection(string(tag))
		printOptionDescriptors("encode", method.EncodeArgs())
		printOptionDescriptors("decode", method.DecodeArgs())
	}
	return nil
}

func printOptionDescriptors(phase string, opts []stego.OptionDescriptor) {
	fmt.Println(KeyStyle.Render(phase + ":"))
	if len(opts) == 0 {
		fmt.Println("  (no options)")
		return
	}
	for _, o := range opts {
		fmt.Printf("  %s %s\n", ValueStyle.Render(fmt.Sprintf("--%s", o.Name)), KeyStyle.Render(fmt.Sprintf("(%s, default %v) %s", o.Kind, o.Default, o.Help)))
	}
}
