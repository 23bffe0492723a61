package cli

import (
	"fmt"
	"testing"

	"github.com/linuxmatters/audiosteg/internal/stego"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{stego.ErrOutputExists, 3},
		{stego.ErrFileNotFound, 4},
		{stego.ErrWavRead, 5},
		{stego.ErrSecretTooLarge, 6},
		{stego.ErrInvalidParameter, 1},
		{fmt.Errorf("wrap: %w", stego.ErrSecretTooLarge), 6},
		{fmt.Errorf("some other failure"), 1},
	}
	for _, c := range cases {
		if got := ExitCode(c.err); got != c.want {
			t.Errorf("ExitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestExitCodeInvalidMode(t *testing.T) {
	err := fmt.Errorf("%w: unknown mode %q", stego.ErrInvalidParameter, "bogus")
	if got := ExitCode(err); got != 2 {
		t.Errorf("ExitCode(invalid mode) = %d, want 2", got)
	}
}

func TestSplitSource(t *testing.T) {
	dir, stem, ext := splitSource("cover.wav")
	if dir != "." || stem != "cover" || ext != ".wav" {
		t.Fatalf("splitSource(cover.wav) = (%q, %q, %q)", dir, stem, ext)
	}
	dir, stem, ext = splitSource("/tmp/audio/cover.wav")
	if dir != "/tmp/audio" || stem != "cover" || ext != ".wav" {
		t.Fatalf("splitSource(/tmp/audio/cover.wav) = (%q, %q, %q)", dir, stem, ext)
	}
}

func TestGlobalsOutputPathDefaults(t *testing.T) {
	g := Globals{Source: "cover.wav"}
	if got := g.outputPath(stego.TagLSB, false); got != "cover_lsb.wav" {
		t.Fatalf("encode default output = %q, want cover_lsb.wav", got)
	}
	if got := g.outputPath(stego.TagLSB, true); got != "cover_lsb.out" {
		t.Fatalf("decode default output = %q, want cover_lsb.out", got)
	}
	g.Output = "explicit.wav"
	if got := g.outputPath(stego.TagLSB, false); got != "explicit.wav" {
		t.Fatalf("explicit output not honoured: %q", got)
	}
}

func TestPayloadArgLiteralText(t *testing.T) {
	p := PayloadArg("Hi")
	bb, err := p.bits()
	if err != nil {
		t.Fatalf("bits: %v", err)
	}
	if bb.Len() != 16 {
		t.Fatalf("expected 16 bits for 'Hi', got %d", bb.Len())
	}
}

func TestPayloadArgMissingFile(t *testing.T) {
	p := PayloadArg("@/nonexistent/path/to/file")
	if _, err := p.bits(); err == nil {
		t.Fatalf("expected error for missing payload file")
	}
}
