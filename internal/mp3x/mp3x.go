// Package mp3x implements the MP3 robustness modification: an
// external encoder then decoder process, piped PCM in both
// directions, per spec.md §6's "always pipe memory buffers" rule.
// Unlike the teacher's ffmpeg-statigo cgo bindings, this shells out
// to the ffmpeg binary exactly once per direction, mirroring
// other_examples' convertWAVToMP3WithFFmpeg pattern.
package mp3x

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
	"github.com/linuxmatters/audiosteg/internal/wavio"
)

// seekableBuffer is an in-memory io.WriteSeeker/io.ReadSeeker backing
// the WAV encode and decode steps of RoundTrip, so no temp files
// touch disk for a transform that exists purely to round-trip through
// an external process's stdin/stdout.
type seekableBuffer struct {
	data []byte
	pos  int64
}

func (b *seekableBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

func (b *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		b.pos = offset
	case 1:
		b.pos += offset
	case 2:
		b.pos = int64(len(b.data)) + offset
	}
	return b.pos, nil
}

func (b *seekableBuffer) Read(p []byte) (int, error) {
	if b.pos >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += int64(n)
	return n, nil
}

// ErrBinaryMissing is returned when the external ffmpeg binary cannot
// be located; the evaluation pipeline treats this as "skip this
// modification", not a task failure.
var ErrBinaryMissing = fmt.Errorf("ffmpeg binary not found in PATH")

// BinaryName is the external encoder/decoder process name. It is a
// var, not a const, so tests can point it at a stub.
var BinaryName = "ffmpeg"

// Available reports whether the external transcoder can be found.
func Available() bool {
	_, err := exec.LookPath(BinaryName)
	return err == nil
}

// RoundTrip pipes s through an MP3 encode then decode at the given
// bitrate (96 or 128 kbit/s), returning the re-read PCM signal.
func RoundTrip(ctx context.Context, s sig.Signal, bitrateKbps int) (sig.Signal, error) {
	if !Available() {
		return sig.Signal{}, ErrBinaryMissing
	}

	var wavBuf seekableBuffer
	if err := wavio.Encode(&wavBuf, s); err != nil {
		return sig.Signal{}, fmt.Errorf("encode source WAV: %w", err)
	}

	mp3Bytes, err := runPipe(ctx, wavBuf.data,
		"-f", "wav", "-i", "-",
		"-codec:a", "libmp3lame", "-b:a", fmt.Sprintf("%dk", bitrateKbps),
		"-f", "mp3", "-")
	if err != nil {
		return sig.Signal{}, fmt.Errorf("mp3 encode: %w", err)
	}

	pcmBytes, err := runPipe(ctx, mp3Bytes,
		"-f", "mp3", "-i", "-",
		"-f", "wav", "-")
	if err != nil {
		return sig.Signal{}, fmt.Errorf("mp3 decode: %w", err)
	}

	out, err := wavio.ReadReader(&seekableBuffer{data: pcmBytes})
	if err != nil {
		return sig.Signal{}, err
	}
	return out, nil
}

// runPipe spawns BinaryName with args, writing input to stdin and
// collecting stdout, bounded by ctx.
func runPipe(ctx context.Context, input []byte, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, BinaryName, args...)
	cmd.Stdin = bytes.NewReader(input)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %v: %w", BinaryName, args, err)
	}
	return stdout.Bytes(), nil
}

