package mp3x

import (
	"context"
	"errors"
	"testing"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

func TestRoundTripMissingBinary(t *testing.T) {
	old := BinaryName
	BinaryName = "audiosteg-nonexistent-transcoder"
	defer func() { BinaryName = old }()

	if Available() {
		t.Fatalf("expected stub binary name to be unavailable")
	}

	s := sig.NewSignal([]float64{0, 1, -1, 0}, sig.I16, 44100)
	_, err := RoundTrip(context.Background(), s, 128)
	if !errors.Is(err, ErrBinaryMissing) {
		t.Fatalf("expected ErrBinaryMissing, got %v", err)
	}
}

func TestSeekableBufferWriteSeekRead(t *testing.T) {
	var b seekableBuffer
	if _, err := b.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := b.Seek(0, 0); err != nil {
		t.Fatalf("seek: %v", err)
	}
	out := make([]byte, 5)
	n, err := b.Read(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n != 5 || string(out) != "hello" {
		t.Fatalf("round trip mismatch: %q", out[:n])
	}
}
