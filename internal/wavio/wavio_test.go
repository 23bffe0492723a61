package wavio

import (
	"testing"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

func TestDTypeForBitDepth(t *testing.T) {
	cases := map[int]sig.DType{8: sig.U8, 16: sig.I16, 32: sig.I32}
	for bits, want := range cases {
		got, err := dtypeForBitDepth(bits)
		if err != nil {
			t.Fatalf("dtypeForBitDepth(%d): %v", bits, err)
		}
		if got != want {
			t.Fatalf("dtypeForBitDepth(%d) = %v, want %v", bits, got, want)
		}
	}
}

func TestDTypeForBitDepthUnsupported(t *testing.T) {
	if _, err := dtypeForBitDepth(24); err == nil {
		t.Fatalf("expected error for unsupported bit depth")
	}
}

func TestBitDepthForDType(t *testing.T) {
	bits, err := bitDepthForDType(sig.I16)
	if err != nil || bits != 16 {
		t.Fatalf("bitDepthForDType(I16) = (%d, %v), want (16, nil)", bits, err)
	}
	if _, err := bitDepthForDType(sig.F32); err == nil {
		t.Fatalf("expected error for float dtype without explicit cast")
	}
}
