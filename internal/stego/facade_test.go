package stego

import "testing"

func TestFacadeEncodeDecodeRoundTrip(t *testing.T) {
	cover := seededInt16Cover(11, 32)
	payload := bitsFromString("Hi")

	f, err := NewFacade(TagLSB, cover, 1, payload)
	if err != nil {
		t.Fatalf("NewFacade: %v", err)
	}
	stego, side, err := f.Encode(SideParams{"depth": 1})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := f.Decode(stego, side)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !equalBits(decoded, payload) {
		t.Fatalf("facade round trip mismatch")
	}

	sb, err := f.StatBundle(decoded)
	if err != nil {
		t.Fatalf("stat bundle: %v", err)
	}
	if sb.BERPercent != 0 {
		t.Fatalf("expected BER 0 on noiseless round trip, got %f", sb.BERPercent)
	}
	if sb.MSE < 0 {
		t.Fatalf("MSE must be non-negative")
	}
}

func TestFacadeUnknownMethod(t *testing.T) {
	cover := seededInt16Cover(12, 16)
	_, err := NewFacade(MethodTag("nonexistent"), cover, 1, nil)
	if err == nil {
		t.Fatalf("expected error for unknown method tag")
	}
}

func TestFacadeChannelReduction(t *testing.T) {
	cover := seededInt16Cover(13, 64) // interleaved stereo pretend
	payload := []int{}
	f, err := NewFacade(TagLSB, cover, 2, payload)
	if err != nil {
		t.Fatalf("NewFacade: %v", err)
	}
	if f.cover.Len() != cover.Len()/2 {
		t.Fatalf("expected channel-0 reduction, got len %d", f.cover.Len())
	}
}
