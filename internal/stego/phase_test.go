package stego

import "testing"

// S5 from spec.md: phase coding round trip over a 1024-sample cover,
// with length preserved.
func TestPhaseRoundTrip(t *testing.T) {
	cover := seededInt16Cover(42, 1024)
	payload := bitsFromString("42")

	m, _ := Lookup(TagPhase)
	stego, side, err := m.Encode(cover, payload, SideParams{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if stego.Len() != 1024 {
		t.Fatalf("stego length = %d, want 1024", stego.Len())
	}
	decoded, err := m.Decode(stego, side)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !equalBits(decoded, payload) {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", decoded, payload)
	}
}

func TestPhaseEmptyPayloadDecodesEmpty(t *testing.T) {
	m, _ := Lookup(TagPhase)
	decoded, err := m.Decode(seededInt16Cover(1, 64), SideParams{"l": 0})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected empty payload, got %v", decoded)
	}
}
