package stego

import "testing"

// S8 from spec.md: tone insertion round trip on a 16000-sample
// random cover.
func TestToneInsertionRoundTrip(t *testing.T) {
	cover := seededInt16Cover(10, 16000)
	payload := []int{1, 0, 1, 0, 1, 0, 1, 0}

	m, _ := Lookup(TagToneInsertion)
	stego, side, err := m.Encode(cover, payload, SideParams{"f0": 1250.0, "f1": 8575.0})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := m.Decode(stego, side)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !equalBits(decoded, payload) {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", decoded, payload)
	}
}
