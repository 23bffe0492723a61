package bits

import (
	"reflect"
	"testing"
)

func TestFromTextRoundTrip(t *testing.T) {
	s := "Hi!"
	bb := FromText(s)
	if bb.Len() != 24 {
		t.Fatalf("want 24 bits for 3 bytes, got %d", bb.Len())
	}
	if got := bb.ToText(); got != s {
		t.Fatalf("round trip mismatch: got %q, want %q", got, s)
	}
}

func TestFromBytesBigEndian(t *testing.T) {
	bb := FromBytes([]byte{0x42}) // 0100 0010
	want := []int{0, 1, 0, 0, 0, 0, 1, 0}
	if !reflect.DeepEqual(bb.Bits, want) {
		t.Fatalf("bits = %v, want %v", bb.Bits, want)
	}
}

func TestPackUnpackLittleEndianChunk(t *testing.T) {
	bits := []int{1, 0, 1, 1} // value with bit0=1, bit1=0, bit2=1, bit3=1 => 0b1101 = 13
	chunks := PackLittleEndianChunks(bits, 4)
	if len(chunks) != 1 || chunks[0] != 13 {
		t.Fatalf("chunks = %v, want [13]", chunks)
	}
	back := UnpackLittleEndianChunk(chunks[0], 4)
	if !reflect.DeepEqual(back, bits) {
		t.Fatalf("unpack = %v, want %v", back, bits)
	}
}

func TestNewRejectsNonBinary(t *testing.T) {
	if _, err := New([]int{0, 1, 2}); err == nil {
		t.Fatalf("expected error for non-binary bit")
	}
}
