package stego

import (
	"math"
	"testing"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

// S3 from spec.md: echo_single round trip over a 131072-sample cover.
func TestEchoSingleRoundTrip(t *testing.T) {
	cover := seededInt16Cover(3, 131072)
	payload := bitsFromString("42")

	m, _ := Lookup(TagEchoSingle)
	stego, side, err := m.Encode(cover, payload, SideParams{"d0": 250, "d1": 350})
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

// S4 from spec.md: echo_bipolar_bf plain round trip. The bruteforce
// delay-search case from an off-default pair is
// TestEchoBipolarBFBruteforceSearch below.
func TestEchoBipolarBFRoundTrip(t *testing.T) {
	cover := seededInt16Cover(4, 131072)
	payload := bitsFromString("42")

	m, _ := Lookup(TagEchoBipolarBF)
	stego, side, err := m.Encode(cover, payload, SideParams{"d0": 250, "d1": 350})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := m.Decode(stego, side)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !equalBits(decoded, payload) {
		t.Fatalf("round trip mismatch")
	}
}

func TestEchoBipolarBFBruteforceSearch(t *testing.T) {
	cover := seededInt16Cover(4, 131072)
	payload := bitsFromString("42")

	m, _ := Lookup(TagEchoBipolarBF)
	stego, side, err := m.Encode(cover, payload, SideParams{"d0": 149, "d1": 200, "delay_search": "bruteforce"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := m.Decode(stego, side)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !equalBits(decoded, payload) {
		t.Fatalf("round trip mismatch with bruteforce delay search")
	}
}

func TestEchoInvalidDelayOrder(t *testing.T) {
	cover := seededInt16Cover(5, 131072)
	payload := bitsFromString("4")

	m, _ := Lookup(TagEchoBF)
	_, _, err := m.Encode(cover, payload, SideParams{"d0": 200, "d1": 150})
	if err == nil {
		t.Fatalf("expected InvalidParameter for d0 >= d1")
	}
}

// Property 4 from spec.md: an empty payload must not perturb the
// cover beyond the centre/normalise/cast round trip every encoder
// applies regardless of payload.
func TestEchoEmptyPayloadLeavesSignalUnperturbed(t *testing.T) {
	for _, tag := range []MethodTag{TagEchoSingle, TagEchoBipolar, TagEchoBF, TagEchoBipolarBF} {
		cover := seededInt16Cover(7, 4096)
		m, _ := Lookup(tag)
		stego, _, err := m.Encode(cover, nil, SideParams{})
		if err != nil {
			t.Fatalf("%s: encode: %v", tag, err)
		}
		want := sig.ToDType(sig.CentreNormalise(cover.Samples), sig.F64, cover.DType)
		for i := range want {
			if math.Abs(stego.Samples[i]-want[i]) > 1 {
				t.Fatalf("%s: empty-payload sample %d = %v, want %v", tag, i, stego.Samples[i], want[i])
			}
		}
	}
}

func TestEchoSecretTooLarge(t *testing.T) {
	cover := seededInt16Cover(6, 1024)
	payload := bitsFromString("too much for 1024 samples")

	m, _ := Lookup(TagEchoBF)
	_, _, err := m.Encode(cover, payload, SideParams{})
	if err == nil {
		t.Fatalf("expected SecretTooLarge")
	}
}
