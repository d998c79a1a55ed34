package peg

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReadCodepointRoundtripSimpleASCII(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.peg")
	defer teardown()
	//
	for _, ch := range []rune{'a', 'z', 'A', '9', '*', '\n', 0} {
		got, ok := readCodepoint([]byte(string(ch)))
		if !ok || got != ch {
			t.Errorf("expected to read %q, got %q (ok=%v)", ch, got, ok)
		}
	}
}

func TestReadCodepointRoundtripNonASCII(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.peg")
	defer teardown()
	//
	// 2, 3 and 4 UTF-8 bytes, plus some extras
	for _, ch := range []rune{'¢', '€', '𤭢', 'Ć', 'Ө', '自', '由'} {
		got, ok := readCodepoint([]byte(string(ch)))
		if !ok || got != ch {
			t.Errorf("expected to read %q, got %q (ok=%v)", ch, got, ok)
		}
	}
}

func TestReadCodepointFailsOnBadBytes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.peg")
	defer teardown()
	//
	bad := [][]byte{
		{},                 // empty
		{0xFF},             // not a lead byte
		{0x80},             // lone continuation byte
		{utf8OneFollowing}, // truncated sequence
		{utf8OneFollowing, 0xC0}, // continuation byte malformed
		{0xED, 0xA0, 0x80}, // encoded surrogate
	}
	for _, input := range bad {
		if _, ok := readCodepoint(input); ok {
			t.Errorf("expected read of % x to fail", input)
		}
	}
}

func TestBytesFollowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.peg")
	defer teardown()
	//
	cases := []struct {
		lead byte
		n    int
		ok   bool
	}{
		{'a', 0, true},
		{0xC3, 1, true},
		{0xE2, 2, true},
		{0xF0, 3, true},
		{0x80, 0, false},
		{0xFF, 0, false},
	}
	for _, c := range cases {
		n, ok := bytesFollowing(c.lead)
		if ok != c.ok || (ok && n != c.n) {
			t.Errorf("bytesFollowing(%#x) = (%d, %v), expected (%d, %v)", c.lead, n, ok, c.n, c.ok)
		}
	}
}
