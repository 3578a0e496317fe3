package mixcols

import (
	"bytes"
	"testing"
)

func TestMixKnownColumn(t *testing.T) {
	// Single-column vector from FIPS-197 appendix B, round 1.
	state := [16]byte{
		0xd4, 0xbf, 0x5d, 0x30,
		0xe0, 0xb4, 0x52, 0xae,
		0xb8, 0x41, 0x11, 0xf1,
		0x1e, 0x27, 0x98, 0xe5,
	}
	want := [16]byte{
		0x04, 0x66, 0x81, 0xe5,
		0xe0, 0xcb, 0x19, 0x9a,
		0x48, 0xf8, 0xd3, 0x7a,
		0x28, 0x06, 0x26, 0x4c,
	}

	if got := Mix(state, false); !bytes.Equal(got[:], want[:]) {
		t.Errorf("Mix(state, false) = %x, want = %x", got, want)
	}
}

func TestMixFixedPoint(t *testing.T) {
	// A column of equal bytes is a fixed point: 2x + 3x + x + x = x.
	state := [16]byte{
		0x63, 0x63, 0x63, 0x63, 0x63, 0x63, 0x63, 0x63,
		0x63, 0x63, 0x63, 0x63, 0x63, 0x63, 0x63, 0x63,
	}

	if got := Mix(state, false); !bytes.Equal(got[:], state[:]) {
		t.Errorf("Mix(state, false) = %x, want = %x", got, state)
	}
}

func TestMixFinalRoundBypass(t *testing.T) {
	state := [16]byte{
		0xd4, 0xbf, 0x5d, 0x30, 0xe0, 0xb4, 0x52, 0xae,
		0xb8, 0x41, 0x11, 0xf1, 0x1e, 0x27, 0x98, 0xe5,
	}

	if got := Mix(state, true); !bytes.Equal(got[:], state[:]) {
		t.Errorf("Mix(state, true) = %x, want = %x", got, state)
	}
}

func TestMulAgainstLoopMultiply(t *testing.T) {
	gfMul := func(a, b byte) byte {
		var p byte
		for range 8 {
			if b&1 != 0 {
				p ^= a
			}
			carry := a&0x80 != 0
			a <<= 1
			if carry {
				a ^= 0x1b
			}
			b >>= 1
		}
		return p
	}

	for i := range 256 {
		b := byte(i)
		if got, want := mul2(b), gfMul(b, 2); got != want {
			t.Errorf("mul2(%#02x) = %#02x, want = %#02x", b, got, want)
		}
		if got, want := mul3(b), gfMul(b, 3); got != want {
			t.Errorf("mul3(%#02x) = %#02x, want = %#02x", b, got, want)
		}
	}
}
