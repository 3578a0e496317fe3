// Package mixcols implements the AES MixColumns transform as a pure function
// of the 128-bit cipher state.
//
// The state is column-major: byte j holds row j mod 4 of column j / 4, so each
// column occupies four consecutive bytes. The transform is combinational; the
// round orchestrator bypasses it on the final round.
package mixcols

// Mix returns the MixColumns transform of state, or state unchanged when
// finalRound is true.
func Mix(state [16]byte, finalRound bool) [16]byte {
	if finalRound {
		return state
	}

	var out [16]byte
	for c := range 4 {
		a0, a1, a2, a3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		out[4*c] = mul2(a0) ^ mul3(a1) ^ a2 ^ a3
		out[4*c+1] = a0 ^ mul2(a1) ^ mul3(a2) ^ a3
		out[4*c+2] = a0 ^ a1 ^ mul2(a2) ^ mul3(a3)
		out[4*c+3] = mul3(a0) ^ a1 ^ a2 ^ mul2(a3)
	}
	return out
}

// mul2 multiplies by x in GF(2^8) with reduction polynomial 0x11b.
func mul2(b byte) byte {
	p := b << 1
	if b&0x80 != 0 {
		p ^= 0x1b
	}
	return p
}

func mul3(b byte) byte {
	return mul2(b) ^ b
}
