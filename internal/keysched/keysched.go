// Package keysched implements on-the-fly AES-256 key expansion over a sliding
// eight-word window.
//
// Each call expands the window by four words, consuming the shared S-box one
// byte at a time with the same two-step issue/capture micro-protocol the
// SubBytes engine uses: exactly 8 steps per call. The round orchestrator
// alternates calls between the "full" schedule step (RotWord, SubWord, Rcon)
// and AES-256's extra mid-schedule SubWord-only step.
package keysched

import "github.com/codahale/onebox/internal/sbox"

// rcon holds the round constants for expansion steps 0 through 7. AES-256
// never consumes more than 7 of them across 14 rounds.
var rcon = [8]uint32{
	0x01000000, 0x02000000, 0x04000000, 0x08000000,
	0x10000000, 0x20000000, 0x40000000, 0x80000000,
}

// An Expander generates the next four key-schedule words from an eight-word
// window. The zero value is an idle expander.
type Expander struct {
	window  [8]uint32
	src     [4]byte
	t       uint32
	words   [4]uint32
	idx     int
	capture bool
	pending byte
	rconIdx int
	useRcon bool
	running bool
}

// Start begins expanding window. useRcon selects the full schedule step
// (rotate the source word, then XOR the round constant at rconIdx into the
// substituted result); when false the source word is substituted as-is.
//
// Start panics if an expansion is already running.
func (e *Expander) Start(window [8]uint32, rconIdx int, useRcon bool) {
	if e.running {
		panic("onebox: key expansion already running")
	}

	src := window[7]
	if useRcon {
		src = src<<8 | src>>24
	}

	e.window = window
	e.src = [4]byte{byte(src >> 24), byte(src >> 16), byte(src >> 8), byte(src)}
	e.t = 0
	e.idx = 0
	e.capture = false
	e.rconIdx = rconIdx
	e.useRcon = useRcon
	e.running = true
}

// Step advances the expansion by one execution step. done is true for exactly
// the step that completes the fourth substituted byte and commits the new
// words. Stepping an idle expander is a no-op.
func (e *Expander) Step() (done bool) {
	if !e.running {
		return false
	}

	if !e.capture {
		e.pending = sbox.Sub(e.src[e.idx])
		e.capture = true
		return false
	}

	e.t = e.t<<8 | uint32(e.pending)
	e.capture = false
	e.idx++
	if e.idx < len(e.src) {
		return false
	}

	if e.useRcon {
		e.t ^= rcon[e.rconIdx]
	}

	// w[i] = w[i-4] ^ w[i-1], seeded by T in place of w[i-1].
	e.words[0] = e.window[0] ^ e.t
	e.words[1] = e.window[1] ^ e.words[0]
	e.words[2] = e.window[2] ^ e.words[1]
	e.words[3] = e.window[3] ^ e.words[2]
	e.running = false
	return true
}

// Words returns the four words produced by the last completed expansion.
func (e *Expander) Words() [4]uint32 {
	return e.words
}

// NextRconIndex returns the round-constant index for the next expansion.
func (e *Expander) NextRconIndex() int {
	if e.useRcon {
		return e.rconIdx + 1
	}
	return e.rconIdx
}

// NextUseRcon reports whether the next expansion is a full schedule step.
// The flag alternates on every call.
func (e *Expander) NextUseRcon() bool {
	return !e.useRcon
}

// Running reports whether an expansion is in progress.
func (e *Expander) Running() bool {
	return e.running
}
