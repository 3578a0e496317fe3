// Package subshift implements the combined SubBytes+ShiftRows pass as a
// byte-serial streaming engine.
//
// The engine shares the S-box with the key-schedule generator, so it consumes
// it one byte at a time using a two-step micro-protocol: step A presents a
// byte of the round snapshot to the S-box, step B captures the substituted
// result and emits it tagged with its ShiftRows destination. A full 128-bit
// block therefore takes exactly 32 steps.
package subshift

import "github.com/codahale/onebox/internal/sbox"

// A Write is a single substituted byte and the state index it lands at.
type Write struct {
	Index int
	Value byte
}

// An Engine streams the 16 bytes of a round snapshot through the S-box.
// The zero value is an idle engine.
type Engine struct {
	snapshot [16]byte
	pending  byte
	idx      int
	capture  bool
	running  bool
}

// Start begins a pass over snapshot.
//
// Start panics if a pass is already running; the round orchestrator never
// restarts the engine mid-pass.
func (e *Engine) Start(snapshot [16]byte) {
	if e.running {
		panic("onebox: substitution pass already running")
	}
	e.snapshot = snapshot
	e.idx = 0
	e.capture = false
	e.running = true
}

// Step advances the engine by one execution step. On capture steps it returns
// the write for the current byte and ok is true; on issue steps ok is false.
// done is true for exactly the step that commits the 16th byte, after which
// the engine is idle again. Stepping an idle engine is a no-op.
func (e *Engine) Step() (w Write, ok, done bool) {
	if !e.running {
		return Write{}, false, false
	}

	if !e.capture {
		// Issue: present the byte; the resource responds next step.
		e.pending = sbox.Sub(e.snapshot[e.idx])
		e.capture = true
		return Write{}, false, false
	}

	w = Write{Index: dest(e.idx), Value: e.pending}
	e.capture = false
	e.idx++
	if e.idx == len(e.snapshot) {
		e.running = false
		return w, true, true
	}
	return w, true, false
}

// Running reports whether a pass is in progress.
func (e *Engine) Running() bool {
	return e.running
}

// dest maps source index j = 4c + r to its ShiftRows destination. Row r
// rotates left by r positions, so the byte in column c lands in column
// (c - r) mod 4; row 0 is unchanged.
func dest(j int) int {
	r := j % 4
	c := j / 4
	return 4*((c-r+4)%4) + r
}
