// Package onebox implements a step-accurate AES-256 block encryption engine
// built around a single shared S-box instead of the usual sixteen-plus
// parallel lookup tables, the way a resource-constrained hardware accelerator
// would be.
//
// The engine advances in discrete execution steps. Each round streams the 16
// state bytes through the S-box two steps per byte (issue, then capture), and
// the on-the-fly key schedule consumes the same S-box four bytes at a time
// between rounds. The round orchestrator's state machine makes the two
// consumers structurally exclusive: only one of them can be active in any
// step, so the shared resource needs no arbiter.
//
// Key and plaintext enter byte-serially, most-significant byte first, and the
// ciphertext drains the same way. A loaded key is sticky: it survives a
// completed operation and encrypts further blocks without reloading. The
// [Cipher] type wraps the whole protocol behind [crypto/cipher.Block] for
// callers that do not care about step accuracy.
package onebox

import (
	"github.com/codahale/onebox/internal/keysched"
	"github.com/codahale/onebox/internal/mixcols"
	"github.com/codahale/onebox/internal/subshift"
)

const (
	// KeySize is the size of the cipher key in bytes.
	KeySize = 32

	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	rounds = 14
)

type phase int

const (
	phaseIdle phase = iota
	phaseInit
	phaseSubBytes
	phaseMixColumns
	phaseAddRoundKey
	phaseKeySchedule
	phaseOutput
)

// A Core is the cipher core and round orchestrator. It owns the working state
// register, the sticky key register, and the sliding key-schedule window, and
// it drives the two S-box-consuming engines strictly one at a time.
//
// The zero value is a reset core. Cores are not concurrent-safe.
type Core struct {
	sub subshift.Engine
	exp keysched.Expander

	key    [8]uint32
	window [8]uint32
	state  [16]byte
	out    [16]byte

	phase      phase
	round      int
	rconIdx    int
	useRcon    bool
	finalRound bool

	keyBytes    int
	blockBytes  int
	drainIdx    int
	keyLoaded   bool
	blockLoaded bool
	done        bool
}

// New returns a reset Core.
func New() *Core {
	return new(Core)
}

// LoadKeyByte presents one key byte, most-significant byte first. It reports
// whether the byte was accepted: bytes are ignored unless the core is idle
// and fewer than 32 key bytes have been loaded since the last reset or key
// invalidation.
func (c *Core) LoadKeyByte(b byte) bool {
	if c.phase != phaseIdle || c.keyLoaded {
		return false
	}

	c.key[c.keyBytes/4] = c.key[c.keyBytes/4]<<8 | uint32(b)
	c.keyBytes++
	c.keyLoaded = c.keyBytes == KeySize
	return true
}

// LoadBlockByte presents one plaintext byte, most-significant byte first. It
// reports whether the byte was accepted: bytes are ignored unless the core is
// idle and fewer than 16 block bytes have been loaded since the last
// completed operation or reset.
func (c *Core) LoadBlockByte(b byte) bool {
	if c.phase != phaseIdle || c.blockLoaded {
		return false
	}

	c.state[c.blockBytes] = b
	c.blockBytes++
	c.blockLoaded = c.blockBytes == BlockSize
	return true
}

// KeyLoaded reports whether a full 32-byte key is loaded.
func (c *Core) KeyLoaded() bool {
	return c.keyLoaded
}

// BlockLoaded reports whether a full 16-byte plaintext block is loaded.
func (c *Core) BlockLoaded() bool {
	return c.blockLoaded
}

// InvalidateKey discards the loaded key so a new one can be loaded. It
// reports whether the key was cleared; the request is ignored while an
// operation is running.
func (c *Core) InvalidateKey() bool {
	if c.phase != phaseIdle {
		return false
	}

	c.key = [8]uint32{}
	c.keyBytes = 0
	c.keyLoaded = false
	return true
}

// Start begins an encryption. It reports whether the request was honored:
// start is ignored unless the core is idle with both a full key and a full
// block loaded. An honored start performs the initial AddRoundKey; the
// operation then advances one execution step per Step call.
func (c *Core) Start() bool {
	if c.phase != phaseIdle || !c.keyLoaded || !c.blockLoaded {
		return false
	}

	c.window = c.key
	for j := range c.state {
		c.state[j] ^= keyByte(&c.window, j)
	}
	c.round = 1
	c.rconIdx = 0
	c.useRcon = true
	c.done = false
	c.phase = phaseInit
	return true
}

// Step advances the engine by one execution step. Stepping an idle core is a
// no-op.
func (c *Core) Step() {
	switch c.phase {
	case phaseIdle:

	case phaseInit:
		// SubBytes works from a snapshot so the per-byte writes below
		// cannot alias the bytes still being read.
		c.sub.Start(c.state)
		c.phase = phaseSubBytes

	case phaseSubBytes:
		w, ok, done := c.sub.Step()
		if ok {
			c.state[w.Index] = w.Value
		}
		if done {
			c.phase = phaseMixColumns
		}

	case phaseMixColumns:
		c.finalRound = c.round == rounds
		c.phase = phaseAddRoundKey

	case phaseAddRoundKey:
		mixed := mixcols.Mix(c.state, c.finalRound)
		for j := range mixed {
			mixed[j] ^= keyByte(&c.window, 16+j)
		}
		c.state = mixed

		if c.round == rounds {
			c.out = c.state
			c.drainIdx = 0
			c.done = true
			c.phase = phaseOutput
		} else {
			c.exp.Start(c.window, c.rconIdx, c.useRcon)
			c.phase = phaseKeySchedule
		}

	case phaseKeySchedule:
		if c.exp.Step() {
			words := c.exp.Words()
			copy(c.window[:4], c.window[4:])
			copy(c.window[4:], words[:])
			c.rconIdx = c.exp.NextRconIndex()
			c.useRcon = c.exp.NextUseRcon()
			c.round++
			c.phase = phaseInit
		}

	case phaseOutput:
		// The done pulse is one step wide. The key stays loaded; the
		// consumed plaintext does not.
		c.done = false
		c.blockLoaded = false
		c.blockBytes = 0
		c.phase = phaseIdle
	}
}

// Busy reports whether an operation is in progress.
func (c *Core) Busy() bool {
	return c.phase != phaseIdle
}

// Done reports the one-step completion pulse. It is true for exactly one
// execution step per completed operation, coincident with ciphertext
// availability.
func (c *Core) Done() bool {
	return c.done
}

// ReadByte drains the next ciphertext byte, most-significant byte first,
// wrapping after 16 bytes. The value is stale until Done has fired for the
// current operation; the engine does not gate reads.
func (c *Core) ReadByte() byte {
	b := c.out[c.drainIdx]
	c.drainIdx = (c.drainIdx + 1) % BlockSize
	return b
}

// Reset unconditionally returns the core to idle, discarding any in-flight
// operation, partial loads, and the loaded key. No done pulse fires for an
// aborted operation.
func (c *Core) Reset() {
	*c = Core{}
}

// keyByte extracts byte j of the window's 256-bit register, most-significant
// byte first: byte lane j mod 4 of word j / 4. Words w0..w3 occupy bytes
// 0..15, w4..w7 bytes 16..31.
func keyByte(w *[8]uint32, j int) byte {
	return byte(w[j/4] >> (24 - 8*(j%4)))
}
