package onebox

import (
	"crypto/cipher"
	"fmt"
)

// A Cipher adapts a Core to the [crypto/cipher.Block] interface. It loads the
// key once at construction and reuses it for every block, driving the
// byte-serial load/start/drain protocol to completion on each Encrypt call.
//
// The engine is encrypt-only; Decrypt panics.
type Cipher struct {
	core Core
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher returns a Cipher using the given 32-byte AES-256 key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("onebox: invalid key size %d", len(key))
	}

	c := new(Cipher)
	for _, b := range key {
		c.core.LoadKeyByte(b)
	}
	return c, nil
}

// BlockSize returns the AES block size, 16 bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first 16 bytes of src into dst. Encrypt panics if
// either src or dst is shorter than a full block.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("onebox: input not full block")
	}
	if len(dst) < BlockSize {
		panic("onebox: output not full block")
	}

	for _, b := range src[:BlockSize] {
		c.core.LoadBlockByte(b)
	}
	c.core.Start()
	for !c.core.Done() {
		c.core.Step()
	}
	for i := range dst[:BlockSize] {
		dst[i] = c.core.ReadByte()
	}
	c.core.Step() // completes the output phase, returning the core to idle
}

// Decrypt panics: decryption is not supported.
func (c *Cipher) Decrypt(dst, src []byte) {
	panic("onebox: decryption not supported")
}
