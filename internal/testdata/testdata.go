// Package testdata provides deterministic pseudorandom data for seeding fuzz
// corpora and randomized tests.
package testdata

import "crypto/sha3"

// A DRBG is a deterministic byte stream derived from a name.
type DRBG struct {
	shake *sha3.SHAKE
}

// New returns a DRBG seeded with the given name.
func New(name string) *DRBG {
	shake := sha3.NewSHAKE128()
	_, _ = shake.Write([]byte(name))
	return &DRBG{shake: shake}
}

// Data returns the next n bytes of the stream.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.shake.Read(b)
	return b
}
