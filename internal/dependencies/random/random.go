package random

import (
	"crypto/rand"
	"encoding/binary"
)

// Random is the source of randomness for coin flips and easy-mode moves.
// Each call must return a fresh value.
type Random interface {
	Uint32() uint32
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Uint32 returns a cryptographically random uint32
func (r *CryptoRandom) Uint32() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms
		return 0
	}
	return binary.LittleEndian.Uint32(buf[:])
}
