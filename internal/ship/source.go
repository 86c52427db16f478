package ship

import (
	"crypto/rand"
	"encoding/binary"
)

// Source is the randomness provider for shot resolution.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Float64 returns a uniformly distributed random value in [0, 1).
	Float64() float64
}

// cryptoSource implements Source using crypto/rand.
//
// Invariant: All values produced are uniformly distributed in [0, 1).
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Float64 is in [0, 1).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Float64 returns a cryptographically secure random value in [0, 1).
//
// Panics with "ship: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("ship: crypto/rand failure: " + err.Error())
	}
	// Use the top 53 bits so the result is uniform over representable
	// values in [0, 1).
	v := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(v) / (1 << 53)
}
