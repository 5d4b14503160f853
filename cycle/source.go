package cycle

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source supplies uniformly distributed random integers. *rand.Rand from math/rand/v2 implements it.
type Source interface {
	// IntN returns a random integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a deterministic Source seeded with seed. Two sources with the same seed produce the same
// sequence of numbers.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSeed returns a seed read from the operating system's random source.
func RandomSeed() uint64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}
