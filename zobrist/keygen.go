// Package zobrist builds a fixed table of random keys and combines them into
// a hash key for a chess position.
//
// The table is populated once from a seeded xorshift stream, so every build on
// every machine produces the same keys in the same slots. Hashing recomputes
// the key from a read-only view of the position on every call.
package zobrist

import "errors"

// Key is the width of every table entry and of the combined hash.
type Key uint32

// Seed is the compiled-in generator seed. Changing it changes every key.
const Seed Key = 0b11101010100100100110000110011110

// ErrZeroSeed is returned for a zero seed, which xorshift never leaves.
var ErrZeroSeed = errors.New("zobrist: zero seed is a fixed point of xorshift")

// Generator is a xorshift32 stream (shift triple 13, 17, 5).
type Generator struct {
	state Key
}

// NewGenerator returns a stream starting from seed.
func NewGenerator(seed Key) (*Generator, error) {
	if seed == 0 {
		return nil, ErrZeroSeed
	}
	return &Generator{state: seed}, nil
}

// MustGenerator is NewGenerator for seeds known at compile time.
func MustGenerator(seed Key) *Generator {
	g, err := NewGenerator(seed)
	if err != nil {
		panic(err)
	}
	return g
}

// Next advances the stream and returns the new state.
func (g *Generator) Next() Key {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x
	return x
}

// Take returns the next n values of the stream. It panics if n is negative
// and leaves the stream untouched.
func (g *Generator) Take(n int) []Key {
	if n < 0 {
		panic("zobrist: Take called with negative count")
	}
	out := make([]Key, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}
