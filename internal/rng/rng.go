// Package rng provides the reproducible seed+cursor random source used for
// replayable battles.
package rng

import (
	"math"
	"unicode/utf16"

	"github.com/google/uuid"
)

const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619
	golden    uint32 = 0x9e3779b9
)

// State is a position in a seeded random sequence. The zero cursor is the
// first draw. State values are immutable; every draw returns the advanced
// state and the caller must carry it forward.
type State struct {
	Seed   string `json:"seed"`
	Cursor int    `json:"cursor"`
}

// New returns the state at the start of the sequence for seed.
func New(seed string) State {
	return State{Seed: seed}
}

// NewSeed returns a fresh opaque seed.
func NewSeed() string {
	return uuid.NewString()
}

// HashSeed is 32-bit FNV-1a over the UTF-16 code units of seed.
func HashSeed(seed string) uint32 {
	hash := fnvOffset
	for _, unit := range utf16.Encode([]rune(seed)) {
		hash ^= uint32(unit)
		hash *= fnvPrime
	}
	return hash
}

// Value returns the draw at st without advancing it. The result is in [0, 1).
func Value(st State) float64 {
	base := HashSeed(st.Seed) + uint32(st.Cursor)*golden
	s := base ^ (base << 13)
	s ^= s >> 17
	s ^= s << 5
	return float64(s) / 4294967296
}

// Next returns the draw at st and the state for the following draw.
func (st State) Next() (float64, State) {
	v := Value(st)
	st.Cursor++
	return v, st
}

// Draw is a source of uniform values in [0, 1).
type Draw func() float64

// Stream adapts st into a Draw and reports the advanced state through the
// returned getter.
func Stream(st State) (Draw, func() State) {
	cur := st
	draw := func() float64 {
		var v float64
		v, cur = cur.Next()
		return v
	}
	return draw, func() State { return cur }
}

// IntN draws an integer uniformly from [min, max] inclusive.
func IntN(draw Draw, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return int(math.Floor(draw()*float64(max-min+1))) + min
}
