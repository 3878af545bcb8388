// Package rng provides the seedable randomness shared by level generation,
// enemy spawning, combat and loot rolls.
package rng

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the game draws from.
// Tests substitute a scripted implementation to pin outcomes.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// New returns a generator seeded with seed.
// A seed of 0 means a time-derived seed.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Between returns a uniform integer in [lo, hi], both ends inclusive.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Chance reports whether an event with probability p happened.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
