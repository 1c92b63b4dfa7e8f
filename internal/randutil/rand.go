// Package randutil centralises the randomness used by the game engine so every
// call site can swap in a deterministic source for tests and replays.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Source is the randomness the engine consumes: uniform floats in [0,1),
// uniform integers in [0,n) and an unbiased Fisher-Yates shuffle.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewTime returns a source seeded from the wall clock, for interactive play.
func NewTime() *rand.Rand {
	return New(time.Now().UnixNano())
}

// Choice returns a uniformly chosen element of pool. It panics when pool is empty.
func Choice[T any](rng Source, pool []T) T {
	if len(pool) == 0 {
		panic("randutil: choice from empty pool")
	}
	return pool[rng.IntN(len(pool))]
}

// Sample draws k elements of pool uniformly without replacement, in draw order.
// k is clamped to len(pool). The pool itself is left untouched.
func Sample[T any](rng Source, pool []T, k int) []T {
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return nil
	}

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}

	// Partial Fisher-Yates: the first k slots end up holding the sample.
	out := make([]T, k)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = pool[idx[i]]
	}
	return out
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
