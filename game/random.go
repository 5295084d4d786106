package game

import "math/rand/v2"

// Random is the source used for sequence generation and shake jitter
// *rand.Rand from math/rand/v2 satisfies it
type Random interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns a PCG-backed source; equal seeds produce equal games
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
