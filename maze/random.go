package maze

import (
	"math/rand"
	"time"
)

// RandomSource picks one of n options, returning an index in [0, n).
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a source seeded with seed.
// A zero seed is replaced by the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
