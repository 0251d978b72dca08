package engine

import (
	"math/rand"
	"time"
)

// Rand is the random source consumed by the spawn policy
// *rand.Rand satisfies it
type Rand interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// NewRand returns a seeded source, a zero seed is replaced by the current time
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
