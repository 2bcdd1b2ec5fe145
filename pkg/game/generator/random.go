package generator

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness for every placement decision.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

func newTimeRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// between draws from [lo, hi). An empty range yields lo.
func between(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}
