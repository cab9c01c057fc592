package utils

import (
	"math"
	"math/rand/v2"
	"sort"
)

// RNG is the randomness source every roll draws from. It is always injected;
// the engine never touches a global generator. *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	IntN(n int) int
}

// seedMix decorrelates the two PCG words derived from a single seed.
const seedMix = 0x9e3779b97f4a7c15

// NewRNG returns a deterministic generator for seed. One RNG per worker:
// *rand.Rand is not safe for concurrent use.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedMix)) //nolint:gosec // Simulation randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(rng RNG, min, max int) int {
	if min >= max {
		return min
	}
	return rng.IntN(max-min+1) + min
}

// RandomFloat returns a random float64 in [min, max)
func RandomFloat(rng RNG, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// IsIntegral reports whether v has no fractional part.
func IsIntegral(v float64) bool {
	return v == math.Trunc(v)
}

// CumulativeWeights turns weights into a running total. Negative weights are
// treated as zero. The last element is the total weight.
func CumulativeWeights(weights []float64) []float64 {
	cumul := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w > 0 {
			total += w
		}
		cumul[i] = total
	}
	return cumul
}

// SelectCumulative returns the index chosen by a roll in [0, 1) against a
// cumulative weight table, via binary search. It returns -1 for an empty or
// zero-weight table.
func SelectCumulative(cumul []float64, roll float64) int {
	if len(cumul) == 0 || cumul[len(cumul)-1] <= 0 {
		return -1
	}
	target := roll * cumul[len(cumul)-1]
	idx := sort.Search(len(cumul), func(i int) bool {
		return cumul[i] > target
	})
	if idx >= len(cumul) {
		idx = len(cumul) - 1
	}
	return idx
}
