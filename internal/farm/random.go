package farm

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the randomness the simulation consumes: the per-day pest jitter
// and the yield projection. Injectable so tests can pin exact trajectories.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// seededRNG builds a replayable PRNG: the same seed yields the same run.
// PCG wants two seed words, so the one caller seed is stretched through
// fnv under two salts.
func seededRNG(seed int64) *rand.Rand {
	// #nosec G404 -- simulation randomness, not security material.
	return rand.New(rand.NewPCG(seedWord(seed, "hi"), seedWord(seed, "lo")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%s/%d", salt, seed)
	return h.Sum64()
}
