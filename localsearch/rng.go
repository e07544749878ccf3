package localsearch

import "math/rand"

// defaultSeed is the fixed seed used when no WithSeed option is given.
const defaultSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
