package sim

// Rand is the random source used by generation and adversary movement.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a pseudo-random number in [0, n). n must be positive.
	Intn(n int) int
}

// RandomDirection picks one of the four cardinal directions uniformly.
func RandomDirection(rng Rand) Direction {
	return Cardinals[rng.Intn(len(Cardinals))]
}

func mustRand(rng Rand) {
	if rng == nil {
		panic("sim: nil random source")
	}
}
