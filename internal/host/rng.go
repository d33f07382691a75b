package host

import "math/rand/v2"

// RNG is a stream of uniform random numbers. An RNG is owned by a single
// goroutine for the duration of a call.
type RNG interface {
	// Generate returns a uniform number in (0,1].
	Generate() float64
}

type PCG struct {
	r *rand.Rand
}

func NewRNG(seed uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *PCG) Generate() float64 {
	return 1 - g.r.Float64()
}
