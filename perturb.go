package basins

import "golang.org/x/exp/rand"

// Perturb returns a copy of a with X, Y and Mass each displaced by a uniform
// offset in [-amount/2, amount/2), drawn from rng in that order.
func Perturb(a Attractor, amount float64, rng *rand.Rand) Attractor {
	return Attractor{
		X:    a.X + (rng.Float64()-0.5)*amount,
		Y:    a.Y + (rng.Float64()-0.5)*amount,
		Mass: a.Mass + (rng.Float64()-0.5)*amount,
	}
}

// PerturbAll perturbs every attractor of set with a generator seeded with
// seed. The same seed always yields the same set.
func PerturbAll(set []Attractor, amount float64, seed uint64) []Attractor {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Attractor, len(set))
	for i, a := range set {
		out[i] = Perturb(a, amount, rng)
	}
	return out
}
