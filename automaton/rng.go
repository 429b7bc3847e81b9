package automaton

import "math/rand/v2"

// rng is a thin seeded wrapper around math/rand/v2, used only by the
// Random and Smart choose strategies to pick a branch order. The
// pattern is lifted from the pack's other cellular-automaton repo
// (mad-ca's pkg/core/rng.go): a PCG source seeded once so that a given
// Config.Seed always reproduces the same search.
type rng struct {
	r *rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a uniformly random boolean.
func (r *rng) Bool() bool {
	return r.r.IntN(2) == 1
}
