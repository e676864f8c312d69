package service

import (
	"math/rand/v2"
	"sync"
)

// Simulated activity ranges. Lower bounds are inclusive, upper bounds exclusive.
const (
	PostsMin        = 50
	PostsMax        = 150
	InteractionsMin = 80
	InteractionsMax = 200
)

// ActivitySimulator draws the simulated post and interaction counts assigned
// at registration. It is safe for concurrent use.
type ActivitySimulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewActivitySimulator creates a simulator drawing from rng. A nil rng gets a
// randomly seeded generator; tests pass a fixed seed.
func NewActivitySimulator(rng *rand.Rand) *ActivitySimulator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ActivitySimulator{rng: rng}
}

// Next returns posts in [PostsMin, PostsMax) and interactions in
// [InteractionsMin, InteractionsMax), both uniformly distributed.
func (a *ActivitySimulator) Next() (posts, interactions int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	posts = PostsMin + a.rng.IntN(PostsMax-PostsMin)
	interactions = InteractionsMin + a.rng.IntN(InteractionsMax-InteractionsMin)
	return posts, interactions
}

// Float64 returns a value in [0, 1) from the same source.
func (a *ActivitySimulator) Float64() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rng.Float64()
}
