// Package simulation provides the request-simulation behavior model:
// per-endpoint artificial latency and randomized failure injection.
// Randomness is injected so tests can run deterministically.
package simulation

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the source of randomness for latency and failure injection.
// *lockedRand satisfies it; tests substitute scripted implementations.
type Rand interface {
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// lockedRand serializes access to a math/rand source. The global rand
// functions are already locked but cannot be reseeded per instance.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRand returns a goroutine-safe Rand seeded with the given value.
// A zero seed falls back to the current time, giving each process run its
// own sequence.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}
