package adapters

import (
	"math/rand/v2"
	"sync"
	"time"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
)

// MathRandom implements RandomSource with a PCG generator. Safe for concurrent use.
type MathRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMathRandom creates a random source. A zero seed picks a random seed.
func NewMathRandom(seed uint64) *MathRandom {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &MathRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a value in [0, n).
func (r *MathRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// SystemClock implements Clock with the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

var (
	_ ports.RandomSource = (*MathRandom)(nil)
	_ ports.Clock        = SystemClock{}
)
