package lottery

import (
	"math/rand"
	"sync"
	"time"
)

// RNG is the randomness used to settle wagers. It is an interface so
// tests can force draws and win rolls.
type RNG interface {
	// Draw returns count distinct ints from [1, max], in draw order.
	Draw(count, max int) []int
	// Chance returns true with probability p.
	Chance(p float64) bool
}

type mathRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRNG() RNG {
	return &mathRNG{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *mathRNG) Draw(count, max int) []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	drawn := make([]int, count)
	for i, v := range m.r.Perm(max)[:count] {
		drawn[i] = v + 1
	}
	return drawn
}

func (m *mathRNG) Chance(p float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.r.Float64() < p
}
