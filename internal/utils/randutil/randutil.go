package randutil

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/fx"

	"github.com/SCR01/chaintrace/internal/config"
)

type (
	// Source is a goroutine-safe random source shared by the agents.
	Source interface {
		// IntRange returns a uniform integer in [min, max].
		IntRange(min int, max int) int
		// Choice returns a uniform element of values.
		Choice(values []string) string
		// Sample returns k distinct elements of values, in sampling order.
		Sample(values []string, k int) []string
	}

	source struct {
		mu  sync.Mutex
		rnd *rand.Rand
	}
)

var Module = fx.Options(
	fx.Provide(NewSource),
)

func NewSource(cfg *config.Config) Source {
	return New(cfg.Agent.Seed)
}

// New creates a Source. A zero seed is replaced by the current time.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &source{
		rnd: rand.New(rand.NewSource(seed)), // #nosec G404 - mock data only
	}
}

func (s *source) IntRange(min int, max int) int {
	if max <= min {
		return min
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rnd.Intn(max-min+1)
}

func (s *source) Choice(values []string) string {
	if len(values) == 0 {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return values[s.rnd.Intn(len(values))]
}

func (s *source) Sample(values []string, k int) []string {
	if k > len(values) {
		k = len(values)
	}
	if k <= 0 {
		return []string{}
	}

	s.mu.Lock()
	perm := s.rnd.Perm(len(values))
	s.mu.Unlock()

	sample := make([]string, k)
	for i := 0; i < k; i++ {
		sample[i] = values[perm[i]]
	}
	return sample
}
