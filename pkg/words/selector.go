package words

import (
	"math/rand"
	"sync"
	"time"

	"github.com/bastiangx/wordgrid/pkg/letters"
)

// Selector runs the pipeline with a shared random source.
// The source is guarded by a mutex so one Selector can serve concurrent callers.
type Selector struct {
	limit int
	seed  int64
	mu    sync.Mutex
	rng   *rand.Rand
}

// Option configures a Selector.
type Option func(*Selector)

// WithLimit sets how many words are kept per letter.
func WithLimit(limit int) Option {
	return func(s *Selector) {
		s.limit = limit
	}
}

// WithSeed fixes the random source. Zero keeps the time based seed.
func WithSeed(seed int64) Option {
	return func(s *Selector) {
		s.seed = seed
	}
}

// NewSelector returns a Selector keeping DefaultLimit words unless configured otherwise.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{limit: DefaultLimit}
	for _, opt := range opts {
		opt(s)
	}
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

// Limit returns the configured limit.
func (s *Selector) Limit() int {
	return s.limit
}

// Select runs the pipeline over a plain corpus.
func (s *Selector) Select(letter letters.Letter, corpus []string) []string {
	return s.SelectN(letter, corpus, s.limit)
}

// SelectN is Select with a per call limit.
func (s *Selector) SelectN(letter letters.Letter, corpus []string, limit int) []string {
	matched := Filter(letter, corpus)
	s.mu.Lock()
	defer s.mu.Unlock()
	return sample(matched, limit, s.rng)
}

// SelectFrom runs the pipeline over an indexed corpus.
func (s *Selector) SelectFrom(letter letters.Letter, c *Corpus) []string {
	return s.SelectFromN(letter, c, s.limit)
}

// SelectFromN is SelectFrom with a per call limit.
func (s *Selector) SelectFromN(letter letters.Letter, c *Corpus, limit int) []string {
	matched := c.WithLetter(letter)
	s.mu.Lock()
	defer s.mu.Unlock()
	return sample(matched, limit, s.rng)
}
