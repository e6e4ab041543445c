package outcome

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource yields uniform samples in [0,1)
type RandomSource interface {
	Sample() float64
}

type pcgSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a PCG-backed source safe for concurrent use.
// A zero seed seeds from the clock.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *pcgSource) Sample() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

type fixedSource float64

// NewFixedSource always returns v. NewFixedSource(0) wins at any positive chance.
func NewFixedSource(v float64) RandomSource {
	return fixedSource(v)
}

func (f fixedSource) Sample() float64 { return float64(f) }

type sequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequenceSource cycles through values in order
func NewSequenceSource(values ...float64) RandomSource {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &sequenceSource{values: values}
}

func (s *sequenceSource) Sample() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
