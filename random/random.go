// Package random provides the injectable randomness used by query selection and result picking.
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source yields uniformly distributed integers in [0, n).
// Intn panics if n <= 0, like math/rand.
type Source interface {
	Intn(n int) int
}

type locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

// New returns a goroutine safe source seeded from the clock.
func New() Source {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// NewSeeded returns a goroutine safe source whose sequence is fully determined by seed.
func NewSeeded(seed uint64) Source {
	return &locked{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Fixed replays values in order, wrapping around, each reduced modulo n.
// It exists for tests that need to know which element gets picked.
type Fixed struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewFixed panics on an empty value list.
func NewFixed(values ...int) *Fixed {
	if len(values) == 0 {
		panic("random: NewFixed needs at least one value")
	}
	return &Fixed{values: values}
}

func (f *Fixed) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	v := f.values[f.next%len(f.values)]
	f.next++

	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Calls is the number of values handed out so far.
func (f *Fixed) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next
}
