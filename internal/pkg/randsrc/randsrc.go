// Package randsrc provides the injectable random sources used by the chat
// responder, the resume analyzer and the websocket thinking delay.
package randsrc

import (
	"math/rand/v2"
	"sync"
)

type Source interface {
	IntN(n int) int
	Float64() float64
}

type global struct{}

func (global) IntN(n int) int   { return rand.IntN(n) }
func (global) Float64() float64 { return rand.Float64() }

// Default is backed by the runtime-seeded top-level generator.
func Default() Source { return global{} }

type locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// Seeded returns a deterministic source that is safe for concurrent use.
func Seeded(seed uint64) Source {
	return &locked{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Fixed always yields the same values. Tests use it to pin a pool pick.
type Fixed struct {
	N int
	F float64
}

func (f Fixed) IntN(n int) int {
	if f.N < 0 || n <= 0 {
		return 0
	}
	return f.N % n
}

func (f Fixed) Float64() float64 { return f.F }
