// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math/rand/v2"
	"sync"
)

// Source is the single primitive that all of the distributions
// in this package are derived from.
type Source interface {
	// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0),
	// advancing the source by one step.
	Float64() float64
}

// SysRand supports the system random number generator
// for either a separate rand.Rand source, or, if that
// is nil, the global rand stream. It is useful when
// reproducing the sketchlib stream does not matter.
type SysRand struct {

	// if non-nil, use this random number source instead of the global default one
	Rand *rand.Rand `display:"-"`
}

// NewGlobalRand returns a new SysRand that implements the
// [Source] interface, with the system global rand source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new SysRand with a new PCG
// rand.Rand random source with given initial seed.
func NewSysRand(seed uint64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new PCG rand.Rand source using given seed.
func (r *SysRand) NewRand(seed uint64) {
	r.Rand = rand.New(rand.NewPCG(seed, seed))
}

// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

// Locked serializes access to a [Source] so that one stream can be
// shared by several goroutines. Draws still form a single total order,
// but that order depends on goroutine scheduling.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked returns a [Locked] wrapping the given source.
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

// Float64 returns the next value of the wrapped source.
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// Seed reseeds the wrapped source if it is an [*Engine], and
// otherwise replaces it with a new [Engine], as [Rand.Seed] does.
// The lock is held so no draw observes a partial reseed.
func (l *Locked) Seed(seed int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok := l.src.(*Engine); ok {
		e.Seed(seed)
		return
	}
	l.src = NewEngine(seed)
}
