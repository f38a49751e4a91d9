// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math/bits"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// seedMultiplier is the Knuth multiplier used to spread seed words
// across the whole state, as in the MT19937 initialization.
const seedMultiplier = 1812433253

// Engine is a xoshiro128** pseudorandom generator with 128 bits of state.
// For a given seed it produces exactly the same stream as the
// JavaScript sketchlib "Random" generator, so a seed shared from
// a browser sketch renders the same picture here.
//
// An Engine must be seeded before use; [NewEngine] does that.
// It is not safe for concurrent use: wrap it with [Locked] to share it.
type Engine struct {
	x, y, z, w uint32
}

// NewEngine returns a new [Engine] seeded with the given seed.
func NewEngine(seed int64) *Engine {
	e := &Engine{}
	e.Seed(seed)
	return e
}

// Seed reinitializes the engine from a single integer seed,
// discarding all prior state. Only the low 32 bits of the seed
// are used, matching integer seeds in sketchlib.
func (e *Engine) Seed(seed int64) {
	e.SeedWords(uint32(int32(seed)))
}

// SeedWords reinitializes the engine from up to four seed words.
// Missing words are zero and extra words are ignored. The words
// are mixed so that nearby seeds give unrelated streams, and the
// mix is repeated until the state is non-zero, since an all-zero
// state would make the generator emit zero forever.
func (e *Engine) SeedWords(words ...uint32) {
	var t [4]uint32
	copy(t[:], words)
	for {
		for i := uint32(1); i < 8; i++ {
			n := t[(i-1)&3]
			t[i&3] ^= i + seedMultiplier*(n^(n>>30))
		}
		if t[0]|t[1]|t[2]|t[3] != 0 {
			break
		}
	}
	e.x, e.y, e.z, e.w = t[0], t[1], t[2], t[3]
}

// SeedString seeds the engine from a string. Decimal integer strings
// seed exactly as [Engine.Seed] would; any other string is hashed
// and the two halves of the hash become the first two seed words.
func (e *Engine) SeedString(s string) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		e.Seed(v)
		return
	}
	h := xxhash.Sum64String(s)
	e.SeedWords(uint32(h), uint32(h>>32))
}

// State returns the four internal state words.
func (e *Engine) State() [4]uint32 {
	return [4]uint32{e.x, e.y, e.z, e.w}
}

// Uint32 advances the generator by one step and returns
// a pseudo-random 32-bit value.
func (e *Engine) Uint32() uint32 {
	result := bits.RotateLeft32(e.y*5, 7) * 9
	t := e.y << 9
	e.z ^= e.x
	e.w ^= e.y
	e.y ^= e.z
	e.x ^= e.w
	e.z ^= t
	e.w = bits.RotateLeft32(e.w, 11)
	return result
}

// Uint53 returns a pseudo-random 53-bit value: the 32 bits of one step
// in the high part and 21 bits of the resulting state in the low part.
func (e *Engine) Uint53() uint64 {
	hi := uint64(e.Uint32())
	return hi<<21 | uint64((e.x+e.w)>>11)
}

// Float64 returns a pseudo-random number in the half-open interval [0,1),
// advancing the generator by exactly one step.
func (e *Engine) Float64() float64 {
	return float64(e.Uint53()) / (1 << 53)
}
