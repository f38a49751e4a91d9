// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
)

// Rand derives the distributions used for sketching from a
// single [Source]. Every method consumes a documented number of
// draws from the source, so a fixed seed and a fixed call order
// always give the same results.
//
// Callers are responsible for valid arguments: inverted ranges,
// NaN and infinite values pass straight through the formulas
// rather than being rejected.
type Rand struct {
	src Source
}

// New returns a new [Rand] drawing from a new [Engine] with the given seed.
func New(seed int64) *Rand {
	return &Rand{src: NewEngine(seed)}
}

// NewFromSource returns a new [Rand] drawing from the given source.
func NewFromSource(src Source) *Rand {
	return &Rand{src: src}
}

// Source returns the underlying source.
func (r *Rand) Source() Source {
	return r.src
}

// Seed reseeds the underlying source when it is an [*Engine] or
// [*Locked], and otherwise replaces it with a new [Engine].
// Values drawn before reseeding are not affected.
func (r *Rand) Seed(seed int64) {
	switch s := r.src.(type) {
	case *Engine:
		s.Seed(seed)
	case *Locked:
		s.Seed(seed)
	default:
		r.src = NewEngine(seed)
	}
}

// Float64 returns a value in [0,1), consuming one draw.
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Range returns a float uniformly distributed in [min, max),
// computed as min + t*(max-min) for one draw t. If min > max
// the range runs downward from min; the arguments are never swapped.
func (r *Rand) Range(min, max float64) float64 {
	return r.src.Float64()*(max-min) + min
}

// RangeMax returns a float uniformly distributed in [0, max).
func (r *Rand) RangeMax(max float64) float64 {
	return r.Range(0, max)
}

// IntRange returns an integer uniformly chosen from the closed
// interval [min, max], computed as floor(Range(min, max+1)).
// The result is not meaningful when max < min.
func (r *Rand) IntRange(min, max int) int {
	return int(math.Floor(r.Range(float64(min), float64(max)+1)))
}

// Quantized returns one of the evenly spaced values
// k * (max-min)/slices for k in [0, slices]. Note that k
// includes slices itself, so the result can equal max - min.
func (r *Rand) Quantized(min, max float64, slices int) float64 {
	inc := (max - min) / float64(slices)
	return float64(r.IntRange(0, slices)) * inc
}

// Bipolar returns a value in (-magnitude, magnitude): a magnitude
// drawn with [Rand.RangeMax] and a sign from a fair coin. It always
// consumes exactly two draws, including when magnitude is 0.
func (r *Rand) Bipolar(magnitude float64) float64 {
	n := r.RangeMax(magnitude)
	if r.Coin(0.5) {
		return n
	}
	return -n
}

// BipolarInt returns an integer in [-magnitude, magnitude],
// consuming exactly two draws.
func (r *Rand) BipolarInt(magnitude int) int {
	n := int(math.Floor(r.Range(0, 1) * float64(magnitude+1)))
	if r.Coin(0.5) {
		return n
	}
	return -n
}

// Coin returns true when one draw is strictly less than threshold.
// Thresholds outside [0,1] are not clamped: <= 0 is always false
// and > 1 is always true.
func (r *Rand) Coin(threshold float64) bool {
	return r.Range(0, 1) < threshold
}

// Flip is a fair coin: Coin(0.5).
func (r *Rand) Flip() bool {
	return r.Coin(0.5)
}

// Wobble returns a copy of the values, each offset by an
// independent [Rand.Bipolar] of the given magnitude.
func (r *Rand) Wobble(magnitude float64, values ...float64) []float64 {
	res := make([]float64, len(values))
	for i, v := range values {
		res[i] = v + r.Bipolar(magnitude)
	}
	return res
}
