// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	assert.Equal(t, 18.220451756287311, New(0).Range(10, 20))
	// inverted bounds run downward from min
	assert.Equal(t, 11.779548243712689, New(0).Range(20, 10))
	assert.Equal(t, 5.0, New(0).Range(5, 5))

	r := New(3)
	for range 1000 {
		v := r.Range(-2, 3)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
}

func TestIntRange(t *testing.T) {
	r := New(0)
	var got []int
	for range 10 {
		got = append(got, r.IntRange(1, 6))
	}
	assert.Equal(t, []int{5, 6, 1, 5, 1, 3, 2, 6, 3, 1}, got)

	// both endpoints are reachable
	r = New(11)
	seen := map[int]int{}
	for range 5000 {
		v := r.IntRange(-2, 2)
		assert.GreaterOrEqual(t, v, -2)
		assert.LessOrEqual(t, v, 2)
		seen[v]++
	}
	assert.Len(t, seen, 5)
	for v, n := range seen {
		assert.InDelta(t, 1000, n, 150, "value %d", v)
	}

	assert.Equal(t, 4, New(9).IntRange(4, 4))
}

func TestQuantized(t *testing.T) {
	r := New(0)
	var got []float64
	for range 6 {
		got = append(got, r.Quantized(0, 100, 4))
	}
	assert.Equal(t, []float64{100, 100, 0, 75, 0, 50}, got)

	// values are multiples of the increment, offset from 0 not min
	r = New(5)
	for range 500 {
		v := r.Quantized(10, 20, 5)
		assert.Contains(t, []float64{0, 2, 4, 6, 8, 10}, v)
	}
}

func TestBipolar(t *testing.T) {
	r := New(0)
	assert.Equal(t, -4.1102258781436554, r.Bipolar(5))
	assert.Equal(t, -0.19965328258123138, r.Bipolar(5))
	assert.Equal(t, 0.16526127200047147, r.Bipolar(5))

	// zero magnitude still consumes two draws
	r = New(0)
	assert.Zero(t, r.Bipolar(0))
	assert.Equal(t, 0.039930656516246277, r.Float64())
	assert.Equal(t, 0.71709967809202724, r.Float64())

	r = New(8)
	pos, neg := 0, 0
	for range 4000 {
		v := r.Bipolar(2)
		assert.Less(t, math.Abs(v), 2.0)
		if v >= 0 {
			pos++
		} else {
			neg++
		}
	}
	assert.InDelta(t, 2000, pos, 200)
	assert.InDelta(t, 2000, neg, 200)
}

func TestBipolarInt(t *testing.T) {
	r := New(0)
	var got []int
	for range 5 {
		got = append(got, r.BipolarInt(3))
	}
	assert.Equal(t, []int{-3, 0, 0, -1, 1}, got)

	r = New(4)
	seen := map[int]bool{}
	for range 2000 {
		v := r.BipolarInt(2)
		assert.LessOrEqual(t, v, 2)
		assert.GreaterOrEqual(t, v, -2)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
}

func TestCoin(t *testing.T) {
	r := New(0)
	var got []bool
	for range 5 {
		got = append(got, r.Flip())
	}
	assert.Equal(t, []bool{false, false, true, false, true}, got)

	r = New(1)
	for range 100 {
		assert.False(t, r.Coin(0))
		assert.True(t, r.Coin(1))
		assert.False(t, r.Coin(-1))
		assert.True(t, r.Coin(2))
	}

	heads := 0
	r = New(21)
	for range 10000 {
		if r.Coin(0.25) {
			heads++
		}
	}
	assert.InDelta(t, 2500, heads, 200)
}

func TestWobble(t *testing.T) {
	r := New(0)
	in := []float64{10, 20, 30}
	out := r.Wobble(5, in...)
	assert.Equal(t, []float64{10, 20, 30}, in)
	assert.Len(t, out, 3)
	assert.Equal(t, 10-4.1102258781436554, out[0])
	for i := range out {
		assert.InDelta(t, in[i], out[i], 5)
	}
}

func TestSeedReset(t *testing.T) {
	r := New(0)
	a := []float64{r.Float64(), r.Float64()}
	r.Seed(0)
	assert.Equal(t, a, []float64{r.Float64(), r.Float64()})

	l := NewFromSource(NewLocked(NewEngine(5)))
	l.Seed(0)
	assert.Equal(t, a[0], l.Float64())

	s := NewFromSource(NewSysRand(1))
	s.Seed(0)
	assert.IsType(t, &Engine{}, s.Source())
	assert.Equal(t, a[0], s.Float64())

	// a locked system source is replaced by an engine too
	ls := NewFromSource(NewLocked(NewSysRand(1)))
	ls.Seed(0)
	assert.IsType(t, &Locked{}, ls.Source())
	assert.Equal(t, a, []float64{ls.Float64(), ls.Float64()})
}

func TestSysRand(t *testing.T) {
	a := NewFromSource(NewSysRand(99))
	b := NewFromSource(NewSysRand(99))
	for range 10 {
		v := a.Float64()
		assert.Equal(t, v, b.Float64())
		assert.True(t, v >= 0 && v < 1)
	}
}

func TestDefault(t *testing.T) {
	SetSeed(0)
	assert.Equal(t, 0.82204517562873103, Default().Float64())
	SetSeed(0)
	assert.Equal(t, 0.82204517562873103, Default().Float64())
}

func TestGaussian(t *testing.T) {
	r := New(0)
	want := []float64{1.3539063947850052, -0.058594931716723329, -0.21129156754180423, 0.78654688543175344, 0.47524335909928828}
	for _, w := range want {
		assert.InDelta(t, w, r.Gaussian(0, 1), 1e-12)
	}

	r = New(17)
	const n = 20000
	sum, sq := 0.0, 0.0
	for range n {
		v := r.Gaussian(3, 2)
		sum += v
		sq += v * v
	}
	mean := sum / n
	assert.InDelta(t, 3, mean, 0.06)
	assert.InDelta(t, 2, math.Sqrt(sq/n-mean*mean), 0.06)
}

func TestExpPoisson(t *testing.T) {
	r := New(13)
	const n = 20000
	es, ps := 0.0, 0.0
	for range n {
		e := r.Exp()
		assert.GreaterOrEqual(t, e, 0.0)
		es += e
		ps += r.Poisson(4)
	}
	assert.InDelta(t, 1, es/n, 0.03)
	assert.InDelta(t, 4, ps/n, 0.08)
	assert.Zero(t, r.Poisson(0))
}
