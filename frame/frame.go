// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides [Frame], an axis-aligned rectangle used to
// lay out sketches: point queries with optional jitter, insets, and
// subdivision into halves, quarters and grids.
package frame

import (
	"fmt"
	"image"
	"math"

	"cogentcore.org/sketch/base/randx"
	"cogentcore.org/sketch/geo"
)

// Frame is a rectangle with its top-left corner at (X, Y).
// Zero or negative sizes are allowed and give degenerate geometry.
//
// A Frame is a value: methods that derive new frames return fresh
// values that share the parent's [randx.Rand] and start with a
// wobble of 0. Only [Frame.SetWobble] mutates a frame.
type Frame struct {
	X, Y          float64
	Width, Height float64

	// wobble is the magnitude of jitter applied by JitteredX and JitteredY.
	wobble float64

	// rnd is the stream used for all random operations;
	// nil means [randx.Default].
	rnd *randx.Rand
}

// New returns a new frame with the given bounds drawing from rnd.
func New(rnd *randx.Rand, x, y, width, height float64) Frame {
	return Frame{X: x, Y: y, Width: width, Height: height, rnd: rnd}
}

// Full returns a frame covering a whole canvas of the given size.
func Full(rnd *randx.Rand, width, height float64) Frame {
	return New(rnd, 0, 0, width, height)
}

// Random returns a frame with a random position and size on a canvas
// of the given size. The corner is drawn from [-100, cw-100) by
// [-100, ch-100) and each side from [cw/22, cw*3/4), in that order.
func Random(rnd *randx.Rand, cw, ch float64) Frame {
	minSize := cw / 22
	maxSize := cw * (3.0 / 4)
	x := rnd.Range(-100, cw-100)
	y := rnd.Range(-100, ch-100)
	w := rnd.Range(minSize, maxSize)
	h := rnd.Range(minSize, maxSize)
	return New(rnd, x, y, w, h)
}

// Rand returns the stream this frame draws from.
func (f Frame) Rand() *randx.Rand {
	if f.rnd == nil {
		return randx.Default()
	}
	return f.rnd
}

// child returns a new frame with the given bounds sharing f's stream.
func (f Frame) child(x, y, width, height float64) Frame {
	return New(f.rnd, x, y, width, height)
}

// SetWobble sets the jitter magnitude for [Frame.JitteredX]
// and [Frame.JitteredY].
func (f *Frame) SetWobble(amount float64) {
	f.wobble = amount
}

// Wobble returns the jitter magnitude.
func (f Frame) Wobble() float64 {
	return f.wobble
}

// EndPoint returns the bottom-right corner.
func (f Frame) EndPoint() geo.Point {
	return geo.Point{X: f.X + f.Width, Y: f.Y + f.Height}
}

// MidPoint returns the center.
func (f Frame) MidPoint() geo.Point {
	return geo.Point{X: f.X + f.Width/2, Y: f.Y + f.Height/2}
}

// PointX returns the x coordinate at the given fraction of the
// width, where 0 is the left edge and 1 the right edge.
func (f Frame) PointX(fraction float64) float64 {
	return f.X + f.Width*fraction
}

// PointY returns the y coordinate at the given fraction of the
// height, where 0 is the top edge and 1 the bottom edge.
func (f Frame) PointY(fraction float64) float64 {
	return f.Y + f.Height*fraction
}

// JitteredX is [Frame.PointX] plus a bipolar jitter of the frame's
// wobble. It makes one [randx.Rand.Bipolar] call even when the
// wobble is 0, so draw counts do not depend on the wobble.
func (f Frame) JitteredX(fraction float64) float64 {
	return f.PointX(fraction) + f.Rand().Bipolar(f.wobble)
}

// JitteredY is the vertical counterpart of [Frame.JitteredX].
func (f Frame) JitteredY(fraction float64) float64 {
	return f.PointY(fraction) + f.Rand().Bipolar(f.wobble)
}

// PX is shorthand for [Frame.JitteredX], used by drawing tables.
func (f Frame) PX(fraction float64) float64 { return f.JitteredX(fraction) }

// PY is shorthand for [Frame.JitteredY].
func (f Frame) PY(fraction float64) float64 { return f.JitteredY(fraction) }

// RandomX returns a uniformly random x coordinate within the frame.
func (f Frame) RandomX() float64 {
	return f.X + f.Rand().RangeMax(f.Width)
}

// RandomY returns a uniformly random y coordinate within the frame.
func (f Frame) RandomY() float64 {
	return f.Y + f.Rand().RangeMax(f.Height)
}

// Area returns Width * Height.
func (f Frame) Area() float64 {
	return f.Width * f.Height
}

// Contains reports whether p lies within the frame,
// including the top and left edges but not the bottom and right.
func (f Frame) Contains(p geo.Point) bool {
	return p.X >= f.X && p.X < f.X+f.Width && p.Y >= f.Y && p.Y < f.Y+f.Height
}

// Rect returns the smallest integer rectangle covering the frame.
func (f Frame) Rect() image.Rectangle {
	end := f.EndPoint()
	return image.Rect(int(math.Floor(f.X)), int(math.Floor(f.Y)), int(math.Ceil(end.X)), int(math.Ceil(end.Y)))
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame(%g, %g, %g, %g)", f.X, f.Y, f.Width, f.Height)
}
