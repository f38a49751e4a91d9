// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas provides [Context], an immediate mode 2D drawing
// context over an [image.RGBA] in the manner of the HTML canvas:
// build a path, then fill or stroke it with the current state.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
	"golang.org/x/image/vector"
)

// Identity is the identity transform.
var Identity = math32.Identity2()

// State is the part of a [Context] saved by [Context.Save].
type State struct {

	// StrokeColor is used by [Context.Stroke].
	StrokeColor color.Color

	// FillColor is used by [Context.Fill] and [Context.FillRect].
	FillColor color.Color

	// LineWidth is the stroke width in user units.
	LineWidth float64

	// Transform maps user coordinates to pixels.
	Transform math32.Matrix2
}

// Context draws onto an RGBA image. Lines have round caps and joins.
// It is not safe for concurrent use.
type Context struct {
	State

	img   *image.RGBA
	ras   *vector.Rasterizer
	stack []State

	// path is the current path in device coordinates.
	path ppath.Path
}

// New returns a new [Context] for a new transparent image of the given size.
func New(width, height int) *Context {
	return NewFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewFromImage returns a new [Context] drawing onto the given image.
func NewFromImage(img *image.RGBA) *Context {
	return &Context{
		State: State{
			StrokeColor: color.Black,
			FillColor:   color.Black,
			LineWidth:   1,
			Transform:   Identity,
		},
		img: img,
		ras: &vector.Rasterizer{},
	}
}

// Image returns the image being drawn onto.
func (c *Context) Image() *image.RGBA { return c.img }

// Width returns the image width in pixels.
func (c *Context) Width() int { return c.img.Bounds().Dx() }

// Height returns the image height in pixels.
func (c *Context) Height() int { return c.img.Bounds().Dy() }

// Save pushes a copy of the current [State].
func (c *Context) Save() {
	c.stack = append(c.stack, c.State)
}

// Restore pops the last saved [State]. It does nothing
// if there is no saved state. The path is not affected.
func (c *Context) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.State = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// SetStrokeColor sets the stroke color.
func (c *Context) SetStrokeColor(clr color.Color) { c.StrokeColor = clr }

// SetFillColor sets the fill color.
func (c *Context) SetFillColor(clr color.Color) { c.FillColor = clr }

// SetLineWidth sets the line width in user units.
func (c *Context) SetLineWidth(w float64) { c.LineWidth = w }

// Translate moves the origin of the user coordinates by (x, y).
func (c *Context) Translate(x, y float64) {
	c.Transform = c.Transform.Mul(math32.Translate2D(float32(x), float32(y)))
}

// Rotate rotates the user coordinates by angle radians,
// clockwise on screen for a positive angle.
func (c *Context) Rotate(angle float64) {
	c.Transform = c.Transform.Mul(math32.Rotate2D(float32(angle)))
}

// Scale scales the user coordinates.
func (c *Context) Scale(sx, sy float64) {
	c.Transform = c.Transform.Mul(math32.Scale2D(float32(sx), float32(sy)))
}

// ResetTransform restores the identity transform.
func (c *Context) ResetTransform() {
	c.Transform = Identity
}

// apply maps the user point (x, y) to device coordinates.
func (c *Context) apply(x, y float64) math32.Vector2 {
	return c.Transform.MulVector2AsPoint(math32.Vec2(float32(x), float32(y)))
}

// scale returns the average linear scale factor of the transform.
func (c *Context) scale() float32 {
	m := c.Transform
	return math32.Sqrt(math32.Abs(m.XX*m.YY - m.XY*m.YX))
}

// Clear fills the whole image with the given color, ignoring
// the transform and replacing any existing pixels.
func (c *Context) Clear(clr color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}
