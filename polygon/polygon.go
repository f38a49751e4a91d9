// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polygon provides [Polygon], a regular polygon whose
// vertices carry a fixed random jitter, so that the same shape can
// be redrawn at any size, position and rotation.
package polygon

import (
	"github.com/chewxy/math32"

	"cogentcore.org/sketch/base/randx"
)

// Pen is the drawing context a polygon renders into.
// It is implemented by *canvas.Context.
type Pen interface {
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Fill()
	Stroke()
}

// Vertex is a point of a unit polygon.
type Vertex struct {
	X, Y float32
}

// Polygon is a unit regular polygon centered on the origin,
// with a jitter offset of at most 1 per vertex.
type Polygon struct {

	// Points are the vertices on the unit circle, starting at (0, 1).
	Points []Vertex

	// Jitter is the per-vertex offset, scaled by
	// [RenderOptions.Jitter] when drawn.
	Jitter []Vertex
}

// RenderOptions places a polygon on the canvas.
type RenderOptions struct {

	// X and Y are the center.
	X, Y float64

	// Radius scales the unit polygon.
	Radius float64

	// Jitter scales the per-vertex offsets; 0 draws a regular polygon.
	Jitter float64

	// Angle is the rotation in radians.
	Angle float64
}

// New returns a polygon with the given number of segments, drawing
// two values per vertex from rnd for its jitter: a direction and a
// magnitude. Fewer than 3 segments give a degenerate polygon.
func New(rnd *randx.Rand, segments int) *Polygon {
	segments = max(segments, 0)
	p := &Polygon{
		Points: make([]Vertex, segments),
		Jitter: make([]Vertex, segments),
	}
	for i := range segments {
		a := 2 * math32.Pi / float32(segments) * float32(i)
		p.Points[i] = Vertex{math32.Sin(a), math32.Cos(a)}
		// the direction is drawn in [0, 360) but used as radians
		dir := float32(rnd.Range(0, 360))
		mag := float32(rnd.Range(0, 1))
		p.Jitter[i] = Vertex{math32.Sin(dir) * mag, math32.Cos(dir) * mag}
	}
	return p
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.Points)
}

// Vertex returns vertex i scaled by radius with the jitter
// scaled by jitter, relative to the polygon center.
func (p *Polygon) Vertex(i int, radius, jitter float64) (x, y float64) {
	pt, j := p.Points[i], p.Jitter[i]
	x = radius * (float64(pt.X) + float64(j.X)*jitter)
	y = radius * (float64(pt.Y) + float64(j.Y)*jitter)
	return
}

// Render fills and strokes the closed polygon with the pen's
// current colors, leaving the pen's transform unchanged.
func (p *Polygon) Render(pen Pen, opts RenderOptions) {
	if p.Len() == 0 {
		return
	}
	pen.Save()
	pen.Translate(opts.X, opts.Y)
	pen.Rotate(opts.Angle)
	pen.BeginPath()
	pen.MoveTo(p.Vertex(0, opts.Radius, opts.Jitter))
	for i := 1; i < p.Len(); i++ {
		pen.LineTo(p.Vertex(i, opts.Radius, opts.Jitter))
	}
	pen.LineTo(p.Vertex(0, opts.Radius, opts.Jitter))
	pen.Fill()
	pen.Stroke()
	pen.Restore()
}
