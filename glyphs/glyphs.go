// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glyphs draws small hand-drawn looking symbols (digits,
// letters, arrows and simple objects) into a [frame.Frame].
// Each glyph is stroked one or more times with jittered points,
// so repeated strokes give a sketchy look.
package glyphs

import (
	"slices"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/sketch/base/randx"
	"cogentcore.org/sketch/frame"
)

// Pen is the drawing context used by glyphs.
// It is implemented by *canvas.Context.
type Pen interface {
	frame.Pen
	ClosePath()
	Circle(cx, cy, r float64)
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
}

// Shape adds the path of one glyph to the pen, mapping unit
// coordinates through the frame.
type Shape func(pen Pen, f frame.Frame)

// Options configures [Draw].
type Options struct {

	// Frame is the rectangle the glyph fills.
	Frame frame.Frame

	// Shape is the name of the glyph; an empty or unknown name
	// draws a randomly chosen glyph.
	Shape string

	// Wobble is the jitter magnitude applied to every point.
	Wobble float64

	// Iterations is the number of times the glyph is stroked;
	// values below 1 stroke it once.
	Iterations int
}

type polyline struct {
	pts    []float64
	closed bool
}

type entry struct {
	name  string
	lines []polyline
	draw  Shape
}

// shapes is the registry built from table.
var shapes *keylist.List[string, Shape]

func init() {
	shapes = keylist.New[string, Shape]()
	for _, e := range table {
		if e.draw != nil {
			shapes.Set(e.name, e.draw)
			continue
		}
		shapes.Set(e.name, strokeLines(e.lines))
	}
}

func pl(xy ...float64) polyline { return polyline{pts: xy} }

func closed(xy ...float64) polyline { return polyline{pts: xy, closed: true} }

func lines(ls ...polyline) []polyline { return ls }

// strokeLines returns a shape tracing the given polylines, one
// jittered point at a time with x drawn before y.
func strokeLines(ls []polyline) Shape {
	return func(pen Pen, f frame.Frame) {
		for _, l := range ls {
			for i := 0; i+1 < len(l.pts); i += 2 {
				x := f.PX(l.pts[i])
				y := f.PY(l.pts[i+1])
				if i == 0 {
					pen.MoveTo(x, y)
				} else {
					pen.LineTo(x, y)
				}
			}
			if l.closed {
				pen.ClosePath()
			}
		}
	}
}

// rotated returns a shape drawing the named glyph turned by angle
// radians about the jittered center of the frame.
func rotated(name string, angle float64) Shape {
	return func(pen Pen, f frame.Frame) {
		cx, cy := f.PX(0.5), f.PY(0.5)
		pen.Save()
		pen.Translate(cx, cy)
		pen.Rotate(angle)
		pen.Translate(-cx, -cy)
		shapes.At(name)(pen, f)
		pen.Restore()
	}
}

// Names returns the names of all glyphs in display order.
func Names() []string {
	return slices.Clone(shapes.Keys)
}

// Has reports whether a glyph with the given name exists.
func Has(name string) bool {
	_, ok := shapes.AtTry(name)
	return ok
}

// Random returns the name of a random glyph drawn from rnd.
func Random(rnd *randx.Rand) string {
	return randx.ChoiceKey(rnd, shapes)
}

// Draw strokes a glyph into opts.Frame and returns the name of the
// glyph drawn. An unknown shape name picks one with a single draw
// from the frame's stream.
func Draw(pen Pen, opts Options) string {
	f := opts.Frame
	f.SetWobble(opts.Wobble)
	name := opts.Shape
	shape, ok := shapes.AtTry(name)
	if !ok {
		name = Random(f.Rand())
		shape = shapes.At(name)
	}
	for range max(opts.Iterations, 1) {
		pen.BeginPath()
		shape(pen, f)
		pen.Stroke()
	}
	return name
}
