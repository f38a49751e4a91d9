// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"math"

	"cogentcore.org/core/paint/ppath"
)

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path = c.path[:0]
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	p := c.apply(x, y)
	c.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line to (x, y), starting a subpath
// there if the path is empty.
func (c *Context) LineTo(x, y float64) {
	if c.path.Empty() {
		c.MoveTo(x, y)
		return
	}
	p := c.apply(x, y)
	c.path.LineTo(p.X, p.Y)
}

// ClosePath closes the current subpath. Drawing after it
// continues from the start of the closed subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// join adds a path built in user coordinates to the current path,
// continuing the current subpath when q starts where it ends.
func (c *Context) join(q ppath.Path) {
	c.path = c.path.Join(q.Transform(c.Transform))
}

// Rect adds a closed rectangle subpath.
func (c *Context) Rect(x, y, w, h float64) {
	q := ppath.Path{}
	q.Rectangle(float32(x), float32(y), float32(w), float32(h))
	c.path = c.path.Append(q.Transform(c.Transform))
}

// Arc adds a clockwise circular arc around (cx, cy) from angle a0 to
// a1 in radians, joined to the current subpath by a straight line.
// A sweep of a full turn or more draws the whole circle; otherwise
// the end angle wraps so that the arc runs clockwise from a0.
func (c *Context) Arc(cx, cy, r, a0, a1 float64) {
	sweep := a1 - a0
	if sweep >= 2*math.Pi {
		sweep = 2 * math.Pi
	} else {
		sweep = math.Mod(sweep, 2*math.Pi)
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	sx, sy := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
	c.LineTo(sx, sy)
	q := ppath.Path{}
	q.MoveTo(float32(sx), float32(sy))
	q.Arc(float32(r), float32(r), 0, float32(a0), float32(a0+sweep))
	c.join(q)
}

// Circle adds a closed circle subpath.
func (c *Context) Circle(cx, cy, r float64) {
	c.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed axis-aligned ellipse subpath.
func (c *Context) Ellipse(cx, cy, rx, ry float64) {
	q := ppath.Path{}
	q.Ellipse(float32(cx), float32(cy), float32(rx), float32(ry))
	c.path = c.path.Append(q.Transform(c.Transform))
}
