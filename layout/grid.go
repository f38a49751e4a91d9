// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout places repeated drawings across a frame.
package layout

import (
	"math"

	"cogentcore.org/sketch/frame"
	"cogentcore.org/sketch/geo"
)

// Pen is the transform part of a drawing context.
// It is implemented by *canvas.Context.
type Pen interface {
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(sx, sy float64)
}

// GridOptions configures [Grid].
type GridOptions struct {

	// Frame is the area covered by the grid.
	Frame frame.Frame

	// Columns and Rows are the number of cells across and down.
	Columns, Rows int

	// Probability is the chance that each cell is drawn.
	Probability float64

	// MinScale and MaxScale bound the random scale of each cell;
	// zero means 1.
	MinScale, MaxScale float64

	// Margin is the relative inset of each cell.
	Margin float64

	// Wobble is the maximum cell offset as a fraction of the frame width.
	Wobble float64

	// Angles is the number of rotations a cell can take, evenly
	// spaced over a full turn; below 1 means 1 (no rotation).
	Angles int
}

// Cell is one drawn grid cell. Its frame is relative to the grid
// frame origin, which is where the pen's origin is while drawing.
type Cell struct {
	Frame frame.Frame

	// Column and Row locate the cell in the grid.
	Column, Row int

	// Index is the cell number in row-major order, counting cells
	// that were skipped.
	Index int
}

// Grid calls draw for each cell of a Columns by Rows grid over
// opts.Frame that passes a coin toss with opts.Probability.
// For every drawn cell it takes, in order, a scale, an x and y
// offset, and a rotation from the frame's stream, then draws with
// the pen rotated and scaled about the cell center.
func Grid(pen Pen, opts GridOptions, draw func(c Cell)) {
	if opts.Columns <= 0 || opts.Rows <= 0 {
		return
	}
	f := opts.Frame
	rnd := f.Rand()
	minScale := orOne(opts.MinScale)
	maxScale := orOne(opts.MaxScale)
	angles := max(opts.Angles, 1)
	cw := f.Width / float64(opts.Columns)
	ch := f.Height / float64(opts.Rows)
	wob := opts.Wobble * f.Width
	turn := geo.Tau / float64(angles)

	pen.Save()
	pen.Translate(f.X, f.Y)
	index := 0
	for y := range opts.Rows {
		for x := range opts.Columns {
			idx := index
			index++
			if !rnd.Coin(opts.Probability) {
				continue
			}
			scale := rnd.Range(minScale, maxScale)
			cx := float64(x) * cw
			cy := float64(y) * ch
			cell := frame.New(rnd, cx+rnd.Bipolar(wob), cy+rnd.Bipolar(wob), cw, ch)
			cell = cell.InsetRelative(opts.Margin)
			angle := math.Floor(rnd.Range(0, float64(angles))) * turn

			px, py := cx+cw/2, cy+ch/2
			pen.Save()
			pen.Translate(px, py)
			pen.Rotate(angle)
			pen.Scale(scale, scale)
			pen.Translate(-px, -py)
			draw(Cell{Frame: cell, Column: x, Row: y, Index: idx})
			pen.Restore()
		}
	}
	pen.Restore()
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
