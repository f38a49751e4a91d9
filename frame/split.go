// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import "cogentcore.org/sketch/base/num"

// expandSides expands 1 to 4 side values into top, right, bottom
// and left in the CSS order. Values past the fourth are ignored.
func expandSides(s []float64) [4]float64 {
	switch len(s) {
	case 0:
		return [4]float64{}
	case 1:
		return [4]float64{s[0], s[0], s[0], s[0]}
	case 2:
		return [4]float64{s[0], s[1], s[0], s[1]}
	case 3:
		return [4]float64{s[0], s[1], s[2], s[1]}
	}
	return [4]float64{s[0], s[1], s[2], s[3]}
}

// Inset returns a new frame with each side moved inward by the given
// amount in pixels: one value for all sides, two for top/bottom and
// right/left, three for top, right/left and bottom, or four for
// top, right, bottom and left. No values returns an unchanged copy.
func (f Frame) Inset(sides ...float64) Frame {
	s := expandSides(sides)
	return f.child(f.X+s[3], f.Y+s[0], f.Width-s[1]-s[3], f.Height-s[0]-s[2])
}

// InsetRelative is like [Frame.Inset] with amounts given as
// fractions of the width (left and right) and height (top and bottom).
func (f Frame) InsetRelative(sides ...float64) Frame {
	s := expandSides(sides)
	return f.child(f.X+f.Width*s[3], f.Y+f.Height*s[0],
		f.Width-f.Width*(s[1]+s[3]), f.Height-f.Height*(s[0]+s[2]))
}

// OffsetRandom returns a copy translated by an independent
// bipolar offset of up to maxOffset on each axis, x first.
func (f Frame) OffsetRandom(maxOffset float64) Frame {
	r := f.Rand()
	dx := r.Bipolar(maxOffset)
	dy := r.Bipolar(maxOffset)
	return f.child(f.X+dx, f.Y+dy, f.Width, f.Height)
}

// divide returns the split fraction 0.5 + Bipolar(depth) + offset,
// clamped to [0.001, 0.999] so neither child is empty.
func (f Frame) divide(depth, offset float64) float64 {
	return num.Constrain(0.5+f.Rand().Bipolar(depth)+offset, 0.001, 0.999)
}

// SplitHorizontal splits the frame into a top and a bottom frame that
// together tile it exactly. The split lies at 0.5 + offset of the
// height, moved by up to depth at random; a depth of 0 still draws.
func (f Frame) SplitHorizontal(depth, offset float64) [2]Frame {
	h1 := f.divide(depth, offset) * f.Height
	return [2]Frame{
		f.child(f.X, f.Y, f.Width, h1),
		f.child(f.X, f.Y+h1, f.Width, f.Height-h1),
	}
}

// SplitVertical splits the frame into a left and a right frame,
// in the same way as [Frame.SplitHorizontal].
func (f Frame) SplitVertical(depth, offset float64) [2]Frame {
	w1 := f.divide(depth, offset) * f.Width
	return [2]Frame{
		f.child(f.X, f.Y, w1, f.Height),
		f.child(f.X+w1, f.Y, f.Width-w1, f.Height),
	}
}

// Quarters returns the four equal quarters of the frame in the
// order top-left, top-right, bottom-left, bottom-right.
func (f Frame) Quarters() [4]Frame {
	g := f.Grid(2, 2)
	return [4]Frame{g[0][0], g[0][1], g[1][0], g[1][1]}
}

// Grid returns rows of equal cells that tile the frame, indexed as
// [row][column]. Cell (i, j) starts at x + j*w/columns, y + i*h/rows.
// It returns nil if columns or rows is not positive.
func (f Frame) Grid(columns, rows int) [][]Frame {
	if columns <= 0 || rows <= 0 {
		return nil
	}
	cw := f.Width / float64(columns)
	ch := f.Height / float64(rows)
	grid := make([][]Frame, rows)
	for i := range grid {
		row := make([]Frame, columns)
		for j := range row {
			row[j] = f.child(f.X+float64(j)*cw, f.Y+float64(i)*ch, cw, ch)
		}
		grid[i] = row
	}
	return grid
}

// Cells returns the cells of [Frame.Grid] flattened in row-major order.
func (f Frame) Cells(columns, rows int) []Frame {
	var cells []Frame
	for _, row := range f.Grid(columns, rows) {
		cells = append(cells, row...)
	}
	return cells
}
