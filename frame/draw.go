// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

// Pen is the subset of a drawing context used to draw frames.
// It is implemented by *canvas.Context.
type Pen interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rect(x, y, w, h float64)
	Ellipse(cx, cy, rx, ry float64)
	Stroke()
}

// HLine strokes a horizontal line across the frame at the given
// fraction of its height. A non-zero wobble jitters each end point
// on both axes with four bipolar draws.
func (f Frame) HLine(pen Pen, fraction, wobble float64) {
	y := f.PointY(fraction)
	f.line(pen, f.X, y, f.X+f.Width, y, wobble)
}

// VLine strokes a vertical line down the frame at the given
// fraction of its width, jittered like [Frame.HLine].
func (f Frame) VLine(pen Pen, fraction, wobble float64) {
	x := f.PointX(fraction)
	f.line(pen, x, f.Y, x, f.Y+f.Height, wobble)
}

func (f Frame) line(pen Pen, x1, y1, x2, y2, wobble float64) {
	if wobble != 0 {
		r := f.Rand()
		x1 += r.Bipolar(wobble)
		y1 += r.Bipolar(wobble)
		x2 += r.Bipolar(wobble)
		y2 += r.Bipolar(wobble)
	}
	pen.BeginPath()
	pen.MoveTo(x1, y1)
	pen.LineTo(x2, y2)
	pen.Stroke()
}

// StrokeRect strokes the outline of the frame.
func (f Frame) StrokeRect(pen Pen) {
	pen.BeginPath()
	pen.Rect(f.X, f.Y, f.Width, f.Height)
	pen.Stroke()
}

// StrokeEllipse strokes the ellipse inscribed in the frame.
func (f Frame) StrokeEllipse(pen Pen) {
	c := f.MidPoint()
	pen.BeginPath()
	pen.Ellipse(c.X, c.Y, f.Width/2, f.Height/2)
	pen.Stroke()
}
