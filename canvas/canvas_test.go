// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"cogentcore.org/core/paint/ppath/intersect"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestFillRect(t *testing.T) {
	c := New(20, 10)
	assert.Equal(t, 20, c.Width())
	assert.Equal(t, 10, c.Height())
	c.SetFillColor(red)
	c.FillRect(2, 2, 5, 5)
	assert.Equal(t, red, c.Image().RGBAAt(4, 4))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(8, 4))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(4, 8))
}

func TestFillPath(t *testing.T) {
	c := New(40, 40)
	c.Clear(color.White)
	c.SetFillColor(blue)
	c.BeginPath()
	c.Circle(20, 20, 10)
	c.Fill()
	img := c.Image()
	assert.Equal(t, blue, img.RGBAAt(20, 20))
	assert.Equal(t, blue, img.RGBAAt(27, 20))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(20, 33))
}

func TestStroke(t *testing.T) {
	c := New(30, 30)
	c.SetStrokeColor(red)
	c.SetLineWidth(4)
	c.BeginPath()
	c.MoveTo(5, 15)
	c.LineTo(25, 15)
	c.Stroke()
	img := c.Image()
	assert.Equal(t, red, img.RGBAAt(15, 15))
	assert.Equal(t, red, img.RGBAAt(15, 13))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(15, 10))
	// round caps extend past the end points
	assert.Equal(t, red, img.RGBAAt(4, 15))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 15))
}

func TestStrokeJoinsDoNotCancel(t *testing.T) {
	c := New(40, 40)
	c.SetStrokeColor(red)
	c.SetLineWidth(6)
	c.BeginPath()
	c.MoveTo(5, 5)
	c.LineTo(35, 5)
	c.LineTo(5, 6)
	c.Stroke()
	assert.Equal(t, red, c.Image().RGBAAt(20, 5))
	assert.Equal(t, red, c.Image().RGBAAt(34, 5))
}

func TestTransform(t *testing.T) {
	c := New(40, 40)
	c.SetFillColor(red)
	c.Save()
	c.Translate(20, 20)
	c.Rotate(math.Pi / 2)
	c.FillRect(0, 0, 10, 4)
	c.Restore()
	img := c.Image()
	// the rect now runs down from the origin, to the left
	assert.Equal(t, red, img.RGBAAt(18, 25))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(25, 22))
	assert.Equal(t, Identity, c.Transform)

	c.Scale(2, 2)
	c.FillRect(0, 0, 2, 2)
	assert.Equal(t, red, img.RGBAAt(3, 3))
	c.ResetTransform()
	assert.Equal(t, Identity, c.Transform)
}

func TestSaveRestore(t *testing.T) {
	c := New(4, 4)
	c.SetLineWidth(3)
	c.SetStrokeColor(blue)
	c.Save()
	c.SetLineWidth(9)
	c.SetStrokeColor(red)
	c.Restore()
	assert.Equal(t, 3.0, c.LineWidth)
	assert.Equal(t, color.Color(blue), c.StrokeColor)
	c.Restore()
	assert.Equal(t, 3.0, c.LineWidth)
}

func TestClearRect(t *testing.T) {
	c := New(10, 10)
	c.Clear(blue)
	c.ClearRect(0, 0, 5, 10)
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(2, 5))
	assert.Equal(t, blue, c.Image().RGBAAt(7, 5))
}

func TestRectKeepsPath(t *testing.T) {
	c := New(20, 20)
	c.BeginPath()
	c.MoveTo(1, 1)
	c.LineTo(5, 5)
	before := c.path.Clone()
	c.FillRect(10, 10, 2, 2)
	c.StrokeRect(10, 10, 2, 2)
	c.ClearRect(10, 10, 2, 2)
	assert.Equal(t, before, c.path)
	assert.Equal(t, 2, c.path.Len())
}

func TestArc(t *testing.T) {
	c := New(10, 10)
	c.BeginPath()
	c.Arc(5, 5, 4, 0, math.Pi)
	pts := intersect.Flatten(c.path, 0.01).Coords()
	assert.InDelta(t, 9, pts[0].X, 1e-4)
	assert.InDelta(t, 1, pts[len(pts)-1].X, 1e-4)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.Y, float32(5-0.02), "clockwise arc from 0 to pi runs through the bottom")
	}

	c.BeginPath()
	c.Arc(5, 5, 4, 0, -math.Pi/2)
	pts = intersect.Flatten(c.path, 0.01).Coords()
	last := pts[len(pts)-1]
	assert.InDelta(t, 5, last.X, 1e-4)
	assert.InDelta(t, 1, last.Y, 1e-4)
	bottom := false
	for _, p := range pts {
		if p.Y > 8.5 {
			bottom = true
		}
	}
	assert.True(t, bottom, "wrapped sweep runs three quarters clockwise through the bottom")
}

func TestArcJoinsSubpath(t *testing.T) {
	c := New(20, 20)
	c.BeginPath()
	c.MoveTo(0, 10)
	c.Arc(10, 10, 5, math.Pi, 2*math.Pi)
	// the connecting line and the arc form one subpath
	assert.Len(t, c.path.Split(), 1)
	end := c.path.Pos()
	assert.InDelta(t, 15, end.X, 1e-4)
	assert.InDelta(t, 10, end.Y, 1e-4)
}

func TestStrokeClosed(t *testing.T) {
	c := New(30, 30)
	c.SetStrokeColor(red)
	c.SetLineWidth(2)
	c.BeginPath()
	c.Rect(5, 5, 20, 20)
	c.Stroke()
	img := c.Image()
	assert.Equal(t, red, img.RGBAAt(15, 5))
	assert.Equal(t, red, img.RGBAAt(5, 15))
	// the stroke of a closed path is a ring, not a filled shape
	assert.Equal(t, color.RGBA{}, img.RGBAAt(15, 15))
}

func TestStrokeScaled(t *testing.T) {
	c := New(30, 30)
	c.SetStrokeColor(red)
	c.SetLineWidth(2)
	c.Scale(3, 3)
	c.BeginPath()
	c.MoveTo(1, 5)
	c.LineTo(9, 5)
	c.Stroke()
	img := c.Image()
	// a width of 2 scaled by 3 covers 12 to 18
	assert.Equal(t, red, img.RGBAAt(15, 13))
	assert.Equal(t, red, img.RGBAAt(15, 16))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(15, 20))
}

func TestPNG(t *testing.T) {
	c := New(8, 6)
	c.Clear(red)
	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())

	fn := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, c.SavePNG(fn))
	back, err := imgio.Open(fn)
	require.NoError(t, err)
	r, g, b, a := back.At(3, 3).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})

	assert.Error(t, c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")))
}
