// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/core/paint/ppath"
	"cogentcore.org/core/paint/ppath/stroke"
)

// Fill fills every subpath of the current path with the fill color,
// closing open subpaths.
func (c *Context) Fill() {
	c.begin()
	c.raster(c.path)
	c.paint(c.FillColor, draw.Over)
}

// Stroke strokes every subpath of the current path with the stroke
// color and line width, using round caps and joins.
func (c *Context) Stroke() {
	w := float32(c.LineWidth) * c.scale()
	if w <= 0 || c.path.Empty() {
		return
	}
	outline := stroke.Stroke(c.path, w, stroke.RoundCap, stroke.RoundJoin, ppath.PixelTolerance)
	c.begin()
	c.raster(outline)
	c.paint(c.StrokeColor, draw.Over)
}

// FillRect fills a rectangle with the fill color
// without changing the current path.
func (c *Context) FillRect(x, y, w, h float64) {
	c.begin()
	c.raster(c.rect(x, y, w, h))
	c.paint(c.FillColor, draw.Over)
}

// StrokeRect strokes a rectangle without changing the current path.
func (c *Context) StrokeRect(x, y, w, h float64) {
	saved := c.path
	c.path = nil
	c.Rect(x, y, w, h)
	c.Stroke()
	c.path = saved
}

// ClearRect makes a rectangle transparent, leaving partially
// covered edge pixels partially transparent. It does not change
// the current path.
func (c *Context) ClearRect(x, y, w, h float64) {
	c.begin()
	c.raster(c.rect(x, y, w, h))
	b := c.img.Bounds()
	mask := image.NewAlpha(b)
	c.ras.DrawOp = draw.Src
	c.ras.Draw(mask, b, image.Opaque, image.Point{})
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			a := mask.AlphaAt(px, py).A
			if a == 0 {
				continue
			}
			keep := uint32(255 - a)
			i := c.img.PixOffset(px, py)
			for j := range 4 {
				c.img.Pix[i+j] = uint8(uint32(c.img.Pix[i+j]) * keep / 255)
			}
		}
	}
}

// rect returns a rectangle in device coordinates.
func (c *Context) rect(x, y, w, h float64) ppath.Path {
	q := ppath.Path{}
	q.Rectangle(float32(x), float32(y), float32(w), float32(h))
	return q.Transform(c.Transform)
}

func (c *Context) begin() {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
}

// paint composites the accumulated coverage in the given color.
func (c *Context) paint(clr color.Color, op draw.Op) {
	c.ras.DrawOp = op
	b := c.img.Bounds()
	c.ras.Draw(c.img, b, image.NewUniform(clr), image.Point{})
}

// raster adds a device space path to the rasterizer,
// closing every subpath.
func (c *Context) raster(p ppath.Path) {
	if p.Empty() {
		return
	}
	o := c.img.Bounds().Min
	ox, oy := float32(o.X), float32(o.Y)
	open := false
	for s := p.ReplaceArcs().Scanner(); s.Scan(); {
		end := s.End()
		switch s.Cmd() {
		case ppath.MoveTo:
			if open {
				c.ras.ClosePath()
			}
			c.ras.MoveTo(end.X-ox, end.Y-oy)
			open = true
		case ppath.LineTo:
			c.ras.LineTo(end.X-ox, end.Y-oy)
		case ppath.QuadTo:
			cp := s.CP1()
			c.ras.QuadTo(cp.X-ox, cp.Y-oy, end.X-ox, end.Y-oy)
		case ppath.CubeTo:
			cp1, cp2 := s.CP1(), s.CP2()
			c.ras.CubeTo(cp1.X-ox, cp1.Y-oy, cp2.X-ox, cp2.Y-oy, end.X-ox, end.Y-oy)
		case ppath.Close:
			c.ras.ClosePath()
			open = false
		}
	}
	if open {
		c.ras.ClosePath()
	}
}
