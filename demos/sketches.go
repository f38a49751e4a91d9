// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"image/color"
	"math"

	"cogentcore.org/sketch/base/randx"
	"cogentcore.org/sketch/frame"
	"cogentcore.org/sketch/geo"
	"cogentcore.org/sketch/glyphs"
	"cogentcore.org/sketch/layout"
	"cogentcore.org/sketch/palette"
	"cogentcore.org/sketch/polygon"
	"cogentcore.org/sketch/sketch"
	"cogentcore.org/sketch/timing"
)

var all = []*Demo{
	{Name: "glyphs", Description: "a grid of wobbly glyphs", Draw: drawGlyphs},
	{Name: "polygons", Description: "jittered polygons on a rotated grid", Draw: drawPolygons},
	{Name: "splits", Description: "a frame split recursively by its aspect", Draw: drawSplits},
	{Name: "frames", Description: "overlapping random frames with wobbly rules", Draw: drawFrames},
	{Name: "orbit", Description: "circles cycling around the center", FrameRate: 30, Draw: drawOrbit},
}

// ink returns a random foreground color of the sketch palette.
func ink(s *sketch.Sketch) color.RGBA {
	fg := s.Palette.Foregrounds()
	if len(fg) == 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	return randx.Choice(s.Rand, fg)
}

func drawGlyphs(s *sketch.Sketch, tk timing.Tick) {
	s.Background()
	c := s.Ctx
	layout.Grid(c, layout.GridOptions{
		Frame:       s.Frame().InsetRelative(0.08),
		Columns:     6,
		Rows:        6,
		Probability: 0.85,
		Margin:      0.18,
		Wobble:      0.004,
		Angles:      4,
	}, func(cell layout.Cell) {
		f := cell.Frame
		c.SetStrokeColor(ink(s))
		c.SetLineWidth(f.Width / 14)
		glyphs.Draw(c, glyphs.Options{Frame: f, Wobble: f.Width / 30, Iterations: 2})
	})
}

func drawPolygons(s *sketch.Sketch, tk timing.Tick) {
	s.Background()
	c := s.Ctx
	bg, _ := s.Palette.Background()
	layout.Grid(c, layout.GridOptions{
		Frame:       s.Frame().InsetRelative(0.05),
		Columns:     5,
		Rows:        5,
		Probability: 0.9,
		MinScale:    0.6,
		MaxScale:    1.1,
		Margin:      0.05,
		Angles:      8,
	}, func(cell layout.Cell) {
		f := cell.Frame
		mid := f.MidPoint()
		p := polygon.New(s.Rand, s.Rand.IntRange(3, 9))
		c.SetFillColor(ink(s))
		c.SetStrokeColor(palette.Tint(bg, 25))
		c.SetLineWidth(f.Width / 40)
		p.Render(c, polygon.RenderOptions{X: mid.X, Y: mid.Y, Radius: f.Width / 2, Jitter: 0.2})
	})
}

func drawSplits(s *sketch.Sketch, tk timing.Tick) {
	s.Background()
	bg, _ := s.Palette.Background()
	s.Ctx.SetStrokeColor(palette.Shade(bg, 10))
	s.Ctx.SetLineWidth(s.Width / 200)
	split(s, s.Frame().Inset(s.Width/20), 5)
}

// split divides f in two along its longer side and recurses,
// filling the leaves.
func split(s *sketch.Sketch, f frame.Frame, depth int) {
	r := s.Rand
	if depth <= 0 || f.Width < s.Width/30 || f.Height < s.Height/30 || r.Coin(0.1) {
		c := s.Ctx
		c.SetFillColor(ink(s))
		c.FillRect(f.X, f.Y, f.Width, f.Height)
		f.StrokeRect(c)
		if r.Coin(0.3) {
			f.InsetRelative(0.2).StrokeEllipse(c)
		}
		return
	}
	var parts [2]frame.Frame
	switch f.AspectClass() {
	case frame.Portrait:
		parts = f.SplitHorizontal(0.2, 0)
	case frame.Landscape:
		parts = f.SplitVertical(0.2, 0)
	default:
		if r.Flip() {
			parts = f.SplitHorizontal(0.3, 0)
		} else {
			parts = f.SplitVertical(0.3, 0)
		}
	}
	for _, p := range parts {
		split(s, p, depth-1)
	}
}

func drawFrames(s *sketch.Sketch, tk timing.Tick) {
	s.Background()
	c := s.Ctx
	c.SetLineWidth(s.Width / 160)
	for range 12 {
		f := frame.Random(s.Rand, s.Width, s.Height).OffsetRandom(s.Width / 20)
		c.SetStrokeColor(ink(s))
		f.StrokeRect(c)
		for _, q := range f.Quarters() {
			if s.Rand.Coin(0.5) {
				q.HLine(c, 0.5, s.Width/100)
			} else {
				q.VLine(c, 0.5, s.Width/100)
			}
		}
	}
}

func drawOrbit(s *sketch.Sketch, tk timing.Tick) {
	s.Background()
	c := s.Ctx
	const n = 12
	center := geo.Pt(s.HalfWidth, s.HalfHeight)
	fg := s.Palette.Foregrounds()
	for i := range n {
		phase := float64(i) * geo.Tau / n
		dist := timing.Cycle(tk.Elapsed, 1.5, phase, s.Width/10, s.Width/3)
		size := timing.Cycle(tk.Elapsed, 3, phase, s.Width/80, s.Width/30)
		p := center.Add(geo.Polar(phase+tk.Elapsed.Seconds()/4, dist))
		clr := color.RGBA{255, 255, 255, 255}
		if len(fg) > 0 {
			clr = fg[i%len(fg)]
		}
		c.SetFillColor(palette.Tint(clr, 10*math.Sin(phase)))
		c.BeginPath()
		c.Circle(p.X, p.Y, math.Abs(size))
		c.Fill()
	}
}
