// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview shows a sketch in a desktop window while it runs.
//
// Keys: R draws again with a fresh seed, S saves the canvas to
// [Options.SaveDir], Escape closes the window.
package preview

import (
	"fmt"
	"image/color"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/sketch/base/randx"
	"cogentcore.org/sketch/palette"
	"cogentcore.org/sketch/sketch"
	"cogentcore.org/sketch/timing"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options configures [Run].
type Options struct {

	// Scale is the window size as a multiple of the canvas size;
	// zero means 1.
	Scale float64

	// SaveDir is where the S key saves images.
	SaveDir string

	// PaletteFile is a palette file to load and watch; when it
	// changes its palettes are registered again and the sketch
	// redraws with the current palette name.
	PaletteFile string
}

// errClosed ends the game loop when the window is closed by key.
var errClosed = errors.New("preview closed")

// Run opens a window showing s and draws it with draw, once for a
// static sketch or on every new frame otherwise. It blocks until
// the window closes.
func Run(s *sketch.Sketch, draw sketch.DrawFunc, opts Options) error {
	g := &game{s: s, draw: draw, opts: opts, reload: make(chan struct{}, 1)}
	if opts.PaletteFile != "" {
		if _, err := palette.LoadAndRegister(opts.PaletteFile); err != nil {
			return err
		}
		w, err := palette.Watch(opts.PaletteFile, func() {
			select {
			case g.reload <- struct{}{}:
			default:
			}
		})
		if err != nil {
			return err
		}
		defer w.Close()
	}
	g.restart()

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(fmt.Sprintf("%s [%d]", s.Title, s.Seed))
	ebiten.SetWindowSize(int(s.Width*scale), int(s.Height*scale))
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, errClosed) {
		return nil
	}
	return err
}

type game struct {
	s      *sketch.Sketch
	draw   sketch.DrawFunc
	opts   Options
	reload chan struct{}

	timer *timing.Timer
	drawn bool
	img   *ebiten.Image
}

// restart resets the sketch and its clock so drawing starts over.
func (g *game) restart() {
	g.s.Reset()
	g.timer = timing.NewTimer(g.s.FrameRate, time.Now())
	g.drawn = false
	ebiten.SetWindowTitle(fmt.Sprintf("%s [%d]", g.s.Title, g.s.Seed))
}

func (g *game) reloadPalette() {
	if _, err := palette.LoadAndRegister(g.opts.PaletteFile); err != nil {
		g.s.Logger.Error("reload palettes", "file", g.opts.PaletteFile, "err", err)
		return
	}
	errors.Log(g.s.SetPalette(g.s.Palette.Name))
	g.s.Logger.Info("reloaded palettes", "file", g.opts.PaletteFile)
	g.restart()
}

func (g *game) Update() error {
	select {
	case <-g.reload:
		g.reloadPalette()
	default:
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return errClosed
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		seed, err := randx.NewSeed()
		if err != nil {
			return err
		}
		g.s.SetSeed(seed)
		g.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		errors.Log1(g.s.SaveImage(g.opts.SaveDir))
	}

	if g.s.Static() {
		if !g.drawn {
			g.draw(g.s, timing.Tick{NewFrame: true})
			g.drawn = true
		}
		return nil
	}
	tk := g.timer.Tick(time.Now())
	if tk.NewFrame {
		g.draw(g.s, tk)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.s.MatchBackground {
		if bg, ok := g.s.Palette.Background(); ok {
			screen.Fill(bg)
		}
	} else {
		screen.Fill(color.Black)
	}
	if g.img == nil {
		g.img = ebiten.NewImage(g.s.Ctx.Width(), g.s.Ctx.Height())
	}
	g.img.WritePixels(g.s.Ctx.Image().Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.s.Ctx.Width(), g.s.Ctx.Height()
}
