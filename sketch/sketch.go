// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sketch bootstraps a sketch: a canvas, a palette and a
// seeded random stream, plus background filling, image saving
// and a frame loop.
package sketch

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/sketch/base/num"
	"cogentcore.org/sketch/base/randx"
	"cogentcore.org/sketch/canvas"
	"cogentcore.org/sketch/frame"
	"cogentcore.org/sketch/palette"
	"cogentcore.org/sketch/timing"
	"github.com/mitchellh/go-homedir"
)

// DefaultSize is the canvas width and height used when
// [Options] leaves them at zero.
const DefaultSize = 800

// Options configures [New].
type Options struct {

	// Title names the sketch in logs and saved file names.
	Title string

	// Width and Height are the canvas size in pixels.
	Width, Height int

	// Seed seeds the random stream.
	Seed int64

	// Palette is the name of a registered palette.
	Palette string

	// FrameRate is in frames per second; zero or negative
	// makes a static sketch that draws once.
	FrameRate float64

	// MatchBackground shows the palette background behind
	// transparent parts of the canvas in a preview window.
	MatchBackground bool

	// Logger receives sketch events; nil uses [slog.Default].
	Logger *slog.Logger
}

// DrawFunc draws one frame of a sketch.
type DrawFunc func(s *Sketch, tk timing.Tick)

// Sketch is a canvas with everything needed to draw on it.
type Sketch struct {
	Title string
	Seed  int64

	// Width and Height are the canvas size; HalfWidth and
	// HalfHeight are half of that.
	Width, Height         float64
	HalfWidth, HalfHeight float64

	FrameRate       float64
	MatchBackground bool

	Ctx     *canvas.Context
	Rand    *randx.Rand
	Palette *palette.Palette

	Logger *slog.Logger
}

// New returns a new sketch. It fails only if the palette is unknown.
func New(opts Options) (*Sketch, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultSize
	}
	if opts.Height <= 0 {
		opts.Height = DefaultSize
	}
	if opts.Title == "" {
		opts.Title = "sketch"
	}
	if opts.Palette == "" {
		opts.Palette = palette.Default
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	pal, err := palette.Lookup(opts.Palette)
	if err != nil {
		return nil, err
	}
	s := &Sketch{
		Title:           opts.Title,
		Seed:            opts.Seed,
		Width:           float64(opts.Width),
		Height:          float64(opts.Height),
		HalfWidth:       float64(opts.Width) * 0.5,
		HalfHeight:      float64(opts.Height) * 0.5,
		FrameRate:       opts.FrameRate,
		MatchBackground: opts.MatchBackground,
		Ctx:             canvas.New(opts.Width, opts.Height),
		Rand:            randx.New(opts.Seed),
		Palette:         pal,
		Logger:          opts.Logger,
	}
	s.Logger.Debug("new sketch", "title", s.Title, "seed", s.Seed, "width", opts.Width, "height", opts.Height, "palette", pal.Name)
	return s, nil
}

// Reset reseeds the random stream with the sketch seed and clears
// the canvas, so the next draw reproduces the first one.
func (s *Sketch) Reset() {
	s.Rand.Seed(s.Seed)
	s.Ctx.Clear(color.Transparent)
}

// SetSeed changes the sketch seed and resets it.
func (s *Sketch) SetSeed(seed int64) {
	s.Seed = seed
	s.Reset()
}

// SetPalette switches to the palette with the given name.
func (s *Sketch) SetPalette(name string) error {
	p, err := palette.Lookup(name)
	if err != nil {
		return err
	}
	s.Palette = p
	return nil
}

// Background fills the canvas with the palette background, if the
// palette has one, leaving the drawing state unchanged.
func (s *Sketch) Background() {
	bg, ok := s.Palette.Background()
	if !ok {
		return
	}
	s.Ctx.Save()
	s.Ctx.SetFillColor(bg)
	s.Ctx.FillRect(0, 0, s.Width, s.Height)
	s.Ctx.Restore()
}

// Frame returns a frame covering the whole canvas that draws
// from the sketch random stream.
func (s *Sketch) Frame() frame.Frame {
	return frame.Full(s.Rand, s.Width, s.Height)
}

// RawTime returns the local time of day as hhmmss.
func RawTime(t time.Time) string {
	return num.PadNum(t.Hour(), 2) + num.PadNum(t.Minute(), 2) + num.PadNum(t.Second(), 2)
}

// Filename returns the file name for an image saved at the given
// time: "<title> [<seed>] <hhmmss>.png".
func (s *Sketch) Filename(t time.Time) string {
	return fmt.Sprintf("%s [%d] %s.png", s.Title, s.Seed, RawTime(t))
}

// SaveImage writes the canvas as a PNG into dir, which may start
// with ~, creating it if needed, and returns the file path.
func (s *Sketch) SaveImage(dir string) (string, error) {
	dir, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	fn := filepath.Join(dir, s.Filename(time.Now()))
	if err := s.Ctx.SavePNG(fn); err != nil {
		return "", err
	}
	s.Logger.Info("saved image", "title", s.Title, "seed", s.Seed, "file", fn)
	return fn, nil
}
