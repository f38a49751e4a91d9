// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sketch renders, previews and serves the demo sketches.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/sketch/base/randx"
	"cogentcore.org/sketch/demos"
	"cogentcore.org/sketch/palette"
	"cogentcore.org/sketch/sketch"
	"cogentcore.org/sketch/sketch/preview"
	"cogentcore.org/sketch/sketch/server"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Config is the configuration for the sketch command. It is read
// from sketch.toml when present and then from the command line.
type Config struct {

	// Sketch is the name of the demo sketch.
	Sketch string `posarg:"0" required:"-" default:"glyphs"`

	// Seed is an integer seed, or any word, which is hashed to one.
	// Empty picks a fresh seed.
	Seed string `flag:"s,seed"`

	// Width of the canvas in pixels.
	Width int `default:"800"`

	// Height of the canvas in pixels.
	Height int `default:"800"`

	// Palette is the name of the palette.
	Palette string `default:"default"`

	// PaletteFile is a TOML or YAML file of extra palettes.
	PaletteFile string

	// FrameRate overrides the frame rate of the sketch; zero keeps it.
	FrameRate float64

	// Frames is the number of frames to render.
	Frames int `cmd:"render" default:"1"`

	// Output is the directory rendered images are saved in.
	Output string `cmd:"render,preview" default:"."`

	// Addr is the address the gallery server listens on.
	Addr string `cmd:"serve" default:"localhost:8080"`

	// Scale is the preview window size relative to the canvas.
	Scale float64 `cmd:"preview" default:"1"`

	// Verbose turns on debug logging.
	Verbose bool `flag:"v,verbose"`
}

func main() {
	opts := cli.DefaultOptions("sketch", "Sketch renders, previews and serves seeded generative sketches.")
	opts.DefaultFiles = []string{"sketch.toml"}
	cli.Run(opts, &Config{}, Render, List, Palettes, Serve, Preview)
}

// setup configures logging and loads any extra palettes.
func setup(c *Config) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if c.PaletteFile != "" {
		names, err := palette.LoadAndRegister(c.PaletteFile)
		if err != nil {
			return err
		}
		slog.Debug("loaded palettes", "file", c.PaletteFile, "names", names)
	}
	return nil
}

// newSketch looks up the configured demo and creates its sketch.
func newSketch(c *Config) (*demos.Demo, *sketch.Sketch, error) {
	d, err := demos.Lookup(c.Sketch)
	if err != nil {
		return nil, nil, err
	}
	seed := randx.ParseSeed(c.Seed)
	if c.Seed == "" {
		if seed, err = randx.NewSeed(); err != nil {
			return nil, nil, err
		}
	}
	s, err := d.New(sketch.Options{
		Width:     c.Width,
		Height:    c.Height,
		Seed:      seed,
		Palette:   c.Palette,
		FrameRate: c.FrameRate,
	})
	return d, s, err
}

// Render draws a sketch and saves it as a PNG.
func Render(c *Config) error {
	if err := setup(c); err != nil {
		return err
	}
	d, s, err := newSketch(c)
	if err != nil {
		return err
	}
	s.Render(d.Draw, c.Frames)
	fn, err := s.SaveImage(c.Output)
	if err != nil {
		return err
	}
	fmt.Println(fn)
	return nil
}

// List prints the demo sketches.
func List(c *Config) error {
	return list(os.Stdout)
}

func list(w io.Writer) error {
	title := cases.Title(language.English)
	for _, d := range demos.All() {
		if _, err := fmt.Fprintf(w, "%-10s %s: %s\n", d.Name, title.String(d.Name), d.Description); err != nil {
			return err
		}
	}
	return nil
}

// Palettes prints a swatch of every palette.
func Palettes(c *Config) error {
	if err := setup(c); err != nil {
		return err
	}
	return palettes(termenv.NewOutput(os.Stdout))
}

func palettes(out *termenv.Output) error {
	for _, name := range palette.Names() {
		p, err := palette.Lookup(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, palette.Swatch(out, p)); err != nil {
			return err
		}
	}
	return nil
}

// Serve runs the gallery server until interrupted.
func Serve(c *Config) error {
	if err := setup(c); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	srv := server.New(server.Config{MaxSize: max(c.Width, c.Height, 2000), DefaultSize: min(c.Width, c.Height)})
	return srv.Serve(ctx, c.Addr)
}

// Preview shows a sketch in a window; R reseeds, S saves.
func Preview(c *Config) error {
	if err := setup(c); err != nil {
		return err
	}
	d, s, err := newSketch(c)
	if err != nil {
		return err
	}
	s.MatchBackground = true
	return errors.Log(preview.Run(s, d.Draw, preview.Options{
		Scale:       c.Scale,
		SaveDir:     c.Output,
		PaletteFile: c.PaletteFile,
	}))
}
