// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demos contains built-in sketches that show off the
// library and back the sketch command and gallery server.
package demos

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/keylist"
	"cogentcore.org/sketch/sketch"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Demo is a named sketch.
type Demo struct {
	Name string

	// Description is a one line summary.
	Description string

	// FrameRate is the default frame rate; zero for static demos.
	FrameRate float64

	// Draw draws one frame.
	Draw sketch.DrawFunc
}

// ErrUnknown is returned by [Lookup] for an unknown demo name.
var ErrUnknown = errors.New("unknown demo")

// minSimilarity is the lowest similarity for a name suggestion.
const minSimilarity = 0.5

var registry = func() *keylist.List[string, *Demo] {
	kl := keylist.New[string, *Demo]()
	for _, d := range all {
		kl.Set(d.Name, d)
	}
	return kl
}()

// Names returns the demo names in display order.
func Names() []string {
	return slices.Clone(registry.Keys)
}

// All returns every demo in display order.
func All() []*Demo {
	return slices.Clone(registry.Values)
}

// Lookup returns the demo with the given name. For an unknown name
// the error wraps [ErrUnknown] and suggests the closest name.
func Lookup(name string) (*Demo, error) {
	if d, ok := registry.AtTry(name); ok {
		return d, nil
	}
	if s := Suggest(name); s != "" {
		return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknown, name, s)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknown, name)
}

// Suggest returns the demo name most similar to name, or "" if
// none is similar enough.
func Suggest(name string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", minSimilarity
	for _, n := range registry.Keys {
		if sim := strutil.Similarity(name, n, lev); sim >= bestSim {
			best, bestSim = n, sim
		}
	}
	return best
}

// New returns a new sketch for the demo. The title defaults to the
// demo name and the frame rate to the demo frame rate.
func (d *Demo) New(opts sketch.Options) (*sketch.Sketch, error) {
	if opts.Title == "" {
		opts.Title = d.Name
	}
	if opts.FrameRate == 0 {
		opts.FrameRate = d.FrameRate
	}
	return sketch.New(opts)
}

// Render creates a sketch for the named demo and draws the given
// number of frames without waiting.
func Render(name string, opts sketch.Options, frames int) (*sketch.Sketch, error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	s, err := d.New(opts)
	if err != nil {
		return nil, err
	}
	s.Render(d.Draw, frames)
	return s, nil
}
