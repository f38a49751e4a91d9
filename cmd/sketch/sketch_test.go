// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/h2non/filetype"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, list(&b))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "glyphs     Glyphs: "))
}

func TestPalettes(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, palettes(termenv.NewOutput(&b, termenv.WithProfile(termenv.Ascii))))
	assert.Contains(t, b.String(), "default")
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	c := &Config{Sketch: "splits", Seed: "9", Width: 40, Height: 30, Palette: "default", Frames: 1, Output: dir}
	require.NoError(t, Render(c))
	files, err := filepath.Glob(filepath.Join(dir, "splits [9] *.png"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, filetype.Is(data, "png"))
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	err := Render(&Config{Sketch: "glyph", Width: 10, Height: 10, Output: dir})
	assert.ErrorContains(t, err, `did you mean "glyphs"?`)

	err = Render(&Config{Sketch: "glyphs", Palette: "nope", Width: 10, Height: 10, Output: dir})
	assert.ErrorContains(t, err, "nope")

	err = Render(&Config{Sketch: "glyphs", PaletteFile: filepath.Join(dir, "missing.toml")})
	assert.Error(t, err)
}

func TestNewSketchWordSeed(t *testing.T) {
	_, a, err := newSketch(&Config{Sketch: "orbit", Seed: "tangerine", Width: 10, Height: 10})
	require.NoError(t, err)
	_, b, err := newSketch(&Config{Sketch: "orbit", Seed: "tangerine", Width: 10, Height: 10})
	require.NoError(t, err)
	assert.Equal(t, a.Seed, b.Seed)
	assert.Equal(t, 30.0, a.FrameRate)
}
