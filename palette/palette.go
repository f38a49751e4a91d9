// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides named color palettes for sketches,
// with colors addressed by role, and lightness adjustments.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/keylist"
	"github.com/lucasb-eyer/go-colorful"
)

// Roles are the names given to the first colors of a palette, in order.
// Colors past the last role are named "color5", "color6" and so on.
var Roles = []string{"background", "primary", "secondary", "tertiary"}

// Palette is a named, ordered set of colors keyed by role.
type Palette struct {

	// Name is the name of the palette.
	Name string

	// Colors are the colors by role, in order.
	Colors *keylist.List[string, color.RGBA]
}

// New returns a new empty palette with the given name.
func New(name string) *Palette {
	return &Palette{Name: name, Colors: keylist.New[string, color.RGBA]()}
}

// FromHex returns a new palette with the given hex colors
// assigned to [Roles] in order. A missing leading '#' is added,
// and both the 3 and 6 digit forms are accepted.
func FromHex(name string, hexes ...string) (*Palette, error) {
	p := New(name)
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", name, err)
		}
		p.Colors.Set(roleName(i), c)
	}
	return p, nil
}

// MustFromHex is [FromHex] for tables of known good colors;
// it panics on an invalid color.
func MustFromHex(name string, hexes ...string) *Palette {
	p, err := FromHex(name, hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

func roleName(i int) string {
	if i < len(Roles) {
		return Roles[i]
	}
	return fmt.Sprintf("color%d", i+1)
}

// ParseHex parses a "#rgb" or "#rrggbb" color, with or without the '#'.
func ParseHex(hex string) (color.RGBA, error) {
	h := strings.TrimSpace(hex)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// Hex returns the color as a lowercase "#rrggbb" string, ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	return p.Colors.Len()
}

// At returns the color at the given index, and false if there is none.
func (p *Palette) At(i int) (color.RGBA, bool) {
	if i < 0 || i >= p.Colors.Len() {
		return color.RGBA{}, false
	}
	return p.Colors.Values[i], true
}

// Role returns the color with the given role, and false if there is none.
func (p *Palette) Role(role string) (color.RGBA, bool) {
	return p.Colors.AtTry(role)
}

// Background returns the first color.
func (p *Palette) Background() (color.RGBA, bool) { return p.At(0) }

// Primary returns the second color.
func (p *Palette) Primary() (color.RGBA, bool) { return p.At(1) }

// Secondary returns the third color.
func (p *Palette) Secondary() (color.RGBA, bool) { return p.At(2) }

// Tertiary returns the fourth color.
func (p *Palette) Tertiary() (color.RGBA, bool) { return p.At(3) }

// Foregrounds returns every color but the background.
func (p *Palette) Foregrounds() []color.RGBA {
	if p.Colors.Len() < 2 {
		return nil
	}
	return p.Colors.Values[1:]
}

// Hexes returns the colors as hex strings, in order.
func (p *Palette) Hexes() []string {
	hs := make([]string, p.Colors.Len())
	for i, c := range p.Colors.Values {
		hs[i] = Hex(c)
	}
	return hs
}

func (p *Palette) String() string {
	return p.Name + " " + strings.Join(p.Hexes(), " ")
}

// ErrUnknown is returned when a palette name is not found.
var ErrUnknown = errors.New("unknown palette")
