// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"

	"cogentcore.org/sketch/base/num"
	"github.com/lucasb-eyer/go-colorful"
)

// Tint returns the color with its HSL lightness raised by amount
// percentage points, clamped to white. Alpha is kept.
func Tint(c color.RGBA, amount float64) color.RGBA {
	return lighten(c, amount)
}

// Shade returns the color with its HSL lightness lowered by amount
// percentage points, clamped to black. Alpha is kept.
func Shade(c color.RGBA, amount float64) color.RGBA {
	return lighten(c, -amount)
}

func lighten(c color.RGBA, amount float64) color.RGBA {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, l := cf.Hsl()
	l = num.Constrain(l+amount/100, 0, 1)
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{r, g, b, c.A}
}

// TintHex is [Tint] on hex strings, returning "#rrggbb".
func TintHex(hex string, amount float64) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return Hex(Tint(c, amount)), nil
}

// ShadeHex is [Shade] on hex strings, returning "#rrggbb".
func ShadeHex(hex string, amount float64) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return Hex(Shade(c, amount)), nil
}
