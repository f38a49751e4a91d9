// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"strings"

	"github.com/muesli/termenv"
)

// Swatch renders the palette as a row of colored blocks followed
// by its name, using the color profile of the given output.
func Swatch(out *termenv.Output, p *Palette) string {
	var b strings.Builder
	for _, c := range p.Colors.Values {
		b.WriteString(out.String("    ").Background(out.Color(Hex(c))).String())
	}
	b.WriteString(" ")
	b.WriteString(p.Name)
	return b.String()
}
