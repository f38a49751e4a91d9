// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glyphs

import "math"

// bevel is the corner cut used by the rounded letters and digits.
const bevel = 0.5 / 3

// wallHeight is the height of the house and lander walls.
const wallHeight = 0.5

// table holds every glyph in display order. Plain glyphs are
// polylines in unit coordinates, mapped through the frame with
// jitter when drawn; the rest draw themselves.
var table = []entry{
	{name: "num.0", lines: lines(
		pl(0.2, 0, 0.8, 0, 1, 0.2, 1, 0.8, 0.8, 1, 0.2, 1, 0, 0.8, 0, 0.2, 0.2, 0),
		pl(0.8, 0, 0.2, 1),
	)},
	{name: "num.1", lines: lines(
		pl(1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 0, 1),
	)},
	{name: "num.2", lines: lines(
		pl(0, 0, 1, 0, 1, 0.5, 0, 0.5, 0, 1, 1, 1),
	)},
	{name: "num.3", lines: lines(
		pl(0, 0, 1, 0, 1, 1, 0, 1),
		pl(0, 0.5, 1, 0.5),
	)},
	{name: "num.4", lines: lines(
		pl(1, 0, 1, 1),
		pl(0, 0, 0, 0.5, 1, 0.5),
	)},
	{name: "num.5", lines: lines(
		pl(1, 0, 0, 0, 0, 0.5, 1-bevel, 0.5, 1, 0.5+bevel, 1, 0.5+bevel*2, 1-bevel, 1, 0, 1),
	)},
	{name: "num.6", lines: lines(
		pl(0, 0, 0, 1, 1, 1, 1, 0.5, 0, 0.5),
	)},
	{name: "num.7", lines: lines(
		pl(0, 0, 1, 0, 1, 1),
	)},
	{name: "num.8", lines: lines(
		pl(0, 0, 1, 0, 1, 1, 0, 1, 0, 0),
		pl(0, 0.5, 1, 0.5),
	)},
	{name: "num.9", lines: lines(
		pl(1, 1, 1, 0, 0, 0, 0, 0.5, 1, 0.5),
	)},
	{name: "alpha.A", lines: lines(
		pl(0, 1, 0.5, 0, 1, 1),
		pl(0.125, 0.75, 0.875, 0.75),
	)},
	{name: "alpha.B", lines: lines(
		pl(0, 0, 1-bevel, 0, 1, bevel, 1, bevel*2, 1-bevel, 0.5, 1, 1-bevel*2, 1-bevel, 1, 0, 1, 0, 0),
		pl(0, 0.5, 1-bevel, 0.5),
	)},
	{name: "alpha.C", lines: lines(
		pl(1-bevel, 0, bevel, 0, 0, bevel, 0, 1-bevel, bevel, 1, 1-bevel, 1),
	)},
	{name: "alpha.D", lines: lines(
		pl(0, 0, 1-bevel, 0, 1, bevel, 1, 1-bevel, 1-bevel, 1, 0, 1, 0, 0),
	)},
	{name: "alpha.E", lines: lines(
		pl(0, 1, 0, 0, 1, 0, 1, 1),
		pl(0, 0.5, 1, 0.5),
	)},
	{name: "alpha.F", lines: lines(
		pl(0, 1, 0, 0, 1, 0),
		pl(0, 0.5, 1, 0.5),
	)},
	{name: "alpha.G", lines: lines(
		pl(1, 0, 0, 0, 0, 1, 1, 1, 1, 0.5, 0.5, 0.5),
	)},
	{name: "alpha.H", lines: lines(
		pl(0, 0, 0, 1),
		pl(1, 0, 1, 1),
		pl(0, 0.5, 1, 0.5),
	)},
	{name: "alpha.I", lines: lines(
		pl(0.5, 0, 0.5, 1),
		pl(0.3, 0, 0.7, 0),
		pl(0.3, 1, 0.7, 1),
	)},
	{name: "alpha.J", lines: lines(
		pl(1, 0, 1, 1, 0, 1, 0, 0.7),
	)},
	{name: "alpha.K", lines: lines(
		pl(0, 0, 0, 1),
		pl(0, 0.5, 0.5, 0.5, 1, 0),
		pl(0.5, 0.5, 1, 1),
	)},
	{name: "alpha.L", lines: lines(
		pl(0, 0, 0, 1, 1, 1),
	)},
	{name: "alpha.M", lines: lines(
		pl(0, 1, 0, 0, 0.5, 1, 1, 0, 1, 1),
	)},
	{name: "alpha.N", lines: lines(
		pl(0, 1, 0, 0, 1, 1, 1, 0),
	)},
	{name: "alpha.O", lines: lines(
		pl(0.2, 0, 0.8, 0, 1, 0.2, 1, 0.8, 0.8, 1, 0.2, 1, 0, 0.8, 0, 0.2, 0.2, 0),
	)},
	{name: "alpha.P", lines: lines(
		pl(0, 1, 0, 0, 1, 0, 1, 0.5, 0, 0.5),
	)},
	{name: "alpha.Q", lines: lines(
		pl(0.2, 0, 0.8, 0, 1, 0.2, 1, 0.7, 0.7, 1, 0.2, 1, 0, 0.8, 0, 0.2, 0.2, 0),
		pl(0.6, 0.6, 1, 1),
	)},
	{name: "alpha.S", lines: lines(
		pl(1, 0, bevel, 0, 0, bevel, 0, bevel*2, bevel, 0.5, 1-bevel, 0.5, 1, 0.5+bevel, 1, 0.5+bevel*2, 1-bevel, 1, 0, 1),
	)},
	{name: "alpha.T", lines: lines(
		pl(0, 0, 1, 0),
		pl(0.5, 0, 0.5, 1),
	)},
	{name: "alpha.U", lines: lines(
		pl(0, 0, 0, 1-bevel, bevel, 1, 1-bevel, 1, 1, 1-bevel, 1, 0),
	)},
	{name: "alpha.V", lines: lines(
		pl(0, 0, 0.5, 1, 1, 0),
	)},
	{name: "alpha.W", lines: lines(
		pl(0, 0, 0, 1, 0.5, 0.5, 1, 1, 1, 0),
	)},
	{name: "alpha.X", lines: lines(
		pl(0, 0, 1, 1),
		pl(1, 0, 0, 1),
	)},
	{name: "alpha.Y", lines: lines(
		pl(0.5, 1, 0.5, 0.5, 0, 0),
		pl(0.5, 0.5, 1, 0),
	)},
	{name: "alpha.Z", lines: lines(
		pl(0, 0, 1, 0, 0, 1, 1, 1),
	)},
	{name: "symbol.plus", lines: lines(
		pl(0, 0.5, 1, 0.5),
		pl(0.5, 0, 0.5, 1),
	)},
	{name: "symbol.hyphen", lines: lines(
		pl(0.2, 0.5, 0.8, 0.5),
	)},
	{name: "symbol.arrow-up", lines: lines(
		pl(0.5, 1, 0.5, 0),
		pl(0, 0.33, 0.5, 0, 1, 0.33),
	)},
	{name: "symbol.arrow-right", draw: rotated("symbol.arrow-up", math.Pi/2)},
	{name: "symbol.arrow-down", draw: rotated("symbol.arrow-up", math.Pi)},
	{name: "symbol.arrow-left", draw: rotated("symbol.arrow-up", math.Pi*1.5)},
	{name: "symbol.ampersand", lines: lines(
		pl(1, 0.5, 0.66, 1, 0, 1, 0, 0.5, 0.6, 0.25, 0.6, 0, 0.3, 0, 0.3, 0.25, 1, 1),
	)},
	{name: "symbol.ampersand-2", lines: lines(
		pl(1, 0.5, 0.66, 1, 0, 0.82, 0, 0.5, 0.8, 0.25, 0.8, 0, 0.27, 0, 0.2, 0.2, 1, 1),
	)},
	{name: "symbol.ampersand-3", lines: lines(
		pl(0.65, 0.1, 0.55, 0, 0.25, 0, 0.15, 0.1, 0.15, 0.25, 0.35, 0.45, 0.2, 0.45, 0, 0.65, 0, 0.85, 0.15, 1, 0.65, 1, 0.85, 0.85, 0.85, 0.85),
		pl(0.85, 1, 0.85, 0.45),
		pl(1, 0.45, 0.25, 0.45),
	)},
	{name: "symbol.*", lines: lines(
		pl(0.5, 0, 0.5, 1),
		pl(0, 0.5, 1, 0.5),
		pl(0.15, 0.15, 0.85, 0.85),
		pl(0.85, 0.15, 0.15, 0.85),
	)},
	{name: "object.sundial", lines: lines(
		pl(1, 0, 1, 1, 0, 1, 1, 0),
	)},
	{name: "object.mountain", lines: lines(
		pl(0, 1, 0.3, 0, 0.5, 0.55, 0.667, 0.25, 1, 1, 0, 1),
	)},
	{name: "object.diamond", lines: lines(
		closed(0.5, 0, 1, 0.5, 0.5, 1, 0, 0.5, 0.5, 0),
	)},
	{name: "object.house", lines: lines(
		pl(0, 1, 0, wallHeight, 0.5, 0, 1, wallHeight, 1, 1, 0, 1),
	)},
	{name: "object.lander", lines: lines(
		pl(0, 1, 0.5, 0.5, 0, 0.5, 0, 0, 1, 0, 1, 0.5, 0.5, 0.5, 1, 1),
	)},
	{name: "object.television", draw: rotated("object.lander", math.Pi)},
	{name: "object.shield", lines: lines(
		pl(0, 0, 0, wallHeight, 0.5, 1, 1, wallHeight, 1, 0, 0, 0),
	)},
	{name: "object.lightning", lines: lines(
		pl(0.33, 1, 0.44, 0.59, 0.23, 0.59, 0.41, 0.26, 0.23, 0.26, 0.37, 0, 0.76, 0, 0.56, 0.38, 0.77, 0.38, 0.33, 1),
	)},
	{name: "object.spikes", lines: lines(
		pl(0, 1, 0.25, 0, 0.37, 1, 0.5, 0, 0.62, 1, 0.75, 0, 1, 1, 0, 1),
	)},
	{name: "object.blobs", draw: blobs},
	{name: "object.square-spiral", lines: lines(
		pl(1, 0, 0, 0, 0, 1, 1, 1, 1, 0.25, 0.25, 0.25, 0.25, 0.75, 0.75, 0.75, 0.75, 0.5, 0.5, 0.5),
	)},
	{name: "object.square-star", lines: lines(
		pl(0.5, 0, 0.3, 0.2, 0.25, 0.25, 0.2, 0.3, 0, 0.5, 0.2, 0.7, 0.25, 0.75, 0.3, 0.8, 0.5, 1,
			0.7, 0.8, 0.75, 0.75, 0.8, 0.7, 1, 0.5, 0.8, 0.3, 0.75, 0.25, 0.7, 0.2, 0.5, 0),
	)},
	{name: "object.diamond-quarters", draw: diamondQuarters},
}
