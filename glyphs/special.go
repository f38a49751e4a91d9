// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glyphs

import (
	"math"

	"cogentcore.org/sketch/frame"
	"cogentcore.org/sketch/svgpath"
)

// blobCircles are center x, center y and radius, as fractions
// of the frame.
var blobCircles = [][3]float64{
	{0.066, 0.066, 0.287},
	{0.694, 0.238, 0.124},
	{0.536, 0.536, 0.073},
	{0.306, 0.686, 0.073},
	{0.536, 0.536, 0.184},
}

func blobs(pen Pen, f frame.Frame) {
	size := math.Min(math.Abs(f.Width), math.Abs(f.Height))
	for _, c := range blobCircles {
		pen.Circle(f.PX(c[0]), f.PY(c[1]), c[2]*size)
	}
}

// diamondPath is four diamonds on a 500 unit square, one per quarter.
const diamondPath = `M225.944697 0,
	329.889394 103.944697,
	225.944697 207.889394,
	122 103.944697,
	M103.944697 122,
	207.889394 225.944697,
	103.944697 329.889394,
	0 225.944697,
	M348.944697 122,
	452.889394 225.944697,
	348.944697 329.889394,
	245 225.944697,
	M225.944697 245,
	329.889394 348.944697,
	225.944697 452.889394,
	122 348.944697`

// diamonds holds diamondPath scaled to unit coordinates,
// one closed polyline per diamond.
var diamonds = func() []polyline {
	unit := svgpath.Process(diamondPath, 4, func(v float64, i int, all []float64) float64 {
		return v / 500
	})
	vs := svgpath.Values(unit)
	var ls []polyline
	for i := 0; i+8 <= len(vs); i += 8 {
		ls = append(ls, closed(vs[i:i+8]...))
	}
	return ls
}()

func diamondQuarters(pen Pen, f frame.Frame) {
	strokeLines(diamonds)(pen, f)
}
