// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

// Aspects classify the ratio of width to height of a [Frame].
type Aspects int32

const (
	// Square has a ratio of exactly 1.
	Square Aspects = iota

	// Squarish has a ratio strictly between 9/10 and 10/9.
	Squarish

	// Portrait has a ratio of at most 9/10.
	Portrait

	// Landscape has a ratio of at least 10/9.
	Landscape

	// AspectUnknown is the class of a NaN ratio, from a 0 by 0 frame.
	AspectUnknown
)

const (
	portraitLimit  = 9.0 / 10
	landscapeLimit = 10.0 / 9
)

var aspectNames = [...]string{"square", "squarish", "portrait", "landscape", "unknown"}

func (a Aspects) String() string {
	if a < 0 || int(a) >= len(aspectNames) {
		return "Aspects(?)"
	}
	return aspectNames[a]
}

// AspectRatio returns Width / Height. A zero height gives
// an infinite ratio, or NaN when the width is also zero.
func (f Frame) AspectRatio() float64 {
	return f.Width / f.Height
}

// AspectClass classifies [Frame.AspectRatio].
func (f Frame) AspectClass() Aspects {
	ratio := f.AspectRatio()
	switch {
	case ratio == 1:
		return Square
	case ratio > portraitLimit && ratio < landscapeLimit:
		return Squarish
	case ratio <= portraitLimit:
		return Portrait
	case ratio >= landscapeLimit:
		return Landscape
	}
	return AspectUnknown
}
