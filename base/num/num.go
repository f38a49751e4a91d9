// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides small generic numeric helpers used
// throughout sketches.
package num

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of the given values, 0 for none.
func Sum[T Number](values ...T) T {
	var s T
	for _, v := range values {
		s += v
	}
	return s
}

// Constrain clamps v to [min, max]. The min check comes first,
// so when min > max the result is max.
func Constrain[T constraints.Ordered](v, min, max T) T {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

// ConstrainWrap wraps v around the range: values below min
// become max and values above max become min.
func ConstrainWrap[T constraints.Ordered](v, min, max T) T {
	if v < min {
		v = max
	}
	if v > max {
		v = min
	}
	return v
}

// padding is the zero padding available to [PadNum].
const padding = "00000000000"

// PadNum returns the last places characters of n written in
// decimal with up to 11 leading zeros, so PadNum(7, 2) is "07"
// and PadNum(123, 2) is "23". Non-positive places return the
// unpadded number.
func PadNum(n, places int) string {
	s := strconv.Itoa(n)
	if places <= 0 {
		return s
	}
	s = padding + s
	if places >= len(s) {
		return s
	}
	return s[len(s)-places:]
}

// Lerp returns the linear interpolation between a and b at t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}
