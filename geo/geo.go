// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo provides the angle constants and point math
// shared by frames, polygons and glyphs.
package geo

import (
	"fmt"
	"math"
)

const (
	// Pi is half a turn in radians.
	Pi = math.Pi

	// Tau is a full turn in radians.
	Tau = 2 * math.Pi
)

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees / 360 * Tau
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians / Tau * 360
}

// Point is a 2D point or offset in canvas coordinates,
// with y increasing downward.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Polar converts a polar offset to cartesian coordinates.
// The angle is measured from the +y axis toward +x, so
// Polar(0, 1) is (0, 1) and Polar(Pi/2, 1) is (1, 0).
func Polar(angle, mag float64) Point {
	return Point{X: math.Sin(angle) * mag, Y: math.Cos(angle) * mag}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
