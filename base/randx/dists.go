// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
)

// note: these build the non-uniform distributions on top of the
// single Float64 primitive, so that they stay reproducible from a seed.

// Gaussian returns a gaussian (normal) random number with given
// mean and sigma standard deviation, using the Box-Muller transform.
// It consumes exactly two draws.
func (r *Rand) Gaussian(mean, sigma float64) float64 {
	u1 := 1 - r.Float64() // (0, 1], so the log is finite
	u2 := r.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + sigma*z
}

// Exp returns an exponentially distributed number with rate
// parameter (lambda) 1 and mean 1, consuming one draw.
// To produce a different rate, divide the result by the desired rate.
func (r *Rand) Exp() float64 {
	return -math.Log(1 - r.Float64())
}

// Poisson returns a poisson variable, as number of events in an interval,
// with event rate lambda. It uses the direct method of summing
// exponential inter-arrival times, which is fine for the small
// rates used in sketches; the number of draws grows with lambda.
func (r *Rand) Poisson(lambda float64) float64 {
	// NUMERICAL RECIPES IN C: THE ART OF SCIENTIFIC COMPUTING (ISBN 0-521-43108-5)
	// p. 294
	var em float64
	t := 0.0
	for {
		t += r.Exp()
		if t >= lambda {
			break
		}
		em++
	}
	return em
}
