// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const curve = "M250.137912,0.1171875 C250.137912,166.783854 333.466918,250.117188 500.124931,250.117188"

func TestValues(t *testing.T) {
	assert.InDeltaSlice(t, []float64{250.137912, 0.1171875, 250.137912, 166.783854, 333.466918, 250.117188, 500.124931, 250.117188}, Values(curve), 1e-12)
	assert.Equal(t, []float64{10, 20, 5}, Values("M10-20h5z"))
	assert.Equal(t, []float64{1.5, 0.5, 2}, Values("M1.5.5L2"))
	assert.Equal(t, []float64{3}, Values("M . 3"))
	assert.Empty(t, Values("Z"))
}

func TestProcess(t *testing.T) {
	assert.Equal(t, "M250.1,0.1172 C250.1,166.8 333.5,250.1 500.1,250.1", Process(curve, 4, nil))
	assert.Equal(t, "M10.0000-20.0000h5.00000z", Process("M10-20h5z", 0, nil))

	double := func(v float64, i int, all []float64) float64 { return v * 2 }
	assert.Equal(t, "M20.0 40.0L2.00 1.00", Process("M10 20L1 0.5", 3, double))

	var seen []int
	Process("M1 2 3", 2, func(v float64, i int, all []float64) float64 {
		seen = append(seen, i)
		assert.Equal(t, []float64{1, 2, 3}, all)
		return v
	})
	assert.Equal(t, []int{0, 1, 2}, seen)

	assert.Equal(t, "M1.5 0.50L2.0", Process("M1.5.5L2", 2, nil))
}

func TestFormatPrecision(t *testing.T) {
	vals := []float64{250.137912, 0.1171875, 166.783854, 500.124931, 0, 1, 2.5, 0.00001234, 123456, 1e21, 0.5, 99.99, 9.9999995, 0.000001, 1234.5}
	want := map[int][]string{
		1: {"3e+2", "0.1", "2e+2", "5e+2", "0", "1", "3", "0.00001", "1e+5", "1e+21", "0.5", "1e+2", "1e+1", "0.000001", "1e+3"},
		2: {"2.5e+2", "0.12", "1.7e+2", "5.0e+2", "0.0", "1.0", "2.5", "0.000012", "1.2e+5", "1.0e+21", "0.50", "1.0e+2", "10", "0.0000010", "1.2e+3"},
		4: {"250.1", "0.1172", "166.8", "500.1", "0.000", "1.000", "2.500", "0.00001234", "1.235e+5", "1.000e+21", "0.5000", "99.99", "10.00", "0.000001000", "1235"},
		6: {"250.138", "0.117188", "166.784", "500.125", "0.00000", "1.00000", "2.50000", "0.0000123400", "123456", "1.00000e+21", "0.500000", "99.9900", "10.0000", "0.00000100000", "1234.50"},
	}
	for d, ws := range want {
		for i, v := range vals {
			assert.Equal(t, ws[i], FormatPrecision(v, d), "%g to %d digits", v, d)
		}
	}

	assert.Equal(t, "-2.5", FormatPrecision(-2.5, 2))
	assert.Equal(t, "-3", FormatPrecision(-2.5, 1))
	assert.Equal(t, "1.2e-7", FormatPrecision(1.2e-7, 2))
	assert.Equal(t, "NaN", FormatPrecision(math.NaN(), 3))
	assert.Equal(t, "Infinity", FormatPrecision(math.Inf(1), 3))
	assert.Equal(t, "-Infinity", FormatPrecision(math.Inf(-1), 3))
	assert.Equal(t, "0.0", FormatPrecision(math.Copysign(0, -1), 2))
}
