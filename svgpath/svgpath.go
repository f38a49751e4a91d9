// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgpath rewrites the numbers in SVG path data,
// for example to distort a traced shape or limit its precision.
package svgpath

import (
	"math"
	"strconv"
	"strings"

	"cogentcore.org/sketch/base/num"
	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// DefaultDigits is the precision used when none is given.
const DefaultDigits = 6

// Func maps the value at index i of all values in a path to a new value.
type Func func(v float64, i int, all []float64) float64

// token is a number in the path data at data[start:end].
type token struct {
	start, end int
	value      float64
}

// tokens finds the unsigned decimal numbers in data. Signs and
// exponents are left in place as text. A run such as "1.5.5" is
// read as the two numbers 1.5 and .5, as SVG does.
func tokens(data string) []token {
	var ts []token
	b := []byte(data)
	for i := 0; i < len(b); {
		if !isNumByte(b[i]) {
			i++
			continue
		}
		j := i
		for j < len(b) && isNumByte(b[j]) {
			j++
		}
		for i < j {
			v, n := pstrconv.ParseFloat(b[i:j])
			if n == 0 {
				i++ // a lone '.'
				continue
			}
			ts = append(ts, token{start: i, end: i + n, value: v})
			i += n
		}
	}
	return ts
}

func isNumByte(c byte) bool {
	return c == '.' || (c >= '0' && c <= '9')
}

// Values returns the numbers in the path data, in order.
func Values(data string) []float64 {
	ts := tokens(data)
	vs := make([]float64, len(ts))
	for i, t := range ts {
		vs[i] = t.value
	}
	return vs
}

// Process replaces each number in the path data with fn applied to
// it, or with itself if fn is nil, formatted to the given number of
// significant digits. Digits below 1 use [DefaultDigits]. Everything
// other than the numbers, including signs, is kept as is.
func Process(data string, digits int, fn Func) string {
	if digits < 1 {
		digits = DefaultDigits
	}
	ts := tokens(data)
	all := make([]float64, len(ts))
	for i, t := range ts {
		all[i] = t.value
	}
	var b strings.Builder
	last := 0
	for i, t := range ts {
		v := t.value
		if fn != nil {
			v = fn(v, i, all)
		}
		b.WriteString(data[last:t.start])
		// adjacent numbers like "1.5.5" need a separator once reformatted
		if i > 0 && ts[i-1].end == t.start {
			b.WriteByte(' ')
		}
		b.WriteString(FormatPrecision(v, digits))
		last = t.end
	}
	b.WriteString(data[last:])
	return b.String()
}

// FormatPrecision formats v with the given number of significant
// digits, in the same way as JavaScript's Number.toPrecision:
// exponent notation is used when the exponent is below -6 or at
// least digits, and ties round away from zero.
func FormatPrecision(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	p := num.Constrain(digits, 1, 100)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	ds, e := strings.Repeat("0", p), 0
	if v != 0 {
		ds, e = roundDigits(v, p)
	}
	switch {
	case e < -6 || e >= p:
		m := ds[:1]
		if p > 1 {
			m += "." + ds[1:]
		}
		es := "+"
		if e < 0 {
			es = "-"
			e = -e
		}
		return sign + m + "e" + es + strconv.Itoa(e)
	case e == p-1:
		return sign + ds
	case e >= 0:
		return sign + ds[:e+1] + "." + ds[e+1:]
	}
	return sign + "0." + strings.Repeat("0", -(e+1)) + ds
}

// roundDigits returns the p significant digits of positive v,
// rounded half up, and the decimal exponent of the first digit.
func roundDigits(v float64, p int) (string, int) {
	s := strconv.FormatFloat(v, 'e', p+29, 64)
	mant, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	all := strings.Replace(mant, ".", "", 1)
	ds := []byte(all[:p])
	if all[p] >= '5' {
		i := p - 1
		for ; i >= 0; i-- {
			if ds[i] < '9' {
				ds[i]++
				break
			}
			ds[i] = '0'
		}
		if i < 0 {
			ds = append([]byte{'1'}, ds[:p-1]...)
			e++
		}
	}
	return string(ds), e
}
