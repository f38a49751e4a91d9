// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "cogentcore.org/core/base/keylist"

// PChoose64 chooses an index in given slice of float64's at random according
// to the probilities of each item (must be normalized to sum to 1).
// It consumes one draw. If rounding leaves the draw above the total,
// the last index is returned.
func PChoose64(r *Rand, ps []float64) int {
	pv := r.Float64()
	sum := float64(0)
	for i, p := range ps {
		sum += p
		if pv < sum { // note: lower values already excluded
			return i
		}
	}
	return len(ps) - 1
}

// WeightedKey chooses a key of the list with probability proportional
// to its weight. Weights need not be normalized; non-positive weights
// are never chosen unless every weight is non-positive, in which case
// the last key is returned. The list must not be empty.
func WeightedKey[K comparable](r *Rand, weights *keylist.List[K, float64]) K {
	total := 0.0
	for _, w := range weights.Values {
		if w > 0 {
			total += w
		}
	}
	pv := r.Float64() * total
	sum := 0.0
	for i, w := range weights.Values {
		if w <= 0 {
			continue
		}
		sum += w
		if pv < sum {
			return weights.Keys[i]
		}
	}
	return weights.Keys[len(weights.Keys)-1]
}
