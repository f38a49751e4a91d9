// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"

	"cogentcore.org/core/base/keylist"
)

// Choice returns a uniformly chosen element of the collection,
// using the index IntRange(0, len-1). The collection must not be
// empty: an empty collection panics with an index out of range.
func Choice[T any](r *Rand, collection []T) T {
	return collection[r.IntRange(0, len(collection)-1)]
}

// ChoiceKey returns a uniformly chosen key of the list, in
// insertion order, so a fixed seed always picks the same key.
// The list must not be empty.
func ChoiceKey[K comparable, V any](r *Rand, list *keylist.List[K, V]) K {
	return Choice(r, list.Keys)
}

// Shuffle shuffles the slice in place with the Fisher-Yates
// algorithm and returns it. Going from the last index down to 1,
// each element is swapped with one at a uniform index in [0, i],
// consuming exactly len-1 draws.
func Shuffle[T any](r *Rand, slice []T) []T {
	for i := len(slice) - 1; i > 0; i-- {
		j := int(math.Floor(r.Float64() * float64(i+1)))
		slice[i], slice[j] = slice[j], slice[i]
	}
	return slice
}

// Perm returns a pseudo-random permutation of the integers in [0,n).
func Perm(r *Rand, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return Shuffle(r, p)
}
