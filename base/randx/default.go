// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// defaultRand is the shared stream used by quick scripts that do
// not want to carry a [Rand] around. It starts with seed 0.
var defaultRand = NewFromSource(NewLocked(NewEngine(0)))

// Default returns the shared package-level [Rand], which starts
// with seed 0. Prefer an explicit [Rand] from [New] in libraries
// and tests: every caller of Default advances the same stream.
func Default() *Rand {
	return defaultRand
}

// SetSeed reseeds the shared package-level [Rand].
func SetSeed(seed int64) {
	defaultRand.Seed(seed)
}
