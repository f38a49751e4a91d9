// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Seeds is a set of random seeds, typically used one per variation
// of a sketch, so that a whole series can be regenerated.
type Seeds []int64

// Init allocates given number of seeds and initializes them to
// sequential numbers 1..n
func (rs *Seeds) Init(n int) {
	*rs = make([]int64, n)
	for i := range *rs {
		(*rs)[i] = int64(i) + 1
	}
}

// Set reseeds the given [Rand] with the seed at the given index.
func (rs *Seeds) Set(idx int, rnd *Rand) {
	rnd.Seed((*rs)[idx])
}

// NewSeeds sets a new set of random seeds based on current time
func (rs *Seeds) NewSeeds() {
	rn := time.Now().UnixNano()
	for i := range *rs {
		(*rs)[i] = rn + int64(i)
	}
}

// NewSeed returns a fresh seed read from crypto/rand, for sketches
// that should differ on every run but still report their seed.
// Only the low 32 bits matter to [Engine.Seed], so the seed is
// returned in the non-negative int32 range where it prints and
// round-trips cleanly.
func NewSeed() (int64, error) {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint32(b[:]) & 0x7fffffff), nil
}

// ParseSeed turns user input into a seed: a decimal integer is used
// as is, and any other text is hashed into the non-negative int32 range.
func ParseSeed(s string) int64 {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	return int64(uint32(xxhash.Sum64String(s)) & 0x7fffffff)
}
