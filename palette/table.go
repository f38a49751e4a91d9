// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"sync"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/sketch/base/randx"
)

// Default is the name of the default palette.
const Default = "default"

// builtin lists the built-in palettes in order: background first.
var builtin = []struct {
	name   string
	colors []string
}{
	{"default", []string{"#404", "#909", "#070", "#6c6"}},
	{"darkSlush", []string{"#000000", "#0F6292", "#16FF00", "#FFED00"}},
	{"warmier", []string{"#400E32", "#A61F69", "#F2921D", "#F2CD5C"}},
	{"brightWinter", []string{"#FC7300", "#BFDB38", "#1F8A70", "#00425A"}},
	{"camoflage", []string{"#5F7161", "#6D8B74", "#EFEAD8", "#D0C9C0"}},
	{"corvetteSummer", []string{"#900C27", "#C70039", "#F6C667", "#F1F8FD"}},
	{"taffy", []string{"#824C96", "#433466", "#FFAF4F", "#ED733F"}},
	{"airSeaBattle", []string{"#92E6E6", "#FFF9AF", "#D65D7A", "#524C84"}},
	{"battleshipCreamsicle", []string{"#85A392", "#F5B971", "#FDD998", "#FFECC7"}},
	{"caffeine", []string{"#F1DEC9", "#C8B6A6", "#A4907C", "#8D7B68"}},
	{"cool2600", []string{"#191825", "#865DFF", "#E384FF", "#FFA3FD"}},
	{"turtle", []string{"#F7F1E5", "#E7B10A", "#898121", "#4C4B16"}},
	{"primarilyBrilliant", []string{"#00235B", "#E21818", "#FFDD83", "#98DFD6"}},
	{"natureAndSherbet", []string{"#7AA874", "#F7DB6A", "#EBB02D", "#D864A9"}},
	{"level99", []string{"#F67280", "#C06C84", "#6C5B7B", "#355C7D"}},
	{"armyJeep", []string{"#61764B", "#9BA17B", "#CFB997", "#CFB997"}},
	{"safetyThird", []string{"#F97B22", "#FEE8B0", "#9CA777", "#FAD6A5"}},
	{"coolNeutral", []string{"#A6D0DD", "#FF6969", "#FFD3B0", "#FFF9DE"}},
	{"altCrayola", []string{"#89375F", "#CE5959", "#BACDDB", "#F3E8FF"}},
	{"icicle", []string{"#453C67", "#6D67E4", "#46C2CB", "#F2F7A1"}},
}

var (
	mu    sync.RWMutex
	table = newTable()
)

func newTable() *keylist.List[string, *Palette] {
	t := keylist.New[string, *Palette]()
	for _, b := range builtin {
		t.Set(b.name, MustFromHex(b.name, b.colors...))
	}
	return t
}

// Names returns the names of all registered palettes in order:
// the built-in palettes first, then any added by [Register].
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return append([]string(nil), table.Keys...)
}

// Lookup returns the palette with the given name.
func Lookup(name string) (*Palette, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := table.AtTry(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return p, nil
}

// Register adds the palette to the table under its name, replacing
// any palette of that name in place so the order is kept.
func Register(p *Palette) {
	mu.Lock()
	defer mu.Unlock()
	table.Set(p.Name, p)
}

// Random returns a uniformly chosen registered palette. For a given
// seed and set of registered palettes the choice is always the same.
func Random(rnd *randx.Rand) *Palette {
	mu.RLock()
	defer mu.RUnlock()
	return table.At(randx.ChoiceKey(rnd, table))
}
