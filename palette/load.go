// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a set of palettes, as either TOML:
//
//	[[palette]]
//	name = "dusk"
//	colors = ["#112", "#445566", "#f80"]
//
// or YAML with the same field names.
type File struct {
	Palettes []Entry `toml:"palette" yaml:"palette"`
}

// Entry is one palette in a [File].
type Entry struct {
	Name   string   `toml:"name" yaml:"name"`
	Colors []string `toml:"colors" yaml:"colors"`
}

// ErrFormat is returned for palette files with an unsupported extension.
var ErrFormat = errors.New("unsupported palette file format")

// Load reads palettes from a .toml, .yaml or .yml file, in file order.
// Valid palettes are returned even when others have errors.
func Load(filename string) ([]*Palette, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	ps, err := Parse(data, filepath.Ext(filename))
	if err != nil {
		err = fmt.Errorf("load palettes from %s: %w", filename, err)
	}
	return ps, err
}

// Parse parses palettes in the format given by a file extension.
// Every palette needs a name and at least one color.
func Parse(data []byte, ext string) ([]*Palette, error) {
	var f File
	var err error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		err = toml.Unmarshal(data, &f)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	ps := make([]*Palette, 0, len(f.Palettes))
	var errs []error
	for i, e := range f.Palettes {
		if e.Name == "" || len(e.Colors) == 0 {
			errs = append(errs, fmt.Errorf("palette %d: needs a name and colors", i+1))
			continue
		}
		p, err := FromHex(e.Name, e.Colors...)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ps = append(ps, p)
	}
	return ps, errors.Join(errs...)
}

// Encode returns the palettes in the TOML form read by [Parse].
func Encode(ps ...*Palette) ([]byte, error) {
	f := File{Palettes: make([]Entry, len(ps))}
	for i, p := range ps {
		f.Palettes[i] = Entry{Name: p.Name, Colors: p.Hexes()}
	}
	return toml.Marshal(f)
}

// LoadAndRegister loads palettes with [Load] and registers the ones
// that are valid, returning their names and any load errors.
func LoadAndRegister(filename string) ([]string, error) {
	ps, err := Load(filename)
	names := make([]string, len(ps))
	for i, p := range ps {
		Register(p)
		names[i] = p.Name
	}
	return names, err
}
