// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"io"

	"github.com/anthonynsimon/bild/imgio"
)

// SavePNG writes the image to the given file as a PNG.
func (c *Context) SavePNG(filename string) error {
	if err := imgio.Save(filename, c.img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// EncodePNG writes the image to w as a PNG.
func (c *Context) EncodePNG(w io.Writer) error {
	return imgio.PNGEncoder()(w, c.img)
}
