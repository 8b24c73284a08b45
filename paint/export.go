// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"github.com/anthonynsimon/bild/imgio"
)

// SavePNG saves the current image to the given file in PNG format.
func (pc *Context) SavePNG(filename string) error {
	return imgio.Save(filename, pc.Image, imgio.PNGEncoder())
}
