// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// Key is a 24 bit RGB triple packed as 0xRRGGBB, used as the identity
// of a pickable region on a picking surface.
type Key uint32

// WhiteKey is the key of pure white, which never identifies a region.
const WhiteKey Key = 0xffffff

// KeyOf returns the [Key] for the given color, ignoring alpha.
func KeyOf(c color.RGBA) Key {
	return Key(c.R)<<16 | Key(c.G)<<8 | Key(c.B)
}

// RGBA returns the opaque color for the key.
func (k Key) RGBA() color.RGBA {
	return color.RGBA{uint8(k >> 16), uint8(k >> 8), uint8(k), 0xff}
}

// Channels returns the three channel values of the key.
func (k Key) Channels() (r, g, b uint8) {
	return uint8(k >> 16), uint8(k >> 8), uint8(k)
}

// KeyFromChannels packs the three channel values into a key.
func KeyFromChannels(r, g, b uint8) Key {
	return Key(r)<<16 | Key(g)<<8 | Key(b)
}

// Neighborhood returns the keys within one unit per channel of k,
// including k itself. Channels are clamped to the valid range, so keys
// at the edge of the color space have fewer neighbors.
func (k Key) Neighborhood() []Key {
	r, g, b := k.Channels()
	nb := make([]Key, 0, 27)
	for dr := -1; dr <= 1; dr++ {
		for dg := -1; dg <= 1; dg++ {
			for db := -1; db <= 1; db++ {
				cr, cg, cb := int(r)+dr, int(g)+dg, int(b)+db
				if cr < 0 || cr > 255 || cg < 0 || cg > 255 || cb < 0 || cb > 255 {
					continue
				}
				nb = append(nb, KeyFromChannels(uint8(cr), uint8(cg), uint8(cb)))
			}
		}
	}
	return nb
}
