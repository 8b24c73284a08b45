// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/timeline/colors"
	"cogentcore.org/timeline/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = color.RGBA{0x10, 0x20, 0x30, 0xff}

func TestFlatFillIsExact(t *testing.T) {
	pc := NewContext(40, 40)
	pc.Flat = true
	pc.Clear(colors.White)
	pc.DrawEllipse(20, 20, 13.3, 7.7)
	pc.Fill(key)

	seen := map[color.RGBA]bool{}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			seen[pc.At(x, y)] = true
		}
	}
	assert.Len(t, seen, 2)
	assert.True(t, seen[key])
	assert.True(t, seen[colors.White])
	assert.Equal(t, key, pc.At(20, 20))
	assert.Equal(t, colors.White, pc.At(1, 1))
}

func TestAntiAliasedFillBlends(t *testing.T) {
	pc := NewContext(40, 40)
	pc.Clear(colors.White)
	pc.DrawCircle(20, 20, 10.5)
	pc.Fill(colors.Black)

	blended := false
	for x := 0; x < 40; x++ {
		c := pc.At(x, 20)
		if c != colors.White && c != colors.Black {
			blended = true
		}
	}
	assert.True(t, blended)
}

func TestFillBox(t *testing.T) {
	pc := NewContext(10, 10)
	pc.Flat = true
	pc.Clear(colors.White)
	pc.FillBox(math32.B2(2.4, 2.6, 5.5, 5), key)
	assert.Equal(t, colors.White, pc.At(2, 2))
	assert.Equal(t, key, pc.At(2, 3))
	assert.Equal(t, key, pc.At(5, 4))
	assert.Equal(t, colors.White, pc.At(6, 4))
}

func TestSubOriginAndClip(t *testing.T) {
	pc := NewContext(20, 20)
	pc.Clear(colors.White)
	sub := pc.Sub(math32.B2(10, 10, 15, 15))
	sub.FillBox(math32.B2(0, 0, 100, 100), key)
	assert.Equal(t, colors.White, pc.At(9, 9))
	assert.Equal(t, key, pc.At(10, 10))
	assert.Equal(t, key, pc.At(14, 14))
	assert.Equal(t, colors.White, pc.At(15, 15))

	sub.DrawRectangle(-5, -5, 3, 3)
	sub.Fill(key)
	assert.Equal(t, colors.White, pc.At(6, 6))
}

func TestDrawLine(t *testing.T) {
	pc := NewContext(20, 20)
	pc.Flat = true
	pc.Clear(colors.White)
	pc.DrawLine(5, 0, 5, 20, 2)
	pc.Fill(key)
	assert.Equal(t, key, pc.At(4, 10))
	assert.Equal(t, key, pc.At(5, 10))
	assert.Equal(t, colors.White, pc.At(7, 10))
}

func TestDrawImageAndClone(t *testing.T) {
	src := NewContext(4, 4)
	src.Clear(key)
	pc := NewContext(10, 10)
	pc.Clear(colors.White)
	pc.DrawImage(src.Image, 8, 8)
	assert.Equal(t, key, pc.At(9, 9))
	assert.Equal(t, colors.White, pc.At(7, 7))

	cl := pc.Clone()
	pc.Clear(colors.Black)
	assert.Equal(t, key, cl.RGBAAt(9, 9))
}

func TestResizeAndSave(t *testing.T) {
	pc := NewContext(4, 4)
	assert.False(t, pc.Resize(4, 4))
	assert.True(t, pc.Resize(8, 2))
	assert.Equal(t, image.Pt(8, 2), pc.Size())
	require.NoError(t, pc.SavePNG(filepath.Join(t.TempDir(), "a.png")))
}

func TestPolygonRowsAligned(t *testing.T) {
	pc := NewContext(200, 100)
	pc.Flat = true
	pc.Clear(colors.White)
	pc.DrawPolygon([]math32.Vector2{{X: 50, Y: 20}, {X: 150, Y: 20}, {X: 150, Y: 80}, {X: 50, Y: 80}})
	pc.Fill(key)

	n := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if pc.At(x, y) == key {
				n++
				assert.True(t, x >= 50 && x < 150 && y >= 20 && y < 80, "stray pixel at %d, %d", x, y)
			}
		}
	}
	assert.Equal(t, 100*60, n)

	// a smaller shape after a larger one reuses the buffer
	pc.Clear(colors.White)
	pc.DrawEllipse(20, 20, 10, 10)
	pc.Fill(key)
	assert.Equal(t, key, pc.At(20, 20))
	assert.Equal(t, key, pc.At(12, 20))
	assert.Equal(t, colors.White, pc.At(20, 35))
}
