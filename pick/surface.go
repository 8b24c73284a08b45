// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/timeline/colors"
	"cogentcore.org/timeline/math32"
	"cogentcore.org/timeline/paint"
	"golang.org/x/image/draw"
)

// Surface pairs a visible paint context with a picking context of the
// same size, on which every region is drawn in its key color.
type Surface struct {
	ID SurfaceID

	// Visible is what the user sees.
	Visible *paint.Context

	// Pick holds the key colors of the regions; white is no region.
	Pick *paint.Context

	tree *Tree

	// keys are the key colors registered through this surface
	// since it was last cleared.
	keys []colors.Key
}

func newSurface(t *Tree, id SurfaceID, width, height int) *Surface {
	s := &Surface{ID: id, tree: t}
	s.Visible = paint.NewContext(width, height)
	s.Pick = paint.NewContext(width, height)
	s.Pick.Flat = true
	s.Pick.Clear(colors.White)
	return s
}

func (s *Surface) String() string {
	return fmt.Sprintf("Surface %d %v", s.ID, s.Size())
}

// Tree returns the tree that the surface belongs to.
func (s *Surface) Tree() *Tree {
	return s.tree
}

// Size returns the size of the surface in pixels.
func (s *Surface) Size() image.Point {
	return s.Visible.Size()
}

// Resize resizes the surface, returning whether the size changed.
// The contents are cleared if it did.
func (s *Surface) Resize(width, height int) bool {
	if !s.Visible.Resize(width, height) {
		return false
	}
	s.Pick.Resize(width, height)
	s.Pick.Clear(colors.White)
	s.keys = s.keys[:0]
	return true
}

// Clear fills the visible image with bg, whitens the picking image, and
// forgets the keys registered through this surface. The tree tables are
// only cleared by [Tree.Reset].
func (s *Surface) Clear(bg color.Color) {
	s.Visible.Clear(bg)
	s.Pick.Clear(colors.White)
	s.keys = s.keys[:0]
}

// Keys returns the key colors registered through this surface
// since it was last cleared.
func (s *Surface) Keys() []colors.Key {
	return s.keys
}

// KeyAt returns the key color at the given pixel,
// or [colors.WhiteKey] outside the surface.
func (s *Surface) KeyAt(x, y int) colors.Key {
	if !(image.Point{x, y}).In(s.Pick.Image.Bounds()) {
		return colors.WhiteKey
	}
	return colors.KeyOf(s.Pick.Image.RGBAAt(x, y))
}

// BeginRegion registers the region in the tree with a new key color and
// returns a [Hit] for drawing its hit area on the picking image.
// It panics with [ErrColorSpaceExhausted] if no color is left.
func (s *Surface) BeginRegion(r *Region) *Hit {
	k := s.tree.register(r)
	s.keys = append(s.keys, k)
	return &Hit{Region: r, Key: k, pc: s.Pick}
}

// DrawOnto composites the surface onto dst with its top-left corner at
// (dx, dy). Visible pixels are drawn over those of dst; picking pixels
// other than white replace those of dst, so that key colors keep mapping
// to the same regions in dst coordinates.
func (s *Surface) DrawOnto(dst *Surface, dx, dy int) {
	s.DrawOntoClipped(dst, dx, dy, dst.Visible.Image.Bounds())
}

// DrawOntoClipped is [Surface.DrawOnto] limited to the given
// rectangle of dst.
func (s *Surface) DrawOntoClipped(dst *Surface, dx, dy int, clip image.Rectangle) {
	off := image.Pt(dx, dy)
	r := s.Visible.Image.Bounds().Add(off).Intersect(dst.Visible.Image.Bounds()).Intersect(clip)
	if r.Empty() {
		return
	}
	draw.Draw(dst.Visible.Image, r, s.Visible.Image, r.Min.Sub(off), draw.Over)

	src, dp := s.Pick.Image, dst.Pick.Image
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(r.Min.X-dx, y-dy)
		di := dp.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			sp := src.Pix[si : si+4 : si+4]
			if sp[0] != 0xff || sp[1] != 0xff || sp[2] != 0xff {
				copy(dp.Pix[di:di+4], sp)
			}
			si += 4
			di += 4
		}
	}
}

// Hit draws the hit area of a region in its key color.
// The shape methods return the hit for chaining; a region may have
// any number of shapes.
type Hit struct {
	Region *Region
	Key    colors.Key

	pc *paint.Context
}

// Clip limits the shapes drawn after it to the given rectangle
// of the picking image.
func (h *Hit) Clip(r image.Rectangle) *Hit {
	h.pc = h.pc.WithClip(r)
	return h
}

// Color returns the key color as an opaque color.
func (h *Hit) Color() color.RGBA {
	return h.Key.RGBA()
}

// Rect adds a rectangle to the hit area.
func (h *Hit) Rect(x, y, w, ht float32) *Hit {
	return h.Box(math32.B2(x, y, x+w, y+ht))
}

// Box adds a box to the hit area.
func (h *Hit) Box(b math32.Box2) *Hit {
	h.pc.FillBox(b, h.Color())
	return h
}

// Ellipse adds an ellipse with the given center and radii to the hit area.
func (h *Hit) Ellipse(cx, cy, rx, ry float32) *Hit {
	h.pc.DrawEllipse(cx, cy, rx, ry)
	h.pc.Fill(h.Color())
	return h
}

// Polygon adds a closed polygon to the hit area.
func (h *Hit) Polygon(points []math32.Vector2) *Hit {
	h.pc.DrawPolygon(points)
	h.pc.Fill(h.Color())
	return h
}

// Line adds a line of the given width to the hit area.
func (h *Hit) Line(x1, y1, x2, y2, width float32) *Hit {
	h.pc.DrawLine(x1, y1, x2, y2, width)
	h.pc.Fill(h.Color())
	return h
}
