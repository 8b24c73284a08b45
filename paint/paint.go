// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"

	"cogentcore.org/timeline/math32"
	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Context provides the rendering state and methods for painting
// onto an image. Paths are built with [Context.MoveTo] and friends
// (or the Draw* shape helpers) and then rendered with [Context.Fill].
//
// All coordinates are relative to [Context.Origin], and rendering is
// clipped to [Context.Clip]. Use [Context.Sub] to obtain a context for a
// sub-rectangle that shares the same image.
type Context struct {

	// Image is the image that we render into.
	Image *image.RGBA

	// Flat indicates that fills are not anti-aliased: a pixel is either
	// fully painted in the fill color or untouched.
	Flat bool

	// Origin is added to all path coordinates.
	Origin math32.Vector2

	// Clip is the rectangle, in image coordinates, that rendering is limited to.
	Clip image.Rectangle

	// path is the current path, in image coordinates.
	path []pathOp

	// pathBox is the bounding box of the current path.
	pathBox math32.Box2

	// scratch is shared by all contexts derived from the same root via Sub.
	scratch *scratch
}

// scratch holds reusable rasterization buffers.
type scratch struct {
	raster *vector.Rasterizer

	// pix backs the coverage mask, which is always exactly the size
	// of the rasterized area, with Stride equal to its width.
	pix []uint8
}

// NewContext returns a new [Context] associated with a new [image.RGBA]
// with the given width and height.
func NewContext(width, height int) *Context {
	return NewContextFromRGBA(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewContextFromRGBA returns a new [Context] associated with the given [image.RGBA].
// It renders directly onto the given image.
func NewContextFromRGBA(img *image.RGBA) *Context {
	pc := &Context{Image: img, Clip: img.Bounds(), scratch: &scratch{}}
	pc.pathBox.SetEmpty()
	return pc
}

// NewContextFromImage returns a new [Context] associated with an [image.RGBA]
// copy of the given [image.Image]. It does not render onto the given image.
func NewContextFromImage(img image.Image) *Context {
	return NewContextFromRGBA(clone.AsRGBA(img))
}

// Size returns the size of the underlying image.
func (pc *Context) Size() image.Point {
	return pc.Image.Rect.Size()
}

// Resize replaces the image with a new blank one of the given size,
// if it differs from the current size. It returns whether a new image was made.
func (pc *Context) Resize(width, height int) bool {
	sz := image.Pt(width, height)
	if pc.Image != nil && pc.Image.Rect.Size() == sz {
		return false
	}
	pc.Image = image.NewRGBA(image.Rectangle{Max: sz})
	pc.Clip = pc.Image.Rect
	pc.Origin = math32.Vector2{}
	pc.ClearPath()
	return true
}

// Sub returns a new context rendering into the same image with its origin
// at the top-left of the given box (in this context's coordinates) and
// clipped to the box.
func (pc *Context) Sub(box math32.Box2) *Context {
	abs := box.Translate(pc.Origin)
	sc := &Context{
		Image:   pc.Image,
		Flat:    pc.Flat,
		Origin:  abs.Min,
		Clip:    pc.Clip.Intersect(abs.ToRect()),
		scratch: pc.scratch,
	}
	sc.pathBox.SetEmpty()
	return sc
}

// WithClip returns a new context rendering into the same image with the
// same origin, with its clip further limited to the given rectangle in
// image coordinates.
func (pc *Context) WithClip(r image.Rectangle) *Context {
	sc := &Context{
		Image:   pc.Image,
		Flat:    pc.Flat,
		Origin:  pc.Origin,
		Clip:    pc.Clip.Intersect(r),
		scratch: pc.scratch,
	}
	sc.pathBox.SetEmpty()
	return sc
}

// Clear fills the whole image (ignoring the clip) with the given color,
// replacing existing pixels.
func (pc *Context) Clear(c color.Color) {
	draw.Draw(pc.Image, pc.Image.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillBox performs an optimized fill of the given rectangular region,
// which is rounded to whole pixels for flat contexts so that adjacent
// boxes neither overlap nor leave gaps.
func (pc *Context) FillBox(box math32.Box2, c color.Color) {
	box = box.Translate(pc.Origin)
	var r image.Rectangle
	if pc.Flat {
		r = image.Rectangle{box.Min.ToPoint(), box.Max.ToPoint()}
	} else {
		r = box.ToRect()
	}
	r = r.Intersect(pc.Clip)
	if r.Empty() {
		return
	}
	draw.Draw(pc.Image, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// BlitBox overwrites the given rectangular region with the given color,
// including its alpha.
func (pc *Context) BlitBox(box math32.Box2, c color.Color) {
	r := box.Translate(pc.Origin).ToRect().Intersect(pc.Clip)
	if r.Empty() {
		return
	}
	draw.Draw(pc.Image, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawImage draws the given image with its top-left at the given position,
// compositing over existing pixels.
func (pc *Context) DrawImage(img image.Image, x, y float32) {
	pos := math32.Vec2(x, y).Add(pc.Origin).ToPoint()
	r := img.Bounds().Sub(img.Bounds().Min).Add(pos).Intersect(pc.Clip)
	if r.Empty() {
		return
	}
	draw.Draw(pc.Image, r, img, img.Bounds().Min.Add(r.Min.Sub(pos)), draw.Over)
}

// At returns the color of the pixel at the given image coordinates.
func (pc *Context) At(x, y int) color.RGBA {
	return pc.Image.RGBAAt(x, y)
}

// Clone returns a copy of the underlying image.
func (pc *Context) Clone() *image.RGBA {
	return clone.AsRGBA(pc.Image)
}
