// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"image"
	"time"

	"cogentcore.org/timeline/math32"
	"cogentcore.org/timeline/paint"
	"cogentcore.org/timeline/pick"
	"cogentcore.org/timeline/viewport"
)

// Band is a horizontal track of a [Timeline]. On every redraw, the
// timeline asks each band for its content height, then calls DrawUnderlay
// for all bands, DrawContent for all bands, and DrawOverlay for all bands,
// with frozen bands first.
type Band interface {

	// Frozen returns whether the band stays at the top
	// instead of scrolling vertically.
	Frozen() bool

	// ContentHeight returns the height of the band in pixels.
	ContentHeight(s *pick.Surface) float32

	// DrawUnderlay draws behind the content of all bands,
	// on the root surface.
	DrawUnderlay(dc *DrawContext)

	// DrawContent draws the content of the band on its own surface,
	// which is then composited onto the root surface.
	DrawContent(dc *DrawContext)

	// DrawOverlay draws over the content of all bands,
	// on the root surface.
	DrawOverlay(dc *DrawContext)
}

// Namer is implemented by bands that have a name, which is used
// for the ID of their region.
type Namer interface {
	Name() string
}

// DrawContext is passed to the draw methods of a [Band].
type DrawContext struct {

	// Timeline is the timeline being drawn.
	Timeline *Timeline

	// Viewport maps between times and positions within the time area.
	Viewport *viewport.Viewport

	// Surface is the surface to draw on.
	Surface *pick.Surface

	// Paint paints on the visible image of Surface, clipped to Clip.
	Paint *paint.Context

	// Box is the whole band, in Surface coordinates.
	Box math32.Box2

	// TimeBox is the part of Box to the right of the sidebar.
	TimeBox math32.Box2

	// SidebarBox is the part of Box under the sidebar.
	SidebarBox math32.Box2

	// Clip is the part of Surface where the band is visible.
	Clip image.Rectangle

	// RegionID is the ID of the band region, which is the default
	// parent of regions added with [DrawContext.BeginRegion].
	RegionID string

	// Now is the time of the redraw.
	Now time.Time
}

// X returns the horizontal position of the given time in Surface coordinates.
func (dc *DrawContext) X(t int64) float32 {
	return dc.TimeBox.Min.X + float32(dc.Viewport.PositionTime(t))
}

// Time returns the time at the given horizontal position in Surface coordinates.
func (dc *DrawContext) Time(x float32) int64 {
	return dc.Viewport.TimeForPosition(float64(x - dc.TimeBox.Min.X))
}

// Visible returns whether any part of [start, stop] is in the visible range.
func (dc *DrawContext) Visible(start, stop int64) bool {
	r := dc.Viewport.Range()
	return start <= r.Stop && stop >= r.Start
}

// BeginRegion registers the region on Surface, parented to the band
// region unless it has a parent, with its hit area clipped to Clip.
func (dc *DrawContext) BeginRegion(r *pick.Region) *pick.Hit {
	if r.ParentID == "" {
		r.ParentID = dc.RegionID
	}
	return dc.Surface.BeginRegion(r).Clip(dc.Clip)
}

// RegionFor returns the ID of a region of the band with the given name.
func (dc *DrawContext) RegionFor(name string) string {
	return dc.RegionID + "/" + name
}
