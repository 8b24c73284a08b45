// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"image"
	"image/color"
	"log/slog"
	"math"
	"time"

	"cogentcore.org/timeline/base/errors"
	"cogentcore.org/timeline/colors"
	"cogentcore.org/timeline/cursors"
	"cogentcore.org/timeline/events"
	"cogentcore.org/timeline/events/key"
	"cogentcore.org/timeline/gesture"
	"cogentcore.org/timeline/math32"
	"cogentcore.org/timeline/pick"
	"cogentcore.org/timeline/viewport"
)

var (
	// DividerColor is the color of the line between the sidebar and the time area.
	DividerColor = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}

	// SelectionColor shades the range being selected.
	SelectionColor = color.RGBA{0x1a, 0x4d, 0x80, 0x40}
)

// dividerHalfWidth is half the width of the hit area of the sidebar divider.
const dividerHalfWidth = 3

// layout computes the position of every band: frozen bands stacked from
// the top, then the unfrozen ones, scrolled.
func (tl *Timeline) layout() {
	root := tl.Tree.Root()
	tl.frozenHeight, tl.scrollHeight = 0, 0
	for _, be := range tl.bands {
		be.height = max(be.band.ContentHeight(root), 0)
		if be.band.Frozen() {
			be.y = tl.frozenHeight
			tl.frozenHeight += be.height
		} else {
			tl.scrollHeight += be.height
		}
	}
	tl.scroll = tl.clampScroll(tl.scroll)
	y := tl.frozenHeight - tl.scroll
	for _, be := range tl.bands {
		if !be.band.Frozen() {
			be.y = y
			y += be.height
		}
	}
}

// ordered returns the bands with the frozen ones first.
func (tl *Timeline) ordered() []*bandEntry {
	bs := make([]*bandEntry, 0, len(tl.bands))
	for _, be := range tl.bands {
		if be.band.Frozen() {
			bs = append(bs, be)
		}
	}
	for _, be := range tl.bands {
		if !be.band.Frozen() {
			bs = append(bs, be)
		}
	}
	return bs
}

// clip returns the part of the root surface where the band is visible.
func (tl *Timeline) clip(be *bandEntry) image.Rectangle {
	sz := tl.Size()
	top := float32(0)
	if !be.band.Frozen() {
		top = tl.frozenHeight
	}
	y0 := max(be.y, top)
	y1 := min(be.y+be.height, float32(sz.Y))
	return image.Rect(0, int(math32.Round(y0)), sz.X, int(math32.Round(y1)))
}

// context returns a draw context for the band on the given surface,
// with the band at the given vertical offset.
func (tl *Timeline) context(be *bandEntry, s *pick.Surface, y float32, clip image.Rectangle, now time.Time) *DrawContext {
	w := float32(tl.Size().X)
	sb := float32(tl.Viewport.SidebarWidth())
	dc := &DrawContext{
		Timeline:   tl,
		Viewport:   tl.Viewport,
		Surface:    s,
		Paint:      s.Visible.WithClip(clip),
		Box:        math32.B2(0, y, w, y+be.height),
		TimeBox:    math32.B2(sb, y, w, y+be.height),
		SidebarBox: math32.B2(0, y, sb, y+be.height),
		Clip:       clip,
		RegionID:   be.id,
		Now:        now,
	}
	return dc
}

// redraw performs one full redraw pass.
func (tl *Timeline) redraw(now time.Time) {
	tl.Tree.Reset()
	root := tl.Tree.Root()
	root.Visible.Clear(tl.background)
	tl.layout()
	sz := tl.Size()
	slog.Debug("timeline: redraw", "range", tl.Viewport.Range(), "bands", len(tl.bands), "generation", tl.Tree.Generation())

	root.BeginRegion(tl.backgroundRegion()).Rect(0, 0, float32(sz.X), float32(sz.Y))

	bands := tl.ordered()
	rootCtx := make([]*DrawContext, len(bands))
	for i, be := range bands {
		dc := tl.context(be, root, be.y, tl.clip(be), now)
		rootCtx[i] = dc
		dc.Surface.BeginRegion(&pick.Region{ID: be.id, ParentID: BackgroundID}).Clip(dc.Clip).Box(dc.Box)
	}
	for i, be := range bands {
		be.band.DrawUnderlay(rootCtx[i])
	}
	for i, be := range bands {
		s := be.surface
		s.Resize(sz.X, int(math32.Ceil(be.height)))
		s.Clear(colors.Transparent)
		if rootCtx[i].Clip.Empty() {
			continue
		}
		dc := tl.context(be, s, 0, s.Visible.Image.Bounds(), now)
		be.band.DrawContent(dc)
		s.DrawOntoClipped(root, 0, int(math32.Round(be.y)), rootCtx[i].Clip)
	}
	for i, be := range bands {
		be.band.DrawOverlay(rootCtx[i])
	}
	tl.drawSelection()
	tl.drawDivider()
	tl.Gestures.Refresh()
}

// drawSelection shades the range being selected.
func (tl *Timeline) drawSelection() {
	if tl.selection == nil {
		return
	}
	sb := tl.Viewport.SidebarWidth()
	x0 := float32(sb + tl.Viewport.PositionTime(tl.selection.Start))
	x1 := float32(sb + tl.Viewport.PositionTime(tl.selection.Stop))
	h := float32(tl.Size().Y)
	root := tl.Tree.Root()
	root.Visible.WithClip(image.Rect(int(sb), 0, tl.Size().X, int(h))).FillBox(math32.B2(x0, 0, x1, h), SelectionColor)
}

// drawDivider draws the line between the sidebar and the time area,
// with its region on top of everything else.
func (tl *Timeline) drawDivider() {
	root := tl.Tree.Root()
	x := float32(tl.Viewport.SidebarWidth())
	h := float32(tl.Size().Y)
	root.Visible.FillBox(math32.B2(x-1, 0, x, h), DividerColor)
	root.BeginRegion(tl.dividerRegion()).Rect(x-dividerHalfWidth, 0, 2*dividerHalfWidth, h)
}

// backgroundRegion returns the region under all bands, which pans or
// selects on grab and zooms or pans on wheel.
func (tl *Timeline) backgroundRegion() *pick.Region {
	r := &pick.Region{ID: BackgroundID, Cursor: cursors.Grab}
	if tl.Gestures.Tool == gesture.RangeSelect {
		r.Cursor = cursors.Crosshair
	}
	r.Grab = func(e *events.GrabEvent) {
		if tl.Gestures.Tool == gesture.RangeSelect {
			tl.selectRange(e)
			return
		}
		errors.Log(tl.Viewport.PanBy(-float64(e.Delta.X), false))
		if e.Delta.Y != 0 {
			tl.ScrollBy(-float32(e.Delta.Y))
		}
	}
	r.GrabEnd = func(e *events.GrabEvent) {
		if tl.Gestures.Tool != gesture.RangeSelect || tl.selection == nil {
			return
		}
		sel := *tl.selection
		tl.selection = nil
		tl.RequestRepaint()
		if sel.Span() > 0 {
			tl.Listeners.Call(events.NewCustom(events.Select, sel))
		}
	}
	r.Wheel = func(e *events.MouseScroll) {
		if e.Delta.Y != 0 {
			if key.HasAnyModifier(e.Mods, key.Shift) {
				tl.ScrollBy(e.Delta.Y)
			} else {
				factor := math.Exp(float64(e.Delta.Y) * tl.Config.WheelZoomSpeed)
				pivot := tl.TimeForPosition(float64(e.Where.X))
				errors.Log(tl.Viewport.ZoomAround(factor, pivot, false))
			}
		}
		if e.Delta.X != 0 {
			errors.Log(tl.Viewport.PanBy(float64(e.Delta.X), false))
		}
	}
	return r
}

// selectRange updates the selection to span from where the grab
// started to the pointer.
func (tl *Timeline) selectRange(e *events.GrabEvent) {
	t0 := tl.TimeForPosition(float64(e.Start.X))
	t1 := tl.TimeForPosition(float64(e.Where.X))
	tl.selection = &viewport.TimeRange{Start: min(t0, t1), Stop: max(t0, t1)}
	tl.RequestRepaint()
}

// dividerRegion returns the region of the sidebar divider, which
// resizes the sidebar directly when grabbed.
func (tl *Timeline) dividerRegion() *pick.Region {
	r := &pick.Region{ID: DividerID, Cursor: cursors.ResizeCol, Divider: true}
	r.Grab = func(e *events.GrabEvent) {
		w := tl.Viewport.SidebarTarget() + float64(e.Delta.X)
		w = min(max(w, float64(tl.Config.MinSidebarWidth)), float64(tl.Size().X))
		tl.Viewport.SetSidebarWidth(w, false)
	}
	r.GrabEnd = func(e *events.GrabEvent) {
		if w := float32(tl.Viewport.SidebarWidth()); w > 0 {
			tl.expandedWidth = w
		}
	}
	return r
}
