// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timeline provides an interactive, pannable and zoomable
// timeline: a stack of horizontal bands drawn onto a raster surface
// and driven by pointer input.
//
// A [Timeline] wires together a [viewport.Viewport] holding the visible
// time range, a [pick.Tree] resolving pointer positions to regions, a
// [render.Scheduler] deciding when to redraw, and a [gesture.Interpreter]
// turning pointer input into clicks, grabs and wheel events.
package timeline

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/timeline/base/errors"
	"cogentcore.org/timeline/config"
	"cogentcore.org/timeline/cursors"
	"cogentcore.org/timeline/events"
	"cogentcore.org/timeline/gesture"
	"cogentcore.org/timeline/pick"
	"cogentcore.org/timeline/render"
	"cogentcore.org/timeline/viewport"
)

// Region IDs of the built-in regions.
const (
	BackgroundID = "background"
	DividerID    = "sidebar-divider"
)

// bandEntry is a band with its layout and content surface.
type bandEntry struct {
	band    Band
	id      string
	surface *pick.Surface

	y, height float32
}

// Timeline is an interactive timeline surface.
type Timeline struct {

	// Config is the configuration, which must not change
	// other than through [Timeline.SetConfig].
	Config *config.Config

	// Viewport holds the visible time range.
	Viewport *viewport.Viewport

	// Tree holds the picking surfaces.
	Tree *pick.Tree

	// Scheduler decides when to redraw.
	Scheduler *render.Scheduler

	// Gestures interprets pointer input.
	Gestures *gesture.Interpreter

	// Listeners receive [events.Change] when the visible range changes
	// and [events.Select] when a range has been selected.
	Listeners events.Listeners

	// OnCursor, if set, is called with the cursor that the host should show.
	OnCursor func(c cursors.Cursor)

	// Clock returns the current time. It defaults to [time.Now].
	Clock func() time.Time

	events events.Queue

	bands []*bandEntry
	free  []*pick.Surface

	background color.RGBA

	// scroll is the vertical scroll offset of the unfrozen bands.
	scroll float32

	// scrolling is the animation of ScrollTo, if any.
	scrolling *render.Animation

	frozenHeight, scrollHeight float32

	// expandedWidth is the sidebar width restored by ExpandSidebar.
	expandedWidth float32

	// selection is the range being selected with the RangeSelect tool.
	selection *viewport.TimeRange

	origin image.Point
	scale  float32
}

// New returns a new timeline of the given size in pixels with the given
// configuration, which may be nil for the defaults. It initially shows the
// day around the current time.
func New(cfg *config.Config, width, height int) *Timeline {
	if cfg == nil {
		cfg = config.Default()
	}
	tl := &Timeline{scale: 1}
	tl.Tree = pick.NewTree(width, height, pick.Options{QuantizationGuard: cfg.QuantizationGuard})
	tl.Scheduler = render.New(tl.redraw)
	tl.Scheduler.Events = &tl.events
	tl.Scheduler.HandleEvent = func(e events.Event) { tl.HandleEvent(e) }

	now := time.Now().UnixMilli()
	day := int64(24 * time.Hour / time.Millisecond)
	tl.Viewport = errors.Must1(viewport.New(viewport.TimeRange{Start: now - day/2, Stop: now + day/2}, float64(width), cfg.AnimationDuration.D()))
	tl.Viewport.Clock = tl.now
	tl.Viewport.Repainter = tl.Scheduler
	tl.Viewport.OnChange = tl.sendChange
	tl.Scheduler.Add(tl.Viewport)

	tl.Gestures = gesture.New(tl.Tree)
	tl.Gestures.SetCursor = func(c cursors.Cursor) {
		if tl.OnCursor != nil {
			tl.OnCursor(c)
		}
	}
	tl.SetConfig(cfg)
	tl.Viewport.SetSidebarWidth(float64(cfg.SidebarWidth), false)
	return tl
}

func (tl *Timeline) String() string {
	return fmt.Sprintf("Timeline{%v, bands: %d}", tl.Viewport, len(tl.bands))
}

// SetConfig applies the given configuration. The sidebar width only
// changes on the next [Timeline.ExpandSidebar].
func (tl *Timeline) SetConfig(cfg *config.Config) {
	tl.Config = cfg
	tl.background = cfg.BackgroundColor()
	tl.expandedWidth = cfg.SidebarWidth
	tl.Viewport.SetDuration(cfg.AnimationDuration.D())
	tl.Viewport.ZoomStep = cfg.ZoomStep
	tl.Scheduler.RefreshInterval = cfg.RefreshInterval.D()
	tl.Scheduler.FrameRate = cfg.FrameRate
	tl.Gestures.SnapThreshold = cfg.SnapThreshold
	tl.Gestures.NativeClicks = cfg.NativeClicks
	tl.RequestRepaint()
}

func (tl *Timeline) now() time.Time {
	if tl.Clock != nil {
		return tl.Clock()
	}
	return time.Now()
}

func (tl *Timeline) sendChange(r viewport.TimeRange) {
	tl.Listeners.Call(events.NewCustom(events.Change, r))
}

//////// Bands

// AddBand adds a band below the existing bands of the same kind.
func (tl *Timeline) AddBand(b Band) {
	var s *pick.Surface
	if n := len(tl.free); n > 0 {
		s = tl.free[n-1]
		tl.free = tl.free[:n-1]
	} else {
		s = tl.Tree.NewSurface(0, 0)
	}
	be := &bandEntry{band: b, surface: s}
	if nm, ok := b.(Namer); ok && nm.Name() != "" {
		be.id = "band:" + nm.Name()
	} else {
		be.id = fmt.Sprintf("band:%d", s.ID)
	}
	tl.bands = append(tl.bands, be)
	tl.RequestRepaint()
}

// RemoveBand removes the band, returning whether it was there.
func (tl *Timeline) RemoveBand(b Band) bool {
	i := slices.IndexFunc(tl.bands, func(be *bandEntry) bool { return be.band == b })
	if i < 0 {
		return false
	}
	tl.free = append(tl.free, tl.bands[i].surface)
	tl.bands = slices.Delete(tl.bands, i, i+1)
	tl.RequestRepaint()
	return true
}

// Bands returns the bands in the order that they were added.
func (tl *Timeline) Bands() []Band {
	bs := make([]Band, len(tl.bands))
	for i, be := range tl.bands {
		bs[i] = be.band
	}
	return bs
}

// BandBox returns the top and height of the band in the last redraw.
func (tl *Timeline) BandBox(b Band) (y, height float32, ok bool) {
	for _, be := range tl.bands {
		if be.band == b {
			return be.y, be.height, true
		}
	}
	return 0, 0, false
}

//////// Surface

// Size returns the size of the surface.
func (tl *Timeline) Size() image.Point {
	return tl.Tree.Root().Size()
}

// SetSize resizes the surface.
func (tl *Timeline) SetSize(width, height int) {
	if !tl.Tree.Root().Resize(width, height) {
		return
	}
	tl.Viewport.SetSurfaceWidth(float64(width))
	tl.RequestRepaint()
}

// SetGeometry sets the position of the surface in host coordinates and
// the number of surface pixels per host unit, such as a device pixel ratio.
func (tl *Timeline) SetGeometry(origin image.Point, scale float32) {
	tl.origin = origin
	if scale <= 0 {
		scale = 1
	}
	tl.scale = scale
}

// Image returns the visible image, as of the last redraw.
func (tl *Timeline) Image() *image.RGBA {
	return tl.Tree.Root().Visible.Image
}

// PickImage returns the picking image, as of the last redraw.
func (tl *Timeline) PickImage() *image.RGBA {
	return tl.Tree.PickImage()
}

//////// Scheduling

// RequestRepaint marks the timeline for redraw on the next tick.
func (tl *Timeline) RequestRepaint() {
	tl.Scheduler.RequestRepaint()
}

// Tick performs one frame at the given time, returning whether it redrew.
func (tl *Timeline) Tick(now time.Time) bool {
	return tl.Scheduler.Tick(now)
}

// Run runs the timeline loop until the context is done; see [render.Scheduler.Run].
// Hosts on other goroutines should deliver input with [Timeline.Send].
func (tl *Timeline) Run(ctx context.Context, frames <-chan time.Time) error {
	return tl.Scheduler.Run(ctx, frames)
}

// Post runs the function on the goroutine running [Timeline.Run].
func (tl *Timeline) Post(f func()) {
	tl.Scheduler.Post(f)
}

//////// Viewport

// Range returns the currently visible range.
func (tl *Timeline) Range() viewport.TimeRange {
	return tl.Viewport.Range()
}

// PositionTime returns the horizontal position of t on the surface.
func (tl *Timeline) PositionTime(t int64) float64 {
	return tl.Viewport.SidebarWidth() + tl.Viewport.PositionTime(t)
}

// TimeForPosition returns the time at the given horizontal position on the surface.
func (tl *Timeline) TimeForPosition(x float64) int64 {
	return tl.Viewport.TimeForPosition(x - tl.Viewport.SidebarWidth())
}

// DistanceBetween returns the signed number of pixels between the two times.
func (tl *Timeline) DistanceBetween(t1, t2 int64) float64 {
	return tl.Viewport.DistanceBetween(t1, t2)
}

// SetBounds sets the visible range.
func (tl *Timeline) SetBounds(start, stop int64, animate bool) error {
	return tl.Viewport.SetBounds(start, stop, animate)
}

// PanBy shifts the visible range by the given number of pixels.
func (tl *Timeline) PanBy(px float64, animate bool) error {
	return tl.Viewport.PanBy(px, animate)
}

// PanTo centers the visible range on t.
func (tl *Timeline) PanTo(t int64, animate bool) error {
	return tl.Viewport.PanTo(t, animate)
}

// Zoom multiplies the visible span by factor around its center.
func (tl *Timeline) Zoom(factor float64, animate bool) error {
	return tl.Viewport.Zoom(factor, animate)
}

// ZoomAround multiplies the visible span by factor, keeping pivot in place.
func (tl *Timeline) ZoomAround(factor float64, pivot int64, animate bool) error {
	return tl.Viewport.ZoomAround(factor, pivot, animate)
}

// ZoomIn zooms in by one step.
func (tl *Timeline) ZoomIn() error {
	return tl.Viewport.ZoomIn(true)
}

// ZoomOut zooms out by one step.
func (tl *Timeline) ZoomOut() error {
	return tl.Viewport.ZoomOut(true)
}

//////// Sidebar

// SidebarCollapsed returns whether the sidebar is collapsed or collapsing.
func (tl *Timeline) SidebarCollapsed() bool {
	return tl.Viewport.SidebarTarget() == 0
}

// CollapseSidebar animates the sidebar closed.
func (tl *Timeline) CollapseSidebar() {
	if w := float32(tl.Viewport.SidebarTarget()); w > 0 {
		tl.expandedWidth = w
	}
	tl.Viewport.SetSidebarWidth(0, true)
}

// ExpandSidebar animates the sidebar open to its last expanded width.
func (tl *Timeline) ExpandSidebar() {
	w := tl.expandedWidth
	if w <= 0 {
		w = tl.Config.SidebarWidth
	}
	tl.Viewport.SetSidebarWidth(float64(w), true)
}

// ToggleSidebar collapses or expands the sidebar.
func (tl *Timeline) ToggleSidebar() {
	if tl.SidebarCollapsed() {
		tl.ExpandSidebar()
	} else {
		tl.CollapseSidebar()
	}
}

//////// Scrolling

// Scroll returns the vertical scroll offset of the unfrozen bands.
func (tl *Timeline) Scroll() float32 {
	return tl.scroll
}

// ScrollBy scrolls the unfrozen bands by dy pixels, within their height.
func (tl *Timeline) ScrollBy(dy float32) {
	tl.stopScrolling()
	s := tl.clampScroll(tl.scroll + dy)
	if s == tl.scroll {
		return
	}
	tl.scroll = s
	tl.RequestRepaint()
}

// ScrollTo scrolls the unfrozen bands to the given offset, within their
// height. If animate is set, the offset changes with linear easing over
// the animation duration of the configuration.
func (tl *Timeline) ScrollTo(y float32, animate bool) {
	tl.stopScrolling()
	d := tl.Config.AnimationDuration.D()
	target := tl.clampScroll(y)
	if !animate || d <= 0 {
		if target != tl.scroll {
			tl.scroll = target
			tl.RequestRepaint()
		}
		return
	}
	from := tl.scroll
	var elapsed time.Duration
	tl.scrolling = tl.Scheduler.Animate(func(a *render.Animation) {
		elapsed += a.Delta
		p := min(float32(elapsed)/float32(d), 1)
		tl.scroll = tl.clampScroll(from + (target-from)*p)
		if p >= 1 {
			a.Done = true
			tl.scrolling = nil
		}
	})
}

func (tl *Timeline) stopScrolling() {
	if tl.scrolling != nil {
		tl.scrolling.Done = true
		tl.scrolling = nil
	}
}

func (tl *Timeline) clampScroll(s float32) float32 {
	avail := float32(tl.Size().Y) - tl.frozenHeight
	return min(max(s, 0), max(tl.scrollHeight-avail, 0))
}

//////// Tools

// Tool returns the current tool.
func (tl *Timeline) Tool() gesture.Tool {
	return tl.Gestures.Tool
}

// SetTool sets the tool used for grabs on the background.
func (tl *Timeline) SetTool(t gesture.Tool) {
	if t == tl.Gestures.Tool {
		return
	}
	slog.Debug("timeline: tool", "tool", t)
	tl.Gestures.Tool = t
	tl.selection = nil
	tl.RequestRepaint()
}

// Selection returns the range being selected, if any.
func (tl *Timeline) Selection() (viewport.TimeRange, bool) {
	if tl.selection == nil {
		return viewport.TimeRange{}, false
	}
	return *tl.selection, true
}
