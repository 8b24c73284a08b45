// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport maps between time and horizontal pixel positions
// for a timeline, and animates changes of the visible time range.
package viewport

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"cogentcore.org/timeline/anim"
	"cogentcore.org/timeline/base/errors"
)

var (
	// ErrInvalidRange is returned for operations that would leave
	// stop <= start.
	ErrInvalidRange = errors.New("viewport: stop must be after start")

	// ErrInvalidZoom is returned for zoom factors that are not
	// positive finite numbers.
	ErrInvalidZoom = errors.New("viewport: zoom factor must be positive")
)

// Repainter is notified whenever the viewport changes in a way
// that requires a redraw.
type Repainter interface {
	RequestRepaint()
}

// Viewport holds the visible time range of a timeline and derives the
// mapping between times and pixel offsets within the time area, which is
// the surface width minus the (collapsible) sidebar width.
//
// The mapping is linear:
//
//	x = Width() * (t - start) / (stop - start)
//
// Start, stop and sidebar width are [anim.Value]s; all changes to the range
// go through [Viewport.SetBounds], which either applies them immediately or
// starts a transition on both bounds with a shared start time.
type Viewport struct {

	// ZoomStep is the factor used by [Viewport.ZoomIn] and [Viewport.ZoomOut].
	ZoomStep float64

	// Clock returns the current time for starting transitions.
	// It defaults to [time.Now].
	Clock func() time.Time

	// Repainter, if set, is notified of every change.
	Repainter Repainter

	// OnChange, if set, is called with the destination range
	// after every change of the range.
	OnChange func(target TimeRange)

	start   anim.Value
	stop    anim.Value
	sidebar anim.Value

	surfaceWidth float64
}

// New returns a new [Viewport] showing the given range on a surface of the
// given width, with transitions of the given duration. A zero duration
// makes every change immediate, and a negative one selects
// [anim.DefaultDuration].
func New(r TimeRange, surfaceWidth float64, duration time.Duration) (*Viewport, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if duration < 0 {
		duration = anim.DefaultDuration
	}
	v := &Viewport{ZoomStep: 2, surfaceWidth: surfaceWidth}
	v.SetDuration(duration)
	v.start.Set(float64(r.Start))
	v.stop.Set(float64(r.Stop))
	return v, nil
}

func (v *Viewport) String() string {
	return fmt.Sprintf("Viewport{%v, width: %g, sidebar: %v}", v.Range(), v.Width(), &v.sidebar)
}

// SetDuration sets the duration of range and sidebar transitions.
func (v *Viewport) SetDuration(d time.Duration) {
	v.start.Duration = d
	v.stop.Duration = d
	v.sidebar.Duration = d
}

// SetEasing sets the easing of range and sidebar transitions.
func (v *Viewport) SetEasing(e anim.Easing) {
	v.start.Easing = e
	v.stop.Easing = e
	v.sidebar.Easing = e
}

func (v *Viewport) now() time.Time {
	if v.Clock != nil {
		return v.Clock()
	}
	return time.Now()
}

func (v *Viewport) repaint() {
	if v.Repainter != nil {
		v.Repainter.RequestRepaint()
	}
}

//////// Queries

// Width returns the width in pixels of the time area.
func (v *Viewport) Width() float64 {
	return max(v.surfaceWidth-v.sidebar.Current(), 0)
}

// SurfaceWidth returns the full surface width, including the sidebar.
func (v *Viewport) SurfaceWidth() float64 {
	return v.surfaceWidth
}

// SetSurfaceWidth sets the full surface width, including the sidebar.
func (v *Viewport) SetSurfaceWidth(w float64) {
	if w == v.surfaceWidth {
		return
	}
	v.surfaceWidth = max(w, 0)
	v.repaint()
}

// Range returns the currently visible range, which is in between the
// source and the target while a transition is active.
func (v *Viewport) Range() TimeRange {
	return TimeRange{int64(math.Round(v.start.Current())), int64(math.Round(v.stop.Current()))}
}

// Target returns the range the viewport is settling on: the destination of
// the active transition, or the current range if there is none.
func (v *Viewport) Target() TimeRange {
	return TimeRange{int64(math.Round(v.start.Target())), int64(math.Round(v.stop.Target()))}
}

// Animating returns whether any transition is active.
func (v *Viewport) Animating() bool {
	return v.start.Animating() || v.stop.Animating() || v.sidebar.Animating()
}

// PositionTime returns the pixel offset of t from the left edge of the time area.
func (v *Viewport) PositionTime(t int64) float64 {
	s, e := v.start.Current(), v.stop.Current()
	return v.Width() * (float64(t) - s) / (e - s)
}

// TimeForPosition returns the time at the given pixel offset from the left
// edge of the time area, rounded to the nearest millisecond.
func (v *Viewport) TimeForPosition(x float64) int64 {
	return int64(math.Round(v.timeAt(x)))
}

func (v *Viewport) timeAt(x float64) float64 {
	s, e := v.start.Current(), v.stop.Current()
	w := v.Width()
	if w <= 0 {
		return s
	}
	return s + x*(e-s)/w
}

// DistanceBetween returns the signed number of pixels between the two times.
func (v *Viewport) DistanceBetween(t1, t2 int64) float64 {
	s, e := v.start.Current(), v.stop.Current()
	return v.Width() * float64(t2-t1) / (e - s)
}

//////// Mutations

// SetBounds sets the visible range, animating towards it if animate is true.
// It returns [ErrInvalidRange] unless stop > start, leaving the range unchanged.
func (v *Viewport) SetBounds(start, stop int64, animate bool) error {
	r := TimeRange{start, stop}
	if err := r.Validate(); err != nil {
		return err
	}
	if animate {
		t0 := v.now()
		v.start.SetTransition(t0, float64(start))
		v.stop.SetTransition(t0, float64(stop))
	} else {
		v.start.Set(float64(start))
		v.stop.Set(float64(stop))
	}
	slog.Debug("viewport: set bounds", "range", r, "animate", animate)
	v.repaint()
	if v.OnChange != nil {
		v.OnChange(r)
	}
	return nil
}

// setBoundsFloat rounds and range-checks computed bounds before applying them.
func (v *Viewport) setBoundsFloat(start, stop float64, animate bool) error {
	const limit = float64(math.MaxInt64 / 2)
	if math.IsNaN(start) || math.IsNaN(stop) || math.Abs(start) > limit || math.Abs(stop) > limit {
		return fmt.Errorf("%w: bounds out of range", ErrInvalidRange)
	}
	return v.SetBounds(int64(math.Round(start)), int64(math.Round(stop)), animate)
}

// PanBy shifts the range by the time corresponding to the given number of
// pixels; positive values move forward in time.
func (v *Viewport) PanBy(px float64, animate bool) error {
	w := v.Width()
	if w <= 0 {
		return nil
	}
	tg := v.Target()
	dt := px * float64(tg.Span()) / w
	return v.setBoundsFloat(float64(tg.Start)+dt, float64(tg.Stop)+dt, animate)
}

// PanTo centers the range on the given time, keeping its span.
func (v *Viewport) PanTo(t int64, animate bool) error {
	tg := v.Target()
	half := float64(tg.Span()) / 2
	return v.setBoundsFloat(float64(t)-half, float64(t)+half, animate)
}

func checkFactor(factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidZoom, factor)
	}
	return nil
}

// Zoom multiplies the span of the range by factor, keeping its center:
// factors above 1 zoom out and factors below 1 zoom in.
// It returns [ErrInvalidZoom] unless factor > 0.
func (v *Viewport) Zoom(factor float64, animate bool) error {
	if err := checkFactor(factor); err != nil {
		return err
	}
	tg := v.Target()
	center := (float64(tg.Start) + float64(tg.Stop)) / 2
	half := float64(tg.Span()) * factor / 2
	return v.setBoundsFloat(center-half, center+half, animate)
}

// ZoomAround multiplies the span of the range by factor, keeping the pixel
// position of the pivot time unchanged.
func (v *Viewport) ZoomAround(factor float64, pivot int64, animate bool) error {
	if err := checkFactor(factor); err != nil {
		return err
	}
	tg := v.Target()
	span := float64(tg.Span())
	rel := (float64(pivot) - float64(tg.Start)) / span
	ns := span * factor
	start := float64(pivot) - rel*ns
	return v.setBoundsFloat(start, start+ns, animate)
}

// ZoomIn divides the span by [Viewport.ZoomStep] around the center.
func (v *Viewport) ZoomIn(animate bool) error {
	return v.Zoom(1/v.ZoomStep, animate)
}

// ZoomOut multiplies the span by [Viewport.ZoomStep] around the center.
func (v *Viewport) ZoomOut(animate bool) error {
	return v.Zoom(v.ZoomStep, animate)
}

//////// Sidebar

// SidebarWidth returns the current sidebar width.
func (v *Viewport) SidebarWidth() float64 {
	return v.sidebar.Current()
}

// SidebarTarget returns the width the sidebar is settling on.
func (v *Viewport) SidebarTarget() float64 {
	return v.sidebar.Target()
}

// SetSidebarWidth sets the sidebar width, animating towards it if animate
// is true. Setting it directly aborts any active sidebar transition.
func (v *Viewport) SetSidebarWidth(w float64, animate bool) {
	w = max(w, 0)
	if animate {
		v.sidebar.SetTransition(v.now(), w)
	} else {
		v.sidebar.Set(w)
	}
	v.repaint()
}

//////// Ticking

// Step advances all active transitions to the given time,
// returning whether anything changed.
func (v *Viewport) Step(now time.Time) bool {
	a := v.start.Step(now)
	b := v.stop.Step(now)
	c := v.sidebar.Step(now)
	return a || b || c
}
