// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bands provides basic timeline bands: a time ruler, a band of
// events, and a marker of the current time, along with a dataset format
// for building them from YAML files.
package bands

import (
	"image/color"
	"time"

	"cogentcore.org/timeline/base/errors"
	"cogentcore.org/timeline/cursors"
	"cogentcore.org/timeline/events"
	"cogentcore.org/timeline/math32"
	"cogentcore.org/timeline/pick"
	"cogentcore.org/timeline/timeline"
)

// intervals are the tick intervals that a [Ruler] chooses from.
var intervals = []time.Duration{
	time.Millisecond, 5 * time.Millisecond, 10 * time.Millisecond, 50 * time.Millisecond,
	100 * time.Millisecond, 500 * time.Millisecond,
	time.Second, 5 * time.Second, 15 * time.Second, 30 * time.Second,
	time.Minute, 5 * time.Minute, 15 * time.Minute, 30 * time.Minute,
	time.Hour, 3 * time.Hour, 6 * time.Hour, 12 * time.Hour,
	24 * time.Hour, 7 * 24 * time.Hour, 30 * 24 * time.Hour, 365 * 24 * time.Hour,
}

// NiceInterval returns the smallest tick interval for which ticks are
// at least minSpacing pixels apart, when span milliseconds are shown
// on width pixels.
func NiceInterval(span int64, width, minSpacing float64) time.Duration {
	if width <= 0 || span <= 0 {
		return intervals[len(intervals)-1]
	}
	for _, iv := range intervals {
		if float64(iv.Milliseconds())*width/float64(span) >= minSpacing {
			return iv
		}
	}
	return intervals[len(intervals)-1]
}

// Ticks returns the multiples of interval (since the Unix epoch)
// within [start, stop].
func Ticks(start, stop int64, interval time.Duration) []int64 {
	iv := interval.Milliseconds()
	if iv <= 0 || stop < start {
		return nil
	}
	t := start - start%iv
	if t < start {
		t += iv
	}
	var ts []int64
	for ; t <= stop; t += iv {
		ts = append(ts, t)
	}
	return ts
}

// Ruler is a frozen band with tick marks at regular intervals.
// Clicking it centers the clicked time.
type Ruler struct {

	// Height is the height of the band.
	Height float32

	// MinSpacing is the minimum distance in pixels between ticks.
	MinSpacing float32

	// Background is the fill color of the band.
	Background color.RGBA

	// Tick is the color of minor tick marks.
	Tick color.RGBA

	// Major is the color of the tick marks at every fifth interval
	// of the next larger size.
	Major color.RGBA
}

// NewRuler returns a new [Ruler] with default settings.
func NewRuler() *Ruler {
	return &Ruler{
		Height:     24,
		MinSpacing: 12,
		Background: color.RGBA{0xf4, 0xf4, 0xf4, 0xff},
		Tick:       color.RGBA{0xb0, 0xb0, 0xb0, 0xff},
		Major:      color.RGBA{0x50, 0x50, 0x50, 0xff},
	}
}

func (r *Ruler) Name() string { return "ruler" }
func (r *Ruler) Frozen() bool { return true }
func (r *Ruler) ContentHeight(*pick.Surface) float32 { return r.Height }
func (r *Ruler) DrawUnderlay(dc *timeline.DrawContext) {}
func (r *Ruler) DrawOverlay(dc *timeline.DrawContext) {}

// Interval returns the minor tick interval for the current range.
func (r *Ruler) Interval(dc *timeline.DrawContext) time.Duration {
	return NiceInterval(dc.Viewport.Range().Span(), dc.Viewport.Width(), float64(r.MinSpacing))
}

func (r *Ruler) DrawContent(dc *timeline.DrawContext) {
	tb := dc.TimeBox
	dc.Paint.FillBox(tb, r.Background)
	vr := dc.Viewport.Range()
	minor := r.Interval(dc)
	major := NiceInterval(vr.Span(), dc.Viewport.Width(), 5*float64(r.MinSpacing))
	for _, t := range Ticks(vr.Start, vr.Stop, minor) {
		x := math32.Round(dc.X(t))
		c, h := r.Tick, tb.Size().Y/3
		if t%major.Milliseconds() == 0 {
			c, h = r.Major, tb.Size().Y*2/3
		}
		dc.Paint.FillBox(math32.B2(x, tb.Max.Y-h, x+1, tb.Max.Y), c)
	}
	dc.Paint.FillBox(math32.B2(tb.Min.X, tb.Max.Y-1, tb.Max.X, tb.Max.Y), r.Major)

	reg := &pick.Region{ID: dc.RegionFor("scale"), Cursor: cursors.Pointer}
	reg.Click = func(e *events.Mouse) {
		t := dc.Timeline.TimeForPosition(float64(e.Where.X))
		errors.Log(dc.Timeline.PanTo(t, true))
	}
	dc.BeginRegion(reg).Box(tb)
}
