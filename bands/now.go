// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bands

import (
	"image/color"
	"time"

	"cogentcore.org/timeline/math32"
	"cogentcore.org/timeline/pick"
	"cogentcore.org/timeline/timeline"
)

// NowLocator is a band without height that draws a vertical line at the
// current time over all bands. It relies on the periodic forced refresh
// of the timeline to keep up with the clock.
type NowLocator struct {

	// Color is the color of the line.
	Color color.RGBA

	// Width is the width of the line.
	Width float32
}

// NewNowLocator returns a new [NowLocator] with default settings.
func NewNowLocator() *NowLocator {
	return &NowLocator{Color: color.RGBA{0xd0, 0x20, 0x20, 0xff}, Width: 1}
}

func (n *NowLocator) Name() string { return "now" }
func (n *NowLocator) Frozen() bool { return true }
func (n *NowLocator) ContentHeight(*pick.Surface) float32 { return 0 }
func (n *NowLocator) DrawUnderlay(dc *timeline.DrawContext) {}
func (n *NowLocator) DrawContent(dc *timeline.DrawContext) {}

// X returns the horizontal position of the line at the given time.
func (n *NowLocator) X(dc *timeline.DrawContext, now time.Time) float32 {
	return dc.X(now.UnixMilli())
}

func (n *NowLocator) DrawOverlay(dc *timeline.DrawContext) {
	t := dc.Now.UnixMilli()
	if !dc.Visible(t, t) {
		return
	}
	x := n.X(dc, dc.Now)
	h := float32(dc.Surface.Size().Y)
	dc.Surface.Visible.FillBox(math32.B2(x-n.Width/2, 0, x+n.Width/2, h), n.Color)
}
