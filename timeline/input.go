// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"image"

	"cogentcore.org/timeline/events"
	"cogentcore.org/timeline/math32"
)

// Send queues a host event to be handled by [Timeline.Run] before the next
// frame. It is safe to call from any goroutine.
func (tl *Timeline) Send(e events.Event) {
	tl.events.Send(e)
}

// toSurface converts a point in host coordinates to surface pixels.
func (tl *Timeline) toSurface(p image.Point) image.Point {
	return math32.FromPoint(p.Sub(tl.origin)).MulScalar(tl.scale).ToPointFloor()
}

// HandleEvent handles a pointer event in host coordinates, returning
// whether a region handled it. It must be called on the goroutine that
// redraws; see [Timeline.Send] otherwise.
func (tl *Timeline) HandleEvent(e events.Event) bool {
	var handled bool
	switch e := e.(type) {
	case *events.MouseScroll:
		se := *e
		se.Where = tl.toSurface(e.Where)
		handled = tl.Gestures.Scroll(&se)
	case *events.Mouse:
		me := *e
		me.Where = tl.toSurface(e.Where)
		switch e.Type() {
		case events.MouseDown:
			handled = tl.Gestures.MouseDown(&me)
		case events.MouseUp:
			handled = tl.Gestures.MouseUp(&me)
		case events.MouseMove:
			handled = tl.Gestures.MouseMove(&me)
		case events.MouseLeave:
			handled = tl.Gestures.MouseLeave(&me)
		case events.Click:
			handled = tl.Gestures.Click(&me)
		}
	}
	if handled {
		e.SetHandled()
	}
	return handled
}
