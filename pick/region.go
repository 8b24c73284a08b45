// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"fmt"

	"cogentcore.org/timeline/cursors"
	"cogentcore.org/timeline/events"
)

// HandlerKinds are the kinds of event handlers that a [Region] can have.
type HandlerKinds int32

const (
	ClickHandler HandlerKinds = iota
	MouseEnterHandler
	MouseMoveHandler
	MouseOutHandler
	MouseDownHandler
	MouseUpHandler
	GrabHandler
	GrabEndHandler
	WheelHandler

	handlerKindsN
)

var handlerKindNames = [...]string{"Click", "MouseEnter", "MouseMove", "MouseOut", "MouseDown", "MouseUp", "Grab", "GrabEnd", "Wheel"}

func (hk HandlerKinds) String() string {
	if hk < 0 || hk >= handlerKindsN {
		return fmt.Sprintf("HandlerKinds(%d)", int32(hk))
	}
	return handlerKindNames[hk]
}

// Handlers are the optional event handlers of a [Region].
// A nil handler means that the region does not handle that kind
// of event, which then bubbles to the parent where applicable.
type Handlers struct {
	Click      func(e *events.Mouse)
	MouseEnter func(e *events.Mouse)
	MouseMove  func(e *events.Mouse)
	MouseOut   func(e *events.Mouse)
	MouseDown  func(e *events.Mouse)
	MouseUp    func(e *events.Mouse)
	Grab       func(e *events.GrabEvent)
	GrabEnd    func(e *events.GrabEvent)
	Wheel      func(e *events.MouseScroll)
}

// Region is a named interactive shape. Regions are registered anew on
// every redraw; only the ID identifies a region across redraws.
type Region struct {

	// ID identifies the region across redraws.
	ID string

	// ParentID is the ID of the region that events bubble to, if any.
	ParentID string

	// Cursor is shown while the pointer hovers over the region.
	Cursor cursors.Cursor

	// Divider regions start a grab immediately on mouse down,
	// without waiting for the snap threshold.
	Divider bool

	Handlers
}

func (r *Region) String() string {
	if r == nil {
		return "<nil>"
	}
	if r.ParentID != "" {
		return r.ID + " (in " + r.ParentID + ")"
	}
	return r.ID
}

// Has returns whether the region has a handler of the given kind.
func (r *Region) Has(kind HandlerKinds) bool {
	switch kind {
	case ClickHandler:
		return r.Click != nil
	case MouseEnterHandler:
		return r.MouseEnter != nil
	case MouseMoveHandler:
		return r.MouseMove != nil
	case MouseOutHandler:
		return r.MouseOut != nil
	case MouseDownHandler:
		return r.MouseDown != nil
	case MouseUpHandler:
		return r.MouseUp != nil
	case GrabHandler:
		return r.Grab != nil
	case GrabEndHandler:
		return r.GrabEnd != nil
	case WheelHandler:
		return r.Wheel != nil
	}
	return false
}

// HasAny returns whether the region has a handler of any of the given
// kinds, or true if no kinds are given.
func (r *Region) HasAny(kinds ...HandlerKinds) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if r.Has(k) {
			return true
		}
	}
	return false
}
