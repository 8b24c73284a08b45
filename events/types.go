// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of timeline surface event.
// The pointer types follow the standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// names, since hosts typically forward browser or window system
// pointer events directly.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See Button() for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	// See Button() for which.
	MouseUp

	// MouseMove is sent when the pointer moves over the surface,
	// whether or not a button is down.
	MouseMove

	// MouseLeave is sent by the host when the pointer leaves the surface.
	MouseLeave

	// Click represents a MouseDown followed by MouseUp without an
	// intervening grab. It is delivered to the region under the MouseUp.
	Click

	// MouseEnter is sent to a region when the pointer starts hovering it.
	MouseEnter

	// MouseOut is sent to a region that the pointer stopped hovering.
	// Regions are compared by ID, so a region redrawn in a new frame
	// under the same ID is considered the same region.
	MouseOut

	// Scroll is for scroll wheel or other scrolling gestures.
	Scroll

	// Grab is sent to the grabbed region for each pointer move once the
	// snap threshold has been exceeded, carrying the delta since the last one.
	Grab

	// GrabEnd is sent to the grabbed region when the grab is released
	// or the pointer leaves the surface.
	GrabEnd

	// Change is sent to timeline listeners when the visible range changes.
	Change

	// Select is sent to timeline listeners when a time range has been selected.
	Select

	typesN
)

var typesNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "MouseLeave", "Click", "MouseEnter", "MouseOut", "Scroll", "Grab", "GrabEnd", "Change", "Select"}

func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return "UnknownType"
	}
	return typesNames[tp]
}

// IsPointer returns whether the type carries a pointer position.
func (tp Types) IsPointer() bool {
	return tp >= MouseDown && tp <= GrabEnd
}
