// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the events flowing between a timeline host,
// the gesture interpreter and the pickable regions of a timeline.
package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/timeline/events/key"
)

// Event is the interface for all timeline events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// HasPos returns true if the event has a pointer position.
	HasPos() bool

	// Pos returns the pointer position on the surface, in pixels.
	Pos() image.Point

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed.
	SetHandled()

	// Modifiers returns the modifier keys held when the event was generated.
	Modifiers() key.Modifiers
}

// Base is the base type for events. It is designed to be embedded
// in other event types.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	// Where is the pointer location, in surface pixels.
	Where image.Point

	// Button is the mouse button being pressed or released, if relevant.
	Button Buttons

	// Mods are the modifier keys present at the time of the event.
	Mods key.Modifiers

	// Data is any additional data associated with the event.
	Data any

	handled bool
}

// Type returns the type of event.
func (ev *Base) Type() Types {
	return ev.Typ
}

// Time returns the generation time of the event.
func (ev *Base) Time() time.Time {
	return ev.GenTime
}

// SetTime sets the generation time of the event to now.
func (ev *Base) SetTime() {
	ev.GenTime = time.Now()
}

// HasPos returns whether the event type carries a position.
func (ev *Base) HasPos() bool {
	return ev.Typ.IsPointer()
}

// Pos returns the pointer location.
func (ev *Base) Pos() image.Point {
	return ev.Where
}

// IsHandled returns whether the event has been handled.
func (ev *Base) IsHandled() bool {
	return ev.handled
}

// SetHandled marks the event as handled.
func (ev *Base) SetHandled() {
	ev.handled = true
}

// ClearHandled resets the handled state, so that a derived event can
// be sent on to another region.
func (ev *Base) ClearHandled() {
	ev.handled = false
}

// Modifiers returns the modifier keys.
func (ev *Base) Modifiers() key.Modifiers {
	return ev.Mods
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Pos: %v, Mods: %v, Data: %v}", ev.Typ, ev.Where, ev.Mods.ModifiersString(), ev.Data)
}

// NewCustom returns a new non-pointer event of the given type carrying data,
// such as [Change] and [Select] sent to timeline listeners.
func NewCustom(typ Types, data any) *Base {
	ev := &Base{Typ: typ, Data: data}
	ev.SetTime()
	return ev
}
