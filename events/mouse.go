// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/timeline/events/key"
	"cogentcore.org/timeline/math32"
)

var (
	// ScrollWheelSpeed controls how fast the scroll wheel moves (typically
	// interpreted as pixels per wheel step).
	ScrollWheelSpeed = float32(1)
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonNames = [...]string{"NoButton", "Left", "Middle", "Right"}

func (b Buttons) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "NoButton"
	}
	return buttonNames[b]
}

// Mouse is a basic mouse event for all mouse events except Scroll and Grab.
type Mouse struct {
	Base

	// Held is whether the primary button is currently held down,
	// as reported by the host for move events.
	Held bool
}

// NewMouse returns a new [Mouse] event of the given type.
func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.SetTime()
	ev.Button = but
	ev.Where = where
	ev.Mods = mods
	return ev
}

// NewMouseMove returns a new [MouseMove] event, with held indicating
// whether the primary button is down.
func NewMouseMove(held bool, where image.Point, mods key.Modifiers) *Mouse {
	ev := NewMouse(MouseMove, NoButton, where, mods)
	if held {
		ev.Button = Left
	}
	ev.Held = held
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

// Derive returns a copy of the event with the given type, unhandled,
// for sending a derived event (such as [Click] or [MouseEnter]) to a region.
func (ev *Mouse) Derive(typ Types) *Mouse {
	nev := *ev
	nev.Typ = typ
	nev.ClearHandled()
	return &nev
}

// MouseScroll is for mouse scrolling, recording the delta of the scroll.
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, which is always in pixel/dot
	// units. Positive Y is scrolling down, positive X scrolling right.
	Delta math32.Vector2
}

// NewScroll returns a new [Scroll] event.
func NewScroll(where image.Point, delta math32.Vector2, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	ev.SetTime()
	ev.Where = where
	ev.Delta = delta.MulScalar(ScrollWheelSpeed)
	ev.Mods = mods
	return ev
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

// GrabEvent is sent to a grabbed region, recording the movement
// since the previous grab event (or the anchor).
type GrabEvent struct {
	Mouse

	// Delta is the movement in pixels relative to the current anchor.
	Delta image.Point

	// Start is where the grab was anchored when the button went down.
	Start image.Point
}

// NewGrab returns a new [Grab] or [GrabEnd] event.
func NewGrab(typ Types, where, delta, start image.Point, mods key.Modifiers) *GrabEvent {
	ev := &GrabEvent{}
	ev.Typ = typ
	ev.SetTime()
	ev.Button = Left
	ev.Where = where
	ev.Delta = delta
	ev.Start = start
	ev.Mods = mods
	return ev
}

func (ev *GrabEvent) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Start: %v}", ev.Type(), ev.Delta, ev.Where, ev.Start)
}
