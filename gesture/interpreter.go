// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gesture turns raw pointer input into clicks, grabs, hovers and
// wheel events dispatched to the regions of a picking tree.
package gesture

import (
	"image"
	"log/slog"

	"cogentcore.org/timeline/cursors"
	"cogentcore.org/timeline/events"
	"cogentcore.org/timeline/math32"
	"cogentcore.org/timeline/pick"
)

// DefaultSnapThreshold is the default distance in pixels that the pointer
// has to move with the button held before a grab starts.
const DefaultSnapThreshold = 5

// Picker resolves surface coordinates to regions. It is implemented by [pick.Tree].
type Picker interface {
	ActiveRegion(x, y int, required ...pick.HandlerKinds) *pick.Region
	ActiveRegions(x, y int) []*pick.Region
	Region(id string) *pick.Region
}

// Interpreter is the pointer gesture state machine. All of its methods
// take coordinates of the root picking surface and must be called from
// the goroutine that redraws, between redraws.
type Interpreter struct {

	// Picker resolves coordinates to regions.
	Picker Picker

	// SnapThreshold is the distance in pixels that the pointer has to
	// move with the button held, from where it went down, before a grab starts.
	SnapThreshold float32

	// Tool determines whether the grab anchor is reset when a grab starts.
	Tool Tool

	// NativeClicks is whether the host delivers its own click events
	// through [Interpreter.Click]. Otherwise clicks are synthesized
	// on mouse up.
	NativeClicks bool

	// DefaultCursor is shown when the hovered regions do not specify one.
	DefaultCursor cursors.Cursor

	// SetCursor, if set, is called whenever the cursor to show changes.
	SetCursor func(c cursors.Cursor)

	state States

	// target is the region being grabbed, when armed or grabbing.
	target *pick.Region

	// anchor is the point that grab deltas are relative to.
	anchor image.Point

	// start is where the button went down.
	start image.Point

	// preCursor is the cursor before the grab started.
	preCursor cursors.Cursor
	cursor    cursors.Cursor

	hover *pick.Region

	// pressed is whether the button went down on the surface
	// and has not been released yet.
	pressed bool

	// grabbed is whether a grab has started since the last mouse down.
	grabbed bool

	// suppress swallows the next native click after a grab.
	suppress bool
}

// New returns a new [Interpreter] resolving regions with the given picker.
func New(p Picker) *Interpreter {
	return &Interpreter{Picker: p, SnapThreshold: DefaultSnapThreshold, DefaultCursor: cursors.Arrow}
}

// State returns the current state.
func (in *Interpreter) State() States {
	return in.state
}

// Target returns the region being grabbed, or nil.
func (in *Interpreter) Target() *pick.Region {
	return in.target
}

// Hover returns the region last hovered over, or nil.
func (in *Interpreter) Hover() *pick.Region {
	return in.hover
}

// Cursor returns the cursor that should currently be shown.
func (in *Interpreter) Cursor() cursors.Cursor {
	return in.cursor.Or(in.DefaultCursor)
}

// Suppressing returns whether the next native click will be swallowed.
func (in *Interpreter) Suppressing() bool {
	return in.suppress
}

func (in *Interpreter) setState(st States) {
	if st == in.state {
		return
	}
	slog.Debug("gesture: state", "from", in.state, "to", st, "target", in.target)
	in.state = st
}

func (in *Interpreter) setCursor(c cursors.Cursor) {
	c = c.Or(in.DefaultCursor)
	if c == in.cursor {
		return
	}
	in.cursor = c
	if in.SetCursor != nil {
		in.SetCursor(c)
	}
}

// MouseDown handles the primary button going down, returning whether
// a region handled it. Over a grabbable region the interpreter is armed;
// over a divider the grab starts immediately.
func (in *Interpreter) MouseDown(e *events.Mouse) bool {
	if e.Button != events.Left {
		return false
	}
	in.suppress = false
	in.grabbed = false
	in.pressed = true
	in.start = e.Where
	if in.state != Idle {
		in.Cancel()
	}
	pos := e.Where
	r := in.Picker.ActiveRegion(pos.X, pos.Y, pick.GrabHandler)
	if r == nil {
		if md := in.Picker.ActiveRegion(pos.X, pos.Y, pick.MouseDownHandler); md != nil {
			md.MouseDown(e.Derive(events.MouseDown))
			return true
		}
		return false
	}
	in.target = r
	in.anchor = pos
	in.preCursor = in.cursor
	in.setState(Armed)
	if r.Divider {
		in.beginGrab(e)
	}
	return true
}

// beginGrab starts a grab on the armed target.
func (in *Interpreter) beginGrab(e *events.Mouse) {
	in.grabbed = true
	in.setState(Grabbing)
	if in.target.MouseDown != nil {
		de := e.Derive(events.MouseDown)
		de.Where = in.start
		in.target.MouseDown(de)
	}
	c := in.target.Cursor
	if c == cursors.None || c == cursors.Grab {
		c = cursors.Grabbing
	}
	in.setCursor(c)
}

// MouseMove handles pointer movement, returning whether a region handled it.
// While armed it starts a grab once the snap threshold is exceeded; while
// grabbing it sends the movement to the grab target; otherwise it updates
// the hovered region.
func (in *Interpreter) MouseMove(e *events.Mouse) bool {
	pos := e.Where
	if in.state != Idle && !e.Held {
		// the button was released where we could not see it
		in.endGrab(e, false)
	}
	switch in.state {
	case Armed:
		dist := math32.FromPoint(pos).DistanceTo(math32.FromPoint(in.anchor))
		if dist <= in.SnapThreshold {
			return true
		}
		in.beginGrab(e)
		if in.Tool != RangeSelect {
			in.anchor = pos
		}
		in.grab(e)
		return true
	case Grabbing:
		in.grab(e)
		return true
	}
	return in.updateHover(e)
}

// grab sends a [events.Grab] to the target with the movement
// since the anchor, and moves the anchor to the pointer.
func (in *Interpreter) grab(e *events.Mouse) {
	ge := events.NewGrab(events.Grab, e.Where, e.Where.Sub(in.anchor), in.start, e.Mods)
	in.anchor = e.Where
	if in.target.Grab != nil {
		in.target.Grab(ge)
	}
}

// endGrab leaves the armed or grabbing state. If a grab was in
// progress, the target gets a [events.GrabEnd], the cursor is restored,
// and the next native click is suppressed.
func (in *Interpreter) endGrab(e *events.Mouse, up bool) {
	t := in.target
	wasGrabbing := in.state == Grabbing
	in.target = nil
	in.setState(Idle)
	if !wasGrabbing {
		return
	}
	in.suppress = true
	if t.GrabEnd != nil {
		t.GrabEnd(events.NewGrab(events.GrabEnd, e.Where, e.Where.Sub(in.anchor), in.start, e.Mods))
	}
	if up && t.MouseUp != nil {
		t.MouseUp(e.Derive(events.MouseUp))
	}
	in.setCursor(in.preCursor)
}

// MouseUp handles the primary button going up, returning whether a
// region handled it. It ends any grab. Unless the host delivers native
// clicks, it also sends a click to the region under the pointer if the
// button went down on the surface and no grab happened in between.
func (in *Interpreter) MouseUp(e *events.Mouse) bool {
	if e.Button != events.Left {
		return false
	}
	pressed := in.pressed
	in.pressed = false
	if in.state == Grabbing {
		in.endGrab(e, true)
		return true
	}
	in.endGrab(e, true)
	handled := false
	pos := e.Where
	if r := in.Picker.ActiveRegion(pos.X, pos.Y, pick.MouseUpHandler); r != nil {
		r.MouseUp(e.Derive(events.MouseUp))
		handled = true
	}
	if !in.NativeClicks && pressed && !in.grabbed {
		if in.click(e) {
			handled = true
		}
	}
	return handled
}

// Click handles a native click from the host, returning whether it was
// handled or swallowed. It does nothing unless [Interpreter.NativeClicks]
// is set. The first click after a grab is swallowed.
func (in *Interpreter) Click(e *events.Mouse) bool {
	if !in.NativeClicks {
		return false
	}
	if in.suppress {
		in.suppress = false
		slog.Debug("gesture: click suppressed after grab", "pos", e.Where)
		return true
	}
	if in.grabbed {
		return false
	}
	return in.click(e)
}

// click sends a click to the region with a click handler at the pointer.
func (in *Interpreter) click(e *events.Mouse) bool {
	pos := e.Where
	r := in.Picker.ActiveRegion(pos.X, pos.Y, pick.ClickHandler)
	if r == nil {
		return false
	}
	r.Click(e.Derive(events.Click))
	return true
}

// MouseLeave handles the pointer leaving the surface. It ends any grab
// as [Interpreter.MouseUp] would, without a click, and ends the hover.
func (in *Interpreter) MouseLeave(e *events.Mouse) bool {
	handled := in.state == Grabbing
	in.endGrab(e, false)
	in.pressed = false
	if in.hover != nil {
		if in.hover.MouseOut != nil {
			in.hover.MouseOut(e.Derive(events.MouseOut))
			handled = true
		}
		in.hover = nil
	}
	in.setCursor(cursors.None)
	return handled
}

// Scroll sends a wheel event to the region with a wheel handler at the
// pointer, returning whether there was one.
func (in *Interpreter) Scroll(e *events.MouseScroll) bool {
	pos := e.Where
	r := in.Picker.ActiveRegion(pos.X, pos.Y, pick.WheelHandler)
	if r == nil {
		return false
	}
	r.Wheel(e)
	return true
}

// updateHover resolves the region under the pointer, sending MouseOut to
// the previous one and MouseEnter to the new one when their IDs differ,
// then MouseMove to the new one.
func (in *Interpreter) updateHover(e *events.Mouse) bool {
	pos := e.Where
	chain := in.Picker.ActiveRegions(pos.X, pos.Y)
	var r *pick.Region
	cur := cursors.None
	if len(chain) > 0 {
		r = chain[0]
		for _, c := range chain {
			if c.Cursor != cursors.None {
				cur = c.Cursor
				break
			}
		}
	}
	in.setCursor(cur)

	prev := in.hover
	in.hover = r
	changed := regionID(prev) != regionID(r)
	handled := false
	if changed && prev != nil && prev.MouseOut != nil {
		prev.MouseOut(e.Derive(events.MouseOut))
	}
	if r == nil {
		return false
	}
	if changed && r.MouseEnter != nil {
		r.MouseEnter(e.Derive(events.MouseEnter))
		handled = true
	}
	if r.MouseMove != nil {
		r.MouseMove(e.Derive(events.MouseMove))
		handled = true
	}
	return handled
}

func regionID(r *pick.Region) string {
	if r == nil {
		return ""
	}
	return r.ID
}

// Cancel drops any grab without sending [events.GrabEnd],
// for when the grab target has gone away.
func (in *Interpreter) Cancel() {
	if in.state == Idle {
		return
	}
	wasGrabbing := in.state == Grabbing
	in.target = nil
	in.setState(Idle)
	if wasGrabbing {
		in.setCursor(in.preCursor)
	}
}

// Refresh rebinds the grab target and the hovered region to the regions
// with the same IDs registered by the latest redraw. A grab whose target
// is no longer registered is canceled.
func (in *Interpreter) Refresh() {
	if in.target != nil {
		if t := in.Picker.Region(in.target.ID); t != nil {
			in.target = t
		} else {
			slog.Debug("gesture: grab target gone", "target", in.target.ID)
			in.Cancel()
		}
	}
	if in.hover != nil {
		if h := in.Picker.Region(in.hover.ID); h != nil {
			in.hover = h
		}
	}
}
