// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script replays recorded input on a timeline, for demos
// and for reproducing interaction bugs without a host window.
package script

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"
	"time"

	"cogentcore.org/timeline/base/iox/yamlx"
	"cogentcore.org/timeline/events"
	"cogentcore.org/timeline/events/key"
	"cogentcore.org/timeline/gesture"
	"cogentcore.org/timeline/math32"
	"cogentcore.org/timeline/timeline"
)

// Script is a sequence of input steps.
type Script struct {

	// Steps are performed in order. Their times must not decrease.
	Steps []Step `yaml:"steps"`
}

// Step is one input event, or one action, at a time relative to
// the start of the script.
type Step struct {

	// At is the time of the step since the start of the script.
	At time.Duration `yaml:"at"`

	// Event is the kind of step: down, up, move, drag, click, leave and
	// scroll are pointer events, while tool, zoom-in, zoom-out,
	// toggle-sidebar and scroll-to (animated, to Y) are actions on
	// the timeline.
	Event string `yaml:"event"`

	X int `yaml:"x"`
	Y int `yaml:"y"`

	// DX and DY are the scroll deltas.
	DX float32 `yaml:"dx"`
	DY float32 `yaml:"dy"`

	Shift bool `yaml:"shift"`

	// Tool is the tool set by a tool step.
	Tool gesture.Tool `yaml:"tool"`
}

// Open reads a [Script] from the given YAML file.
func Open(filename string) (*Script, error) {
	sc := &Script{}
	if err := yamlx.Open(sc, filename); err != nil {
		return nil, err
	}
	return sc, sc.Validate()
}

// Read reads a [Script] in YAML format from the given reader.
func Read(r io.Reader) (*Script, error) {
	sc := &Script{}
	if err := yamlx.Read(sc, r); err != nil {
		return nil, err
	}
	return sc, sc.Validate()
}

// Validate checks the step kinds and their order in time.
func (sc *Script) Validate() error {
	var last time.Duration
	for i, st := range sc.Steps {
		if _, err := st.event(); err != nil {
			return fmt.Errorf("script: step %d: %w", i, err)
		}
		if st.At < last {
			return fmt.Errorf("script: step %d: time %v is before %v", i, st.At, last)
		}
		last = st.At
	}
	return nil
}

// Duration returns the time of the last step.
func (sc *Script) Duration() time.Duration {
	if len(sc.Steps) == 0 {
		return 0
	}
	return sc.Steps[len(sc.Steps)-1].At
}

// event returns the pointer event of the step, or nil for actions.
func (st *Step) event() (events.Event, error) {
	var mods key.Modifiers
	if st.Shift {
		mods = key.Shift
	}
	where := image.Pt(st.X, st.Y)
	switch strings.ToLower(st.Event) {
	case "down":
		return events.NewMouse(events.MouseDown, events.Left, where, mods), nil
	case "up":
		return events.NewMouse(events.MouseUp, events.Left, where, mods), nil
	case "click":
		return events.NewMouse(events.Click, events.Left, where, mods), nil
	case "leave":
		return events.NewMouse(events.MouseLeave, events.NoButton, where, mods), nil
	case "move":
		return events.NewMouseMove(false, where, mods), nil
	case "drag":
		return events.NewMouseMove(true, where, mods), nil
	case "scroll":
		return events.NewScroll(where, math32.Vec2(st.DX, st.DY), mods), nil
	case "tool", "zoom-in", "zoom-out", "toggle-sidebar", "scroll-to":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown event %q", st.Event)
}

// Play performs the steps on the timeline, with the timeline clock
// following the step times from start, ticking the timeline after each
// step. It then keeps ticking at the given frame interval until settle
// has passed after the last step, so that animations finish. It
// returns the time of the last tick.
func (sc *Script) Play(tl *timeline.Timeline, start time.Time, frame, settle time.Duration) (time.Time, error) {
	now := start
	tl.Clock = func() time.Time { return now }
	tl.Tick(now)
	for i := range sc.Steps {
		st := &sc.Steps[i]
		for t := now.Add(frame); frame > 0 && t.Before(start.Add(st.At)); t = t.Add(frame) {
			now = t
			tl.Tick(now)
		}
		now = start.Add(st.At)
		if err := st.perform(tl); err != nil {
			return now, fmt.Errorf("script: step %d: %w", i, err)
		}
		tl.Tick(now)
	}
	end := now.Add(settle)
	for frame > 0 && now.Before(end) {
		now = now.Add(frame)
		tl.Tick(now)
	}
	return now, nil
}

func (st *Step) perform(tl *timeline.Timeline) error {
	e, err := st.event()
	if err != nil {
		return err
	}
	if e != nil {
		handled := tl.HandleEvent(e)
		slog.Debug("script: event", "event", st.Event, "x", st.X, "y", st.Y, "handled", handled)
		return nil
	}
	slog.Debug("script: action", "action", st.Event)
	switch strings.ToLower(st.Event) {
	case "tool":
		tl.SetTool(st.Tool)
	case "zoom-in":
		return tl.ZoomIn()
	case "zoom-out":
		return tl.ZoomOut()
	case "toggle-sidebar":
		tl.ToggleSidebar()
	case "scroll-to":
		tl.ScrollTo(float32(st.Y), true)
	}
	return nil
}
