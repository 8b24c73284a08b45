// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render decides when a timeline is redrawn. A [Scheduler] is
// driven by frame ticks: on each tick it advances every registered
// [Tickable] and [Animation], and performs one redraw if anything became
// dirty since the last one. A periodic forced refresh bounds the
// staleness of content that changes on its own, such as a "now" marker.
//
// All state mutation happens on the goroutine that calls [Scheduler.Tick]
// (usually from [Scheduler.Run]); other goroutines hand work to it with
// [Scheduler.Post] or through [Scheduler.Events].
package render

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"cogentcore.org/timeline/events"
)

// States are the states of a [Scheduler].
type States int32

const (
	// Clean means that the last redraw is up to date.
	Clean States = iota

	// Dirty means that a redraw is needed on the next tick.
	Dirty
)

func (st States) String() string {
	if st == Dirty {
		return "Dirty"
	}
	return "Clean"
}

// Tickable is a component with animated state that is advanced on
// every frame tick, such as a viewport.
type Tickable interface {

	// Step advances the state to the given time,
	// returning whether anything changed.
	Step(now time.Time) bool
}

// Stats are counters of the work done by a [Scheduler].
type Stats struct {
	Frames          int
	Redraws         int
	ForcedRefreshes int
	Events          int
}

func (st Stats) String() string {
	return fmt.Sprintf("frames: %d, redraws: %d, forced: %d, events: %d", st.Frames, st.Redraws, st.ForcedRefreshes, st.Events)
}

// Scheduler is the clean/dirty state machine that drives redraws.
type Scheduler struct {

	// Redraw performs one full redraw pass.
	Redraw func(now time.Time)

	// RefreshInterval is the maximum time between redraws;
	// a redraw is forced once it has elapsed. Zero disables forced refreshes.
	RefreshInterval time.Duration

	// FrameRate is the number of frames per second used by [Scheduler.Run]
	// when it is not given a frame signal.
	FrameRate int

	// Events, if set, is drained by [Scheduler.Run] before each tick,
	// passing every event to HandleEvent.
	Events *events.Queue

	// HandleEvent handles events from [Scheduler.Events].
	HandleEvent func(e events.Event)

	state       States
	tickables   []Tickable
	animations  []*Animation
	lastRefresh time.Time
	stats       Stats

	mu     sync.Mutex
	posted []func()
	wake   chan struct{}
}

// New returns a new [Scheduler] that calls redraw to redraw, starting dirty.
func New(redraw func(now time.Time)) *Scheduler {
	return &Scheduler{
		Redraw:          redraw,
		RefreshInterval: time.Second,
		FrameRate:       60,
		state:           Dirty,
		wake:            make(chan struct{}, 1),
	}
}

// State returns the current state.
func (s *Scheduler) State() States {
	return s.state
}

// Stats returns the counters of the work done so far.
func (s *Scheduler) Stats() Stats {
	return s.stats
}

// RequestRepaint marks the scheduler dirty, so that
// the next tick redraws.
func (s *Scheduler) RequestRepaint() {
	s.state = Dirty
}

// Add registers a tickable to be advanced on every tick.
func (s *Scheduler) Add(t Tickable) {
	if slices.Contains(s.tickables, t) {
		return
	}
	s.tickables = append(s.tickables, t)
}

// Remove unregisters a tickable.
func (s *Scheduler) Remove(t Tickable) {
	s.tickables = slices.DeleteFunc(s.tickables, func(o Tickable) bool { return o == t })
}

// Tick performs one frame at the given time: it advances every tickable
// and animation, forces the dirty state if the refresh interval has
// elapsed, and redraws once if dirty. It returns whether it redrew.
func (s *Scheduler) Tick(now time.Time) bool {
	s.stats.Frames++
	for _, t := range s.tickables {
		if t.Step(now) {
			s.state = Dirty
		}
	}
	// animations stopped from outside are dropped without a redraw
	for _, a := range s.animations {
		if !a.Done {
			a.step(now)
			s.state = Dirty
		}
	}
	s.animations = slices.DeleteFunc(s.animations, func(a *Animation) bool { return a.Done })
	if s.lastRefresh.IsZero() {
		s.lastRefresh = now
	}
	if s.RefreshInterval > 0 && now.Sub(s.lastRefresh) >= s.RefreshInterval {
		if s.state == Clean {
			s.stats.ForcedRefreshes++
		}
		s.state = Dirty
	}
	if s.state == Clean {
		return false
	}
	if s.Redraw != nil {
		s.Redraw(now)
	}
	s.stats.Redraws++
	s.lastRefresh = now
	s.state = Clean
	return true
}

// Post queues a function to run on the goroutine running [Scheduler.Run],
// before the next tick. It is safe to call from any goroutine.
func (s *Scheduler) Post(f func()) {
	s.mu.Lock()
	s.posted = append(s.posted, f)
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Flush runs all posted functions and handles all queued events.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	posted := s.posted
	s.posted = nil
	s.mu.Unlock()
	for _, f := range posted {
		f()
	}
	if s.Events == nil {
		return
	}
	for e := s.Events.NextEvent(); e != nil; e = s.Events.NextEvent() {
		s.stats.Events++
		if s.HandleEvent != nil {
			s.HandleEvent(e)
		}
	}
}

// Run runs the cooperative loop until the context is done, returning
// the context error. It ticks on every value received from frames, or at
// [Scheduler.FrameRate] if frames is nil. Posted functions and queued
// events are handled as soon as they arrive and before every tick, so
// that input is never processed concurrently with a redraw.
func (s *Scheduler) Run(ctx context.Context, frames <-chan time.Time) error {
	if frames == nil {
		ticker := time.NewTicker(time.Second / time.Duration(max(s.FrameRate, 1)))
		defer ticker.Stop()
		frames = ticker.C
	}
	var evwake <-chan struct{}
	if s.Events != nil {
		evwake = s.Events.Wake()
	}
	slog.Debug("render: run", "frameRate", s.FrameRate, "refresh", s.RefreshInterval)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("render: stop", "stats", s.stats)
			return ctx.Err()
		case <-s.wake:
			s.Flush()
		case <-evwake:
			s.Flush()
		case now := <-frames:
			s.Flush()
			s.Tick(now)
		}
	}
}
