// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides numeric values that can transition smoothly
// to a new target over a fixed duration, advanced by frame ticks.
package anim

import (
	"fmt"
	"time"

	"cogentcore.org/timeline/math32"
)

// DefaultDuration is the duration of transitions used by constructors
// that are given a negative duration.
var DefaultDuration = 200 * time.Millisecond

// Value is a numeric value that can be animated. At most one transition
// is active at a time. While no transition is active, [Value.Current] is
// authoritative; otherwise it is derived from the source, the target and
// the eased progress since the start time on each [Value.Step].
//
// The zero value is a usable value of 0 whose transitions complete on
// the first step, with [Linear] easing.
type Value struct {

	// Duration is the length of a transition. Transitions with
	// a zero or negative duration complete on the first step.
	Duration time.Duration

	// Easing maps linear progress in [0, 1] to eased progress.
	// If it is nil, [Linear] is used.
	Easing Easing

	current   float64
	source    float64
	target    float64
	t0        time.Time
	animating bool
}

// NewValue returns a new [Value] set to v, with the given transition
// duration, or [DefaultDuration] if it is negative.
func NewValue(v float64, duration time.Duration) *Value {
	if duration < 0 {
		duration = DefaultDuration
	}
	return &Value{current: v, Duration: duration}
}

func (v *Value) String() string {
	if v.animating {
		return fmt.Sprintf("%g (%g -> %g)", v.current, v.source, v.target)
	}
	return fmt.Sprintf("%g", v.current)
}

// Current returns the current value.
func (v *Value) Current() float64 {
	return v.current
}

// Set sets the current value directly, aborting any active transition.
func (v *Value) Set(val float64) {
	v.Abort()
	v.current = val
}

// Target returns the value that the current transition is heading to,
// or the current value if there is no transition.
func (v *Value) Target() float64 {
	if v.animating {
		return v.target
	}
	return v.current
}

// Animating returns whether a transition is active.
func (v *Value) Animating() bool {
	return v.animating
}

// SetTransition starts a transition from the current value to the target,
// starting at t0. Any active transition is replaced, continuing from
// wherever it had reached.
func (v *Value) SetTransition(t0 time.Time, target float64) {
	v.source = v.current
	v.target = target
	v.t0 = t0
	v.animating = true
}

// Abort cancels any active transition without changing the current value.
func (v *Value) Abort() {
	v.animating = false
	v.source = 0
	v.target = 0
	v.t0 = time.Time{}
}

// Step advances the transition to the given time, returning whether the
// value changed. Once the full duration has elapsed, the value lands
// exactly on the target and the transition is cleared.
func (v *Value) Step(now time.Time) bool {
	if !v.animating {
		return false
	}
	dur := v.Duration
	elapsed := now.Sub(v.t0)
	if dur <= 0 || elapsed >= dur {
		v.current = v.target
		v.Abort()
		return true
	}
	p := math32.Clamp(float64(elapsed)/float64(dur), 0, 1)
	ease := v.Easing
	if ease == nil {
		ease = Linear
	}
	v.current = v.source + (v.target-v.source)*ease(p)
	return true
}
