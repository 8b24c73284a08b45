// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "time"

// Animation is a per-frame callback registered with [Scheduler.Animate].
type Animation struct {

	// Func is run on every frame tick. It receives the [Animation] object
	// so that it can reference things such as [Animation.Delta] and set
	// things such as [Animation.Done].
	Func func(a *Animation)

	// Delta is the amount of time that has passed since the
	// last animation frame, which is zero on the first frame.
	Delta time.Duration

	// Done can be set to true to permanently stop the animation; the
	// [Animation] is removed from the [Scheduler] after the current frame.
	Done bool

	last time.Time
}

// step runs the animation function for the given frame time.
func (a *Animation) step(now time.Time) {
	if !a.last.IsZero() {
		a.Delta = now.Sub(a.last)
	}
	a.last = now
	a.Func(a)
}

// Animate adds a new [Animation] with the given function, which is run on
// every frame tick until it sets [Animation.Done]. Every frame on which an
// animation runs is redrawn.
func (s *Scheduler) Animate(f func(a *Animation)) *Animation {
	a := &Animation{Func: f}
	s.animations = append(s.animations, a)
	return a
}
