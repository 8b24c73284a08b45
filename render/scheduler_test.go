// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"context"
	"image"
	"testing"
	"time"

	"cogentcore.org/timeline/anim"
	"cogentcore.org/timeline/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Unix(1000, 0)

func ms(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Millisecond)
}

type valueTicker struct{ anim.Value }

func newTest() (*Scheduler, *[]time.Time) {
	var redraws []time.Time
	s := New(func(now time.Time) { redraws = append(redraws, now) })
	return s, &redraws
}

func TestCleanDirty(t *testing.T) {
	s, redraws := newTest()
	assert.Equal(t, Dirty, s.State())
	assert.True(t, s.Tick(ms(0)))
	assert.Equal(t, Clean, s.State())
	assert.False(t, s.Tick(ms(16)))
	assert.Len(t, *redraws, 1)

	s.RequestRepaint()
	s.RequestRepaint()
	assert.Equal(t, Dirty, s.State())
	assert.True(t, s.Tick(ms(32)))
	assert.False(t, s.Tick(ms(48)))
	assert.Equal(t, []time.Time{ms(0), ms(32)}, *redraws)
	assert.Equal(t, Stats{Frames: 4, Redraws: 2}, s.Stats())
}

func TestTickables(t *testing.T) {
	s, redraws := newTest()
	s.Tick(ms(0))
	v := &valueTicker{}
	v.Duration = 200 * time.Millisecond
	s.Add(v)
	s.Add(v)
	assert.False(t, s.Tick(ms(10)))

	v.SetTransition(ms(10), 10)
	assert.True(t, s.Tick(ms(110)))
	assert.Equal(t, 5.0, v.Current())
	assert.True(t, s.Tick(ms(210)))
	assert.Equal(t, 10.0, v.Current())
	assert.False(t, s.Tick(ms(220)))
	assert.Len(t, *redraws, 3)

	s.Remove(v)
	v.SetTransition(ms(220), 0)
	assert.False(t, s.Tick(ms(300)))
}

func TestForcedRefresh(t *testing.T) {
	s, redraws := newTest()
	s.Tick(ms(0))
	assert.False(t, s.Tick(ms(500)))
	assert.False(t, s.Tick(ms(999)))
	assert.True(t, s.Tick(ms(1000)))
	assert.False(t, s.Tick(ms(1500)))

	// a regular redraw restarts the interval
	s.RequestRepaint()
	assert.True(t, s.Tick(ms(1600)))
	assert.False(t, s.Tick(ms(2000)))
	assert.True(t, s.Tick(ms(2600)))
	assert.Len(t, *redraws, 4)
	assert.Equal(t, 2, s.Stats().ForcedRefreshes)

	s.RefreshInterval = 0
	assert.False(t, s.Tick(ms(10000)))
}

func TestAnimate(t *testing.T) {
	s, redraws := newTest()
	s.Tick(ms(0))
	var deltas []time.Duration
	s.Animate(func(a *Animation) {
		deltas = append(deltas, a.Delta)
		if len(deltas) == 3 {
			a.Done = true
		}
	})
	assert.True(t, s.Tick(ms(16)))
	assert.True(t, s.Tick(ms(32)))
	assert.True(t, s.Tick(ms(50)))
	assert.False(t, s.Tick(ms(66)))
	assert.Equal(t, []time.Duration{0, 16 * time.Millisecond, 18 * time.Millisecond}, deltas)
	assert.Len(t, *redraws, 4)
}

func TestAnimationStoppedOutside(t *testing.T) {
	s, _ := newTest()
	s.Tick(ms(0))
	n := 0
	a := s.Animate(func(a *Animation) { n++ })
	s.Tick(ms(16))
	a.Done = true
	assert.False(t, s.Tick(ms(32)))
	assert.False(t, s.Tick(ms(48)))
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, s.Stats().Redraws)

	s.Animate(func(a *Animation) { n++ })
	b := s.Animate(func(a *Animation) { n++ })
	b.Done = true
	assert.True(t, s.Tick(ms(64)))
	assert.Equal(t, 2, n)
}

func TestFlush(t *testing.T) {
	s, _ := newTest()
	q := &events.Queue{}
	s.Events = q
	var got []events.Types
	s.HandleEvent = func(e events.Event) { got = append(got, e.Type()) }
	ran := false
	s.Post(func() { ran = true })
	q.Send(events.NewMouse(events.MouseDown, events.Left, image.Pt(1, 1), 0))
	q.Send(events.NewMouse(events.MouseUp, events.Left, image.Pt(1, 1), 0))
	s.Flush()
	assert.True(t, ran)
	assert.Equal(t, []events.Types{events.MouseDown, events.MouseUp}, got)
	assert.Equal(t, 2, s.Stats().Events)
}

func TestRun(t *testing.T) {
	var redraws []time.Time
	drawn := make(chan struct{}, 4)
	s := New(func(now time.Time) {
		redraws = append(redraws, now)
		drawn <- struct{}{}
	})
	frames := make(chan time.Time)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- s.Run(ctx, frames) }()

	frames <- ms(0)
	<-drawn
	posted := make(chan struct{})
	s.Post(func() {
		s.RequestRepaint()
		close(posted)
	})
	<-posted
	frames <- ms(16)
	<-drawn
	frames <- ms(32)
	cancel()
	err := <-done
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []time.Time{ms(0), ms(16)}, redraws)
	assert.Equal(t, 3, s.Stats().Frames)
}

func TestStatesString(t *testing.T) {
	assert.Equal(t, "Clean", Clean.String())
	assert.Equal(t, "Dirty", Dirty.String())
}
