// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestLinearTransition(t *testing.T) {
	v := NewValue(0, 200*time.Millisecond)
	v.SetTransition(t0, 10)
	assert.True(t, v.Animating())
	assert.Equal(t, 10.0, v.Target())

	assert.True(t, v.Step(t0.Add(100*time.Millisecond)))
	assert.InDelta(t, 5, v.Current(), 1e-9)
	assert.True(t, v.Animating())

	assert.True(t, v.Step(t0.Add(200*time.Millisecond)))
	assert.Equal(t, 10.0, v.Current())
	assert.False(t, v.Animating())

	assert.False(t, v.Step(t0.Add(300*time.Millisecond)))
	assert.Equal(t, 10.0, v.Current())
}

func TestStepBeforeStart(t *testing.T) {
	v := NewValue(2, 100*time.Millisecond)
	v.SetTransition(t0, 4)
	assert.True(t, v.Step(t0.Add(-time.Second)))
	assert.Equal(t, 2.0, v.Current())
}

func TestSetAbortsTransition(t *testing.T) {
	v := NewValue(0, 200*time.Millisecond)
	v.SetTransition(t0, 10)
	v.Step(t0.Add(50 * time.Millisecond))
	v.Set(7)
	assert.False(t, v.Animating())
	assert.False(t, v.Step(t0.Add(100*time.Millisecond)))
	assert.Equal(t, 7.0, v.Current())
	assert.Equal(t, 7.0, v.Target())
}

func TestAbortKeepsCurrent(t *testing.T) {
	v := NewValue(0, 200*time.Millisecond)
	v.SetTransition(t0, 10)
	v.Step(t0.Add(100 * time.Millisecond))
	v.Abort()
	assert.InDelta(t, 5, v.Current(), 1e-9)
	assert.False(t, v.Step(t0.Add(time.Second)))
}

func TestReplaceTransition(t *testing.T) {
	v := NewValue(0, 200*time.Millisecond)
	v.SetTransition(t0, 10)
	v.Step(t0.Add(100 * time.Millisecond))
	t1 := t0.Add(100 * time.Millisecond)
	v.SetTransition(t1, 0)
	v.Step(t1.Add(100 * time.Millisecond))
	assert.InDelta(t, 2.5, v.Current(), 1e-9)
	v.Step(t1.Add(200 * time.Millisecond))
	assert.Equal(t, 0.0, v.Current())
}

func TestZeroDurationCompletesOnFirstStep(t *testing.T) {
	var v Value
	v.SetTransition(t0, 1)
	assert.True(t, v.Step(t0))
	assert.Equal(t, 1.0, v.Current())
	assert.False(t, v.Animating())

	w := NewValue(0, 0)
	w.SetTransition(t0, 10)
	assert.True(t, w.Step(t0))
	assert.Equal(t, 10.0, w.Current())
	assert.False(t, w.Animating())
	assert.False(t, w.Step(t0.Add(time.Millisecond)))
}

func TestNegativeDurationDefault(t *testing.T) {
	v := NewValue(0, -1)
	assert.Equal(t, DefaultDuration, v.Duration)
	v.SetTransition(t0, 1)
	v.Step(t0.Add(DefaultDuration / 2))
	assert.InDelta(t, 0.5, v.Current(), 1e-9)
	v.Step(t0.Add(DefaultDuration))
	assert.Equal(t, 1.0, v.Current())
}

func TestEasing(t *testing.T) {
	for _, e := range []Easing{Linear, EaseOutQuad, EaseInOutCubic} {
		assert.Equal(t, 0.0, e(0))
		assert.InDelta(t, 1.0, e(1), 1e-12)
	}
	v := NewValue(0, 100*time.Millisecond)
	v.Easing = EaseOutQuad
	v.SetTransition(t0, 1)
	v.Step(t0.Add(50 * time.Millisecond))
	assert.InDelta(t, 0.75, v.Current(), 1e-9)
}
