// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"cogentcore.org/timeline/math32"
	"github.com/stretchr/testify/assert"
)

func TestQueueOrder(t *testing.T) {
	var q Queue
	assert.Nil(t, q.NextEvent())
	q.Send(NewMouse(MouseDown, Left, image.Pt(1, 1), 0))
	q.Send(NewMouse(MouseUp, Left, image.Pt(1, 1), 0))
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, MouseDown, q.NextEvent().Type())
	assert.Equal(t, MouseUp, q.NextEvent().Type())
	assert.Nil(t, q.NextEvent())
}

func TestQueueCompression(t *testing.T) {
	var q Queue
	q.Send(NewMouseMove(false, image.Pt(1, 1), 0))
	q.Send(NewMouseMove(false, image.Pt(2, 1), 0))
	q.Send(NewMouseMove(true, image.Pt(3, 1), 0))
	q.Send(NewScroll(image.Pt(3, 1), math32.Vec2(0, 10), 0))
	q.Send(NewScroll(image.Pt(3, 1), math32.Vec2(0, 5), 0))
	assert.Equal(t, 3, q.Len())

	ev := q.NextEvent()
	assert.Equal(t, image.Pt(2, 1), ev.Pos())
	ev = q.NextEvent()
	assert.True(t, ev.(*Mouse).Held)
	ev = q.NextEvent()
	assert.Equal(t, math32.Vec2(0, 15), ev.(*MouseScroll).Delta)
}

func TestQueueWake(t *testing.T) {
	var q Queue
	w := q.Wake()
	q.Send(NewMouse(MouseDown, Left, image.Point{}, 0))
	q.Send(NewMouse(MouseUp, Left, image.Point{}, 0))
	select {
	case <-w:
	default:
		t.Fatal("expected wake signal")
	}
}
