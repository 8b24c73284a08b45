// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"log/slog"
	"sync"
)

// TraceEventCompression can be set to true to see when events
// are being compressed to eliminate laggy behavior.
var TraceEventCompression = false

// Queue is a FIFO event queue that hosts on any goroutine can send to,
// and that the timeline loop drains between frames. The zero value
// is ready to use.
//
// Consecutive [MouseMove] events with the same button state are compressed
// into the latest one, and consecutive [Scroll] events at the same position
// have their deltas summed, so that a slow frame does not leave a backlog of
// stale pointer positions.
type Queue struct {
	mu     sync.Mutex
	events []Event
	wake   chan struct{}
}

// Send adds an event to the end of the queue, compressing it
// into the last queued event where possible.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	if n := len(q.events); n > 0 && compress(q.events[n-1], ev) {
		q.events[n-1] = ev
		if TraceEventCompression {
			slog.Debug("events: compressed", "event", ev.String())
		}
	} else {
		q.events = append(q.events, ev)
	}
	wake := q.wakeLocked()
	q.mu.Unlock()
	select {
	case wake <- struct{}{}:
	default:
	}
}

// compress returns whether ev can replace last, updating ev in place
// with any accumulated state from last.
func compress(last, ev Event) bool {
	switch ne := ev.(type) {
	case *Mouse:
		le, ok := last.(*Mouse)
		return ok && ne.Typ == MouseMove && le.Typ == MouseMove && le.Held == ne.Held && le.Mods == ne.Mods
	case *MouseScroll:
		le, ok := last.(*MouseScroll)
		if !ok || le.Where != ne.Where || le.Mods != ne.Mods {
			return false
		}
		ne.Delta = ne.Delta.Add(le.Delta)
		return true
	}
	return false
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev
}

// Len returns the length of the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Wake returns a channel that receives a value whenever an event is sent,
// for use in a select loop. Sends never block, so several events may be
// signaled by a single receive.
func (q *Queue) Wake() <-chan struct{} {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.wakeLocked()
}

func (q *Queue) wakeLocked() chan struct{} {
	if q.wake == nil {
		q.wake = make(chan struct{}, 1)
	}
	return q.wake
}
