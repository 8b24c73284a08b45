// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners are the functions called for each type of event, such as the
// range changes and selections of a timeline. The most recently added
// listener is called first, and any listener can stop the rest by
// marking the event as handled.
type Listeners map[Types][]func(e Event)

// Add adds a listener for the given type of event.
func (ls *Listeners) Add(typ Types, fn func(e Event)) {
	if *ls == nil {
		*ls = Listeners{}
	}
	(*ls)[typ] = append((*ls)[typ], fn)
}

// Has returns whether any listener is registered for the given type.
func (ls Listeners) Has(typ Types) bool {
	return len(ls[typ]) > 0
}

// Call calls the listeners for the type of the event, newest first,
// until the event is handled.
func (ls Listeners) Call(e Event) {
	fns := ls[e.Type()]
	for i := len(fns) - 1; i >= 0 && !e.IsHandled(); i-- {
		fns[i](e)
	}
}
