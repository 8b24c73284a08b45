// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors defines the pointer cursors that a timeline surface
// asks its host to display.
package cursors

// Cursor is a cursor that can be used to indicate to the user
// what will happen when they interact with the area under the pointer.
type Cursor int32

const (
	// None indicates no preference for a cursor; the default will be used.
	None Cursor = iota

	// Arrow is a standard arrow cursor, which is the default.
	Arrow

	// Pointer is a pointing hand, indicating a link or clickable item.
	Pointer

	// Grab indicates that something can be grabbed and dragged.
	Grab

	// Grabbing indicates that something is being dragged.
	Grabbing

	// ResizeCol indicates that a column divider can be resized horizontally.
	ResizeCol

	// ResizeRow indicates that a row divider can be resized vertically.
	ResizeRow

	// Crosshair indicates a precise selection, such as a time range.
	Crosshair

	// NotAllowed indicates that an action is not allowed.
	NotAllowed

	cursorN
)

var cursorNames = [...]string{"none", "default", "pointer", "grab", "grabbing", "col-resize", "row-resize", "crosshair", "not-allowed"}

// String returns the CSS name of the cursor.
func (c Cursor) String() string {
	if c < 0 || c >= cursorN {
		return "none"
	}
	return cursorNames[c]
}

// Or returns c unless it is [None], in which case it returns def.
func (c Cursor) Or(def Cursor) Cursor {
	if c == None {
		return def
	}
	return c
}

// Values returns all defined cursors.
func Values() []Cursor {
	cs := make([]Cursor, cursorN)
	for i := range cs {
		cs[i] = Cursor(i)
	}
	return cs
}
