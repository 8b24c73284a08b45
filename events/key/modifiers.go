// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the keyboard modifier state carried by pointer events.
package key

import "strings"

// Modifiers are used as bitflags representing a set of modifier keys.
type Modifiers int64

const (
	// Control is the "Control" (Ctrl) key.
	Control Modifiers = 1 << iota

	// Meta is the system meta key (the "Command" key on macOS
	// and the Windows key on Windows).
	Meta

	// Alt is the "Alt" ("Option" on macOS) key.
	Alt

	// Shift is the "Shift" key.
	Shift
)

var modifierNames = []string{"Control", "Meta", "Alt", "Shift"}

// HasAnyModifier tests whether any of the given modifier flags are set
func HasAnyModifier(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if flags&m != 0 {
			return true
		}
	}
	return false
}

// ModifiersString returns the string representation of the modifiers using
// plus symbols as separators.
func (mo Modifiers) ModifiersString() string {
	var sb strings.Builder
	for i, nm := range modifierNames {
		if mo&(1<<i) != 0 {
			sb.WriteString(nm)
			sb.WriteString("+")
		}
	}
	return sb.String()
}
