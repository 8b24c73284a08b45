// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"fmt"
	"strings"
)

// States are the states of an [Interpreter].
type States int32

const (
	// Idle means that no button is held over a grabbable region.
	Idle States = iota

	// Armed means that the button went down over a grabbable region,
	// but the pointer has not yet moved beyond the snap threshold.
	Armed

	// Grabbing means that a grab is in progress.
	Grabbing
)

var stateNames = [...]string{"Idle", "Armed", "Grabbing"}

func (st States) String() string {
	if st < Idle || st > Grabbing {
		return fmt.Sprintf("States(%d)", int32(st))
	}
	return stateNames[st]
}

// Tool is the interaction mode of grabs on the background.
type Tool int32

const (
	// Pan drags the visible time range. The grab anchor is reset when
	// the snap threshold is crossed, so the content does not jump.
	Pan Tool = iota

	// RangeSelect selects a time range. The grab anchor stays at the
	// press point, so the selection starts where the button went down.
	RangeSelect
)

func (tl Tool) String() string {
	switch tl {
	case Pan:
		return "Pan"
	case RangeSelect:
		return "RangeSelect"
	}
	return fmt.Sprintf("Tool(%d)", int32(tl))
}

// SetString sets the tool from its name, case insensitively.
func (tl *Tool) SetString(s string) error {
	switch strings.ToLower(s) {
	case "pan":
		*tl = Pan
	case "rangeselect", "range-select", "select":
		*tl = RangeSelect
	default:
		return fmt.Errorf("gesture.Tool.SetString: unknown tool %q", s)
	}
	return nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tl *Tool) UnmarshalText(text []byte) error {
	return tl.SetString(string(text))
}
