// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"fmt"
	"time"
)

// TimeRange is a half-open interval of time, in milliseconds since the
// Unix epoch. A valid range has Stop > Start.
type TimeRange struct {
	Start int64
	Stop  int64
}

// RangeOf returns the [TimeRange] between the two times.
func RangeOf(start, stop time.Time) TimeRange {
	return TimeRange{start.UnixMilli(), stop.UnixMilli()}
}

// Validate returns [ErrInvalidRange] unless Stop > Start.
func (r TimeRange) Validate() error {
	if r.Stop <= r.Start {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, r.Start, r.Stop)
	}
	return nil
}

// Span returns the length of the range in milliseconds.
func (r TimeRange) Span() int64 {
	return r.Stop - r.Start
}

// Center returns the midpoint of the range.
func (r TimeRange) Center() int64 {
	return r.Start + r.Span()/2
}

// Contains returns whether t is within the range.
func (r TimeRange) Contains(t int64) bool {
	return t >= r.Start && t < r.Stop
}

// Overlaps returns whether the range overlaps [start, stop).
func (r TimeRange) Overlaps(start, stop int64) bool {
	return start < r.Stop && stop > r.Start
}

func (r TimeRange) String() string {
	const layout = "2006-01-02T15:04:05.000Z"
	return fmt.Sprintf("[%s, %s)", time.UnixMilli(r.Start).UTC().Format(layout), time.UnixMilli(r.Stop).UTC().Format(layout))
}
