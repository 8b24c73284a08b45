// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bands

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/timeline/colors"
	"cogentcore.org/timeline/cursors"
	"cogentcore.org/timeline/events"
	"cogentcore.org/timeline/math32"
	"cogentcore.org/timeline/pick"
	"cogentcore.org/timeline/timeline"
)

// Item is an event shown on an [EventBand]. Items with Stop == Start
// are milestones, drawn as dots.
type Item struct {
	ID    string
	Label string

	// Start and Stop are in milliseconds since the Unix epoch.
	Start int64
	Stop  int64

	Color color.RGBA
}

// Milestone returns whether the item is a point in time.
func (it *Item) Milestone() bool {
	return it.Stop <= it.Start
}

// EventBand is a band of items, packed into rows so that
// overlapping items do not cover each other.
type EventBand struct {
	name  string
	items []Item
	rows  []int

	// RowHeight is the height of each row.
	RowHeight float32

	// Padding is the vertical space between rows.
	Padding float32

	// OnClick, if set, is called with a clicked item.
	OnClick func(it *Item)

	// hovered is the ID of the item under the pointer.
	hovered string
}

// NewEventBand returns a new [EventBand] with the given name and items.
func NewEventBand(name string, items ...Item) *EventBand {
	b := &EventBand{name: name, RowHeight: 16, Padding: 4}
	b.SetItems(items)
	return b
}

func (b *EventBand) Name() string { return b.name }
func (b *EventBand) Frozen() bool { return false }
func (b *EventBand) DrawUnderlay(dc *timeline.DrawContext) {}
func (b *EventBand) DrawOverlay(dc *timeline.DrawContext) {}

// Items returns the items of the band.
func (b *EventBand) Items() []Item {
	return b.items
}

// SetItems sets the items, assigning them to rows. Items without an ID
// are given one that no other item of the band has.
func (b *EventBand) SetItems(items []Item) {
	assignIDs(items)
	b.items = items
	for i := range b.items {
		if b.items[i].Color == (color.RGBA{}) {
			b.items[i].Color = colors.Spaced(i)
		}
	}
	b.rows = packRows(b.items)
}

// Row returns the row of the item with the given index.
func (b *EventBand) Row(i int) int {
	return b.rows[i]
}

// Rows returns the number of rows.
func (b *EventBand) Rows() int {
	if len(b.rows) == 0 {
		return 0
	}
	return slices.Max(b.rows) + 1
}

// Hovered returns the ID of the item under the pointer, if any.
func (b *EventBand) Hovered() string {
	return b.hovered
}

// assignIDs gives each item with an empty ID the ID "#<index>",
// suffixed as needed so that it differs from the ID of every other item.
func assignIDs(items []Item) {
	taken := map[string]bool{}
	for _, it := range items {
		if it.ID != "" {
			taken[it.ID] = true
		}
	}
	for i := range items {
		if items[i].ID != "" {
			continue
		}
		id := fmt.Sprintf("#%d", i)
		for n := 1; taken[id]; n++ {
			id = fmt.Sprintf("#%d-%d", i, n)
		}
		taken[id] = true
		items[i].ID = id
	}
}

// packRows assigns each item to the first row where it does not
// overlap the previous item, in order of start time.
func packRows(items []Item) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(items[a].Start, items[b].Start)
	})
	rows := make([]int, len(items))
	var ends []int64
	for _, i := range order {
		it := &items[i]
		stop := max(it.Stop, it.Start)
		row := slices.IndexFunc(ends, func(e int64) bool { return e < it.Start })
		if row < 0 {
			row = len(ends)
			ends = append(ends, stop)
		} else {
			ends[row] = stop
		}
		rows[i] = row
	}
	return rows
}

func (b *EventBand) ContentHeight(*pick.Surface) float32 {
	return float32(max(b.Rows(), 1))*(b.RowHeight+b.Padding) + b.Padding
}

func (b *EventBand) DrawContent(dc *timeline.DrawContext) {
	for i := range b.items {
		it := &b.items[i]
		if !dc.Visible(it.Start, it.Stop) {
			continue
		}
		y := dc.Box.Min.Y + b.Padding + float32(b.rows[i])*(b.RowHeight+b.Padding)
		c := it.Color
		if it.ID == b.hovered {
			c = colors.WithAlpha(c, 0.7)
		}
		reg := b.region(dc, it)
		x0 := dc.X(it.Start)
		if it.Milestone() {
			r := b.RowHeight / 2
			dc.Paint.DrawEllipse(x0, y+r, r, r)
			dc.Paint.Fill(c)
			dc.BeginRegion(reg).Ellipse(x0, y+r, r, r)
			continue
		}
		// items narrower than a pixel stay visible and clickable
		box := math32.B2(x0, y, max(dc.X(it.Stop), x0+1), y+b.RowHeight)
		dc.Paint.FillBox(box, c)
		dc.BeginRegion(reg).Box(box)
	}
}

// region returns the region of the item.
func (b *EventBand) region(dc *timeline.DrawContext, it *Item) *pick.Region {
	id := it.ID
	reg := &pick.Region{ID: dc.RegionFor(id), Cursor: cursors.Pointer}
	reg.MouseEnter = func(e *events.Mouse) {
		b.hovered = id
		dc.Timeline.RequestRepaint()
	}
	reg.MouseOut = func(e *events.Mouse) {
		if b.hovered == id {
			b.hovered = ""
			dc.Timeline.RequestRepaint()
		}
	}
	if b.OnClick != nil {
		reg.Click = func(e *events.Mouse) {
			b.OnClick(it)
		}
	}
	return reg
}
