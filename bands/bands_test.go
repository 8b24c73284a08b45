// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bands

import (
	"image"
	"strings"
	"testing"
	"time"

	"cogentcore.org/timeline/colors"
	"cogentcore.org/timeline/config"
	"cogentcore.org/timeline/cursors"
	"cogentcore.org/timeline/events"
	"cogentcore.org/timeline/timeline"
	"cogentcore.org/timeline/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

const hour = int64(time.Hour / time.Millisecond)

var t0 = time.Unix(5000, 0)

func newTimeline(t *testing.T) *timeline.Timeline {
	cfg := config.Default()
	cfg.SidebarWidth = 0
	tl := timeline.New(cfg, 1000, 150)
	tl.Clock = func() time.Time { return t0 }
	require.NoError(t, tl.SetBounds(0, 24*hour, false))
	return tl
}

func click(tl *timeline.Timeline, x, y int) {
	tl.HandleEvent(events.NewMouse(events.MouseDown, events.Left, image.Pt(x, y), 0))
	tl.HandleEvent(events.NewMouse(events.MouseUp, events.Left, image.Pt(x, y), 0))
}

func TestNiceInterval(t *testing.T) {
	assert.Equal(t, 30*time.Minute, NiceInterval(24*hour, 1000, 12))
	assert.Equal(t, 3*time.Hour, NiceInterval(24*hour, 1000, 60))
	assert.Equal(t, time.Millisecond, NiceInterval(100, 1000, 10))
	assert.Equal(t, 365*24*time.Hour, NiceInterval(24*hour, 0, 12))
	assert.Equal(t, 365*24*time.Hour, NiceInterval(1000*365*24*hour, 1000, 12))
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []int64{0, 5, 10}, Ticks(0, 10, 5*time.Millisecond))
	assert.Equal(t, []int64{-5, 0}, Ticks(-7, 3, 5*time.Millisecond))
	assert.Equal(t, []int64{5}, Ticks(1, 9, 5*time.Millisecond))
	assert.Nil(t, Ticks(10, 0, 5*time.Millisecond))
	assert.Nil(t, Ticks(0, 10, 0))
}

func TestRulerClickPans(t *testing.T) {
	tl := newTimeline(t)
	tl.AddBand(NewRuler())
	tl.Tick(t0)
	r := tl.Tree.RegionAt(750, 10)
	require.NotNil(t, r)
	assert.Equal(t, "band:ruler/scale", r.ID)
	assert.Equal(t, cursors.Pointer, r.Cursor)

	click(tl, 750, 10)
	tl.Tick(t0.Add(300 * time.Millisecond))
	assert.Equal(t, viewport.TimeRange{Start: 6 * hour, Stop: 30 * hour}, tl.Range())
}

func TestPackRows(t *testing.T) {
	items := []Item{
		{ID: "a", Start: 0, Stop: 10},
		{ID: "b", Start: 5, Stop: 15},
		{ID: "c", Start: 11, Stop: 20},
		{ID: "d", Start: 10, Stop: 10},
	}
	assert.Equal(t, []int{0, 1, 0, 2}, packRows(items))
	b := NewEventBand("events", items...)
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, float32(3*20+4), b.ContentHeight(nil))
	assert.True(t, b.Items()[3].Milestone())
	assert.Equal(t, colors.Spaced(1), b.Items()[1].Color)

	assert.Equal(t, 0, NewEventBand("empty").Rows())
	assert.Equal(t, float32(24), NewEventBand("empty").ContentHeight(nil))
}

func TestEventBand(t *testing.T) {
	tl := newTimeline(t)
	var clicked []string
	b := NewEventBand("events",
		Item{ID: "a", Start: 2 * hour, Stop: 8 * hour},
		Item{ID: "m", Start: 12 * hour, Stop: 12 * hour},
	)
	b.OnClick = func(it *Item) { clicked = append(clicked, it.ID) }
	tl.AddBand(b)
	tl.Tick(t0)

	assert.Equal(t, "band:events/a", tl.Tree.RegionAt(200, 12).ID)
	assert.Equal(t, "band:events/m", tl.Tree.RegionAt(500, 12).ID)
	assert.Equal(t, "band:events", tl.Tree.RegionAt(700, 12).ID)
	assert.Equal(t, colornames.Steelblue, tl.Image().RGBAAt(200, 12))

	tl.HandleEvent(events.NewMouseMove(false, image.Pt(200, 12), 0))
	assert.Equal(t, "a", b.Hovered())
	assert.Equal(t, cursors.Pointer, tl.Gestures.Cursor())
	assert.True(t, tl.Tick(t0.Add(10*time.Millisecond)))
	assert.NotEqual(t, colornames.Steelblue, tl.Image().RGBAAt(200, 12))

	tl.HandleEvent(events.NewMouseMove(false, image.Pt(700, 12), 0))
	assert.Equal(t, "", b.Hovered())

	click(tl, 500, 12)
	click(tl, 200, 12)
	assert.Equal(t, []string{"m", "a"}, clicked)
}

func TestMilestoneClick(t *testing.T) {
	tl := newTimeline(t)
	var clicked []string
	b := NewEventBand("events",
		Item{ID: "m1", Start: 6 * hour, Stop: 6 * hour},
		Item{ID: "m2", Start: 18 * hour, Stop: 18 * hour},
	)
	b.OnClick = func(it *Item) { clicked = append(clicked, it.ID) }
	tl.AddBand(b)
	tl.Tick(t0)

	// milestones are dots of radius 8 centered at y = 4+8
	click(tl, 750, 12)
	click(tl, 256, 14)
	click(tl, 250, 2)
	click(tl, 265, 12)
	assert.Equal(t, []string{"m2", "m1"}, clicked)
	assert.Equal(t, b.Items()[1].Color, tl.Image().RGBAAt(750, 12))
}

func TestEventBandIDs(t *testing.T) {
	b := NewEventBand("events",
		Item{Start: 2 * hour, Stop: 3 * hour},
		Item{ID: "#0", Start: 4 * hour, Stop: 5 * hour},
		Item{Start: 6 * hour, Stop: 7 * hour},
		Item{ID: "#2", Start: 8 * hour, Stop: 9 * hour},
	)
	its := b.Items()
	assert.Equal(t, "#0-1", its[0].ID)
	assert.Equal(t, "#0", its[1].ID)
	assert.Equal(t, "#2-1", its[2].ID)
	assert.Equal(t, "#2", its[3].ID)

	tl := newTimeline(t)
	var clicked []string
	b.OnClick = func(it *Item) { clicked = append(clicked, it.ID) }
	tl.AddBand(b)
	tl.Tick(t0)
	assert.Equal(t, "band:events/#0-1", tl.Tree.RegionAt(100, 12).ID)
	assert.Equal(t, "band:events/#2-1", tl.Tree.RegionAt(270, 12).ID)
	click(tl, 100, 12)
	click(tl, 190, 12)
	assert.Equal(t, []string{"#0-1", "#0"}, clicked)

	ds, err := ReadDataset(strings.NewReader(`
bands:
  - name: x
    items:
      - start: 2025-01-01T00:00:00Z
      - id: "#0"
        start: 2025-01-01T01:00:00Z
`))
	require.NoError(t, err)
	items := ds.Bands[0].ItemList()
	assert.Equal(t, "#0-1", items[0].ID)
	assert.Equal(t, "#0", items[1].ID)
}

const testDataset = `
title: Release
ruler: true
now: true
bands:
  - name: builds
    items:
      - id: b1
        start: 2025-01-01T00:00:00Z
        stop: 2025-01-01T06:00:00Z
        color: seagreen
      - id: b2
        start: 2025-01-01T03:00:00Z
        stop: 2025-01-01T12:00:00Z
        color: notacolor
  - name: releases
    items:
      - label: v1
        start: 2025-01-02T00:00:00Z
`

func TestDataset(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader(testDataset))
	require.NoError(t, err)
	assert.Equal(t, "Release", ds.Title)
	require.Len(t, ds.Bands, 2)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	r, err := ds.Range()
	require.NoError(t, err)
	assert.Equal(t, viewport.TimeRange{Start: start, Stop: start + 24*hour}, r)

	items := ds.Bands[0].ItemList()
	assert.Equal(t, colornames.Seagreen, items[0].Color)
	assert.Equal(t, colors.Spaced(1), items[1].Color)
	assert.Equal(t, start+6*hour, items[0].Stop)

	ms := ds.Bands[1].ItemList()
	assert.Equal(t, "#0", ms[0].ID)
	assert.Equal(t, "v1", ms[0].Label)
	assert.True(t, ms[0].Milestone())

	bs := ds.NewBands()
	require.Len(t, bs, 4)
	assert.IsType(t, &Ruler{}, bs[0])
	assert.IsType(t, &NowLocator{}, bs[3])

	tl := newTimeline(t)
	require.NoError(t, ds.AddTo(tl))
	margin := 24 * hour / 20
	assert.Equal(t, viewport.TimeRange{Start: start - margin, Stop: start + 24*hour + margin}, tl.Range())
	assert.Len(t, tl.Bands(), 4)
}

func TestDatasetValidate(t *testing.T) {
	_, err := ReadDataset(strings.NewReader(`
bands:
  - name: x
    items:
      - id: a
        start: 2025-01-02T00:00:00Z
        stop: 2025-01-01T00:00:00Z
      - id: a
        start: 2025-01-01T00:00:00Z
      - id: c
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stops before it starts")
	assert.Contains(t, err.Error(), `duplicate event ID "a"`)
	assert.Contains(t, err.Error(), "event c has no start")

	_, err = (&Dataset{}).Range()
	assert.Error(t, err)
}

func TestNowLocator(t *testing.T) {
	tl := newTimeline(t)
	require.NoError(t, tl.SetBounds(t0.UnixMilli()-hour, t0.UnixMilli()+hour, false))
	n := NewNowLocator()
	tl.AddBand(n)
	tl.Tick(t0)
	assert.Equal(t, n.Color, tl.Image().RGBAAt(500, 100))
	assert.Equal(t, colors.White, tl.Image().RGBAAt(400, 100))
}
