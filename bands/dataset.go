// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bands

import (
	"fmt"
	"io"
	"time"

	"cogentcore.org/timeline/base/errors"
	"cogentcore.org/timeline/base/iox/yamlx"
	"cogentcore.org/timeline/colors"
	"cogentcore.org/timeline/timeline"
	"cogentcore.org/timeline/viewport"
)

// Dataset is a set of event bands, as loaded from a YAML file.
type Dataset struct {

	// Title is an optional title of the dataset.
	Title string `yaml:"title"`

	// Ruler is whether to add a [Ruler] above the bands.
	Ruler bool `yaml:"ruler"`

	// Now is whether to add a [NowLocator] over the bands.
	Now bool `yaml:"now"`

	Bands []DatasetBand `yaml:"bands"`
}

// DatasetBand is one band of a [Dataset].
type DatasetBand struct {
	Name  string         `yaml:"name"`
	Items []DatasetEvent `yaml:"items"`
}

// DatasetEvent is one event of a [DatasetBand]. Stop may be omitted
// for milestones. Color is a CSS color name; a palette color is used
// if it is empty.
type DatasetEvent struct {
	ID    string    `yaml:"id"`
	Label string    `yaml:"label"`
	Start time.Time `yaml:"start"`
	Stop  time.Time `yaml:"stop"`
	Color string    `yaml:"color"`
}

// OpenDataset reads a [Dataset] from the given YAML file.
func OpenDataset(filename string) (*Dataset, error) {
	ds := &Dataset{}
	if err := yamlx.Open(ds, filename); err != nil {
		return nil, err
	}
	return ds, ds.Validate()
}

// ReadDataset reads a [Dataset] in YAML format from the given reader.
func ReadDataset(r io.Reader) (*Dataset, error) {
	ds := &Dataset{}
	if err := yamlx.Read(ds, r); err != nil {
		return nil, err
	}
	return ds, ds.Validate()
}

// Validate checks that every event has a start, no event stops before
// it starts, and event IDs are unique within each band.
func (ds *Dataset) Validate() error {
	var errs []error
	for _, b := range ds.Bands {
		ids := map[string]bool{}
		for i, ev := range b.Items {
			name := ev.ID
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			if ev.Start.IsZero() {
				errs = append(errs, fmt.Errorf("band %q: event %s has no start", b.Name, name))
			}
			if !ev.Stop.IsZero() && ev.Stop.Before(ev.Start) {
				errs = append(errs, fmt.Errorf("band %q: event %s stops before it starts", b.Name, name))
			}
			if ev.ID != "" && ids[ev.ID] {
				errs = append(errs, fmt.Errorf("band %q: duplicate event ID %q", b.Name, ev.ID))
			}
			ids[ev.ID] = true
		}
	}
	return errors.Join(errs...)
}

// Range returns the smallest range containing all events, or an error
// if there are none.
func (ds *Dataset) Range() (viewport.TimeRange, error) {
	var r viewport.TimeRange
	n := 0
	for _, b := range ds.Bands {
		for _, ev := range b.Items {
			start, stop := ev.span()
			if n == 0 {
				r = viewport.TimeRange{Start: start, Stop: stop}
			} else {
				r.Start = min(r.Start, start)
				r.Stop = max(r.Stop, stop)
			}
			n++
		}
	}
	if n == 0 {
		return r, errors.New("bands.Dataset.Range: no events")
	}
	if r.Stop == r.Start {
		r.Stop++
	}
	return r, nil
}

func (ev *DatasetEvent) span() (start, stop int64) {
	start = ev.Start.UnixMilli()
	stop = start
	if !ev.Stop.IsZero() {
		stop = ev.Stop.UnixMilli()
	}
	return
}

// ItemList returns the items of the band. Unknown color names are
// logged and replaced by palette colors, and events without an ID are
// given unique ones as by [EventBand.SetItems].
func (db *DatasetBand) ItemList() []Item {
	items := make([]Item, len(db.Items))
	for i, ev := range db.Items {
		it := Item{ID: ev.ID, Label: ev.Label}
		it.Start, it.Stop = ev.span()
		if ev.Color != "" {
			c, err := colors.FromName(ev.Color)
			if errors.Log(err) == nil {
				it.Color = c
			}
		}
		if it.Color.A == 0 {
			it.Color = colors.Spaced(i)
		}
		items[i] = it
	}
	assignIDs(items)
	return items
}

// NewBands returns the bands of the dataset, in order: the ruler, the
// event bands, and the current time locator, as enabled.
func (ds *Dataset) NewBands() []timeline.Band {
	var bs []timeline.Band
	if ds.Ruler {
		bs = append(bs, NewRuler())
	}
	for i := range ds.Bands {
		db := &ds.Bands[i]
		bs = append(bs, NewEventBand(db.Name, db.ItemList()...))
	}
	if ds.Now {
		bs = append(bs, NewNowLocator())
	}
	return bs
}

// AddTo adds the bands of the dataset to the given timeline and, if
// there are any events, shows their range with a margin on either side.
func (ds *Dataset) AddTo(tl *timeline.Timeline) error {
	for _, b := range ds.NewBands() {
		tl.AddBand(b)
	}
	r, err := ds.Range()
	if err != nil {
		return nil
	}
	margin := max(r.Span()/20, 1)
	return tl.SetBounds(r.Start-margin, r.Stop+margin, false)
}
