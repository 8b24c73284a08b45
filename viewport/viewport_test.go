// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"testing"
	"time"

	"cogentcore.org/timeline/anim"
	"cogentcore.org/timeline/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hour = int64(time.Hour / time.Millisecond)

type counter struct{ n int }

func (c *counter) RequestRepaint() { c.n++ }

func newTest(t *testing.T, r TimeRange, width float64) *Viewport {
	v, err := New(r, width, 200*time.Millisecond)
	require.NoError(t, err)
	return v
}

func TestNewInvalid(t *testing.T) {
	_, err := New(TimeRange{10, 10}, 100, 0)
	assert.True(t, errors.Is(err, ErrInvalidRange))
	_, err = New(TimeRange{10, 5}, 100, 0)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestTimeRange(t *testing.T) {
	r := TimeRange{0, 24 * hour}
	assert.Equal(t, 24*hour, r.Span())
	assert.Equal(t, 12*hour, r.Center())
	assert.True(t, r.Contains(0))
	assert.False(t, r.Contains(24*hour))
	assert.True(t, r.Overlaps(-5, 1))
	assert.False(t, r.Overlaps(24*hour, 25*hour))
	assert.Equal(t, "[1970-01-01T00:00:00.000Z, 1970-01-02T00:00:00.000Z)", r.String())
	assert.NoError(t, r.Validate())
}

func TestMappingEndpoints(t *testing.T) {
	v := newTest(t, TimeRange{1000, 2000}, 500)
	assert.Equal(t, 0.0, v.PositionTime(1000))
	assert.Equal(t, 500.0, v.PositionTime(2000))
	assert.Equal(t, 250.0, v.PositionTime(1500))
	assert.Equal(t, int64(1000), v.TimeForPosition(0))
	assert.Equal(t, int64(2000), v.TimeForPosition(500))
	assert.Equal(t, 100.0, v.DistanceBetween(1200, 1400))
	assert.Equal(t, -100.0, v.DistanceBetween(1400, 1200))
}

func TestMappingMonotonicRoundTrip(t *testing.T) {
	v := newTest(t, TimeRange{-3 * hour, 5 * hour}, 1234)
	prev := v.PositionTime(-3 * hour)
	for tm := -3 * hour; tm <= 5*hour; tm += hour / 7 {
		x := v.PositionTime(tm)
		assert.GreaterOrEqual(t, x, prev)
		prev = x
		assert.InDelta(t, tm, v.TimeForPosition(x), 1)
	}
}

func TestPanBy(t *testing.T) {
	v := newTest(t, TimeRange{0, 24 * hour}, 1000)
	require.NoError(t, v.PanBy(500, false))
	assert.Equal(t, TimeRange{12 * hour, 36 * hour}, v.Range())
	require.NoError(t, v.PanBy(-1000, false))
	assert.Equal(t, TimeRange{-12 * hour, 12 * hour}, v.Range())
}

func TestPanByZeroWidth(t *testing.T) {
	v := newTest(t, TimeRange{0, 100}, 0)
	require.NoError(t, v.PanBy(50, false))
	assert.Equal(t, TimeRange{0, 100}, v.Range())
	assert.Equal(t, int64(0), v.TimeForPosition(30))
}

func TestPanTo(t *testing.T) {
	v := newTest(t, TimeRange{0, 100}, 100)
	require.NoError(t, v.PanTo(1000, false))
	assert.Equal(t, TimeRange{950, 1050}, v.Range())
}

func TestZoom(t *testing.T) {
	v := newTest(t, TimeRange{0, 24 * hour}, 1000)
	require.NoError(t, v.Zoom(1, false))
	assert.Equal(t, TimeRange{0, 24 * hour}, v.Range())

	require.NoError(t, v.Zoom(2, false))
	r := v.Range()
	assert.Equal(t, 48*hour, r.Span())
	assert.Equal(t, 12*hour, r.Center())

	require.NoError(t, v.Zoom(0.25, false))
	r = v.Range()
	assert.Equal(t, 12*hour, r.Span())
	assert.Equal(t, 12*hour, r.Center())
}

func TestZoomInOut(t *testing.T) {
	v := newTest(t, TimeRange{0, 1000}, 100)
	require.NoError(t, v.ZoomIn(false))
	assert.Equal(t, TimeRange{250, 750}, v.Range())
	require.NoError(t, v.ZoomOut(false))
	assert.Equal(t, TimeRange{0, 1000}, v.Range())
}

func TestZoomAroundKeepsPivot(t *testing.T) {
	v := newTest(t, TimeRange{0, 24 * hour}, 1000)
	pivot := 6 * hour
	before := v.PositionTime(pivot)
	require.NoError(t, v.ZoomAround(0.5, pivot, false))
	assert.InDelta(t, before, v.PositionTime(pivot), 1e-3)
	assert.Equal(t, 12*hour, v.Range().Span())
	require.NoError(t, v.ZoomAround(3, pivot, false))
	assert.InDelta(t, before, v.PositionTime(pivot), 1e-3)
}

func TestInvalidZoomUnchanged(t *testing.T) {
	c := &counter{}
	v := newTest(t, TimeRange{0, 1000}, 100)
	v.Repainter = c
	for _, f := range []float64{0, -1} {
		err := v.Zoom(f, false)
		assert.True(t, errors.Is(err, ErrInvalidZoom), "factor %v", f)
		err = v.ZoomAround(f, 10, true)
		assert.True(t, errors.Is(err, ErrInvalidZoom), "factor %v", f)
	}
	assert.Equal(t, TimeRange{0, 1000}, v.Range())
	assert.False(t, v.Animating())
	assert.Equal(t, 0, c.n)
}

func TestInvalidBoundsUnchanged(t *testing.T) {
	v := newTest(t, TimeRange{0, 1000}, 100)
	err := v.SetBounds(50, 50, false)
	assert.True(t, errors.Is(err, ErrInvalidRange))
	err = v.SetBounds(60, 50, true)
	assert.True(t, errors.Is(err, ErrInvalidRange))
	assert.Equal(t, TimeRange{0, 1000}, v.Range())
	assert.False(t, v.Animating())
}

func TestAnimatedSetBounds(t *testing.T) {
	t0 := time.Unix(100, 0)
	v := newTest(t, TimeRange{0, 1000}, 100)
	v.Clock = func() time.Time { return t0 }
	c := &counter{}
	v.Repainter = c
	var changed []TimeRange
	v.OnChange = func(r TimeRange) { changed = append(changed, r) }

	require.NoError(t, v.SetBounds(1000, 3000, true))
	assert.Equal(t, 1, c.n)
	assert.Equal(t, []TimeRange{{1000, 3000}}, changed)
	assert.True(t, v.Animating())
	assert.Equal(t, TimeRange{0, 1000}, v.Range())
	assert.Equal(t, TimeRange{1000, 3000}, v.Target())

	assert.True(t, v.Step(t0.Add(100*time.Millisecond)))
	assert.Equal(t, TimeRange{500, 2000}, v.Range())

	// relative operations accumulate on the target
	require.NoError(t, v.PanBy(100, true))
	assert.Equal(t, TimeRange{3000, 5000}, v.Target())

	assert.True(t, v.Step(t0.Add(200*time.Millisecond)))
	assert.Equal(t, TimeRange{3000, 5000}, v.Range())
	assert.False(t, v.Animating())
	assert.False(t, v.Step(t0.Add(300*time.Millisecond)))
}

func TestSidebar(t *testing.T) {
	t0 := time.Unix(0, 0)
	v := newTest(t, TimeRange{0, 1000}, 300)
	v.Clock = func() time.Time { return t0 }
	v.SetSidebarWidth(100, false)
	assert.Equal(t, 200.0, v.Width())
	assert.Equal(t, 100.0, v.PositionTime(500))

	v.SetSidebarWidth(0, true)
	assert.Equal(t, 100.0, v.SidebarWidth())
	assert.Equal(t, 0.0, v.SidebarTarget())
	v.Step(t0.Add(100 * time.Millisecond))
	assert.Equal(t, 50.0, v.SidebarWidth())

	// direct set aborts the transition
	v.SetSidebarWidth(80, false)
	assert.False(t, v.Animating())
	v.Step(t0.Add(300 * time.Millisecond))
	assert.Equal(t, 80.0, v.SidebarWidth())

	v.SetSidebarWidth(-5, false)
	assert.Equal(t, 0.0, v.SidebarWidth())
	v.SetSurfaceWidth(50)
	assert.Equal(t, 50.0, v.Width())
}

func TestZeroDuration(t *testing.T) {
	v, err := New(TimeRange{0, 1000}, 100, 0)
	require.NoError(t, err)
	now := time.Unix(100, 0)
	v.Clock = func() time.Time { return now }
	require.NoError(t, v.SetBounds(1000, 2000, true))
	assert.True(t, v.Step(now))
	assert.Equal(t, TimeRange{1000, 2000}, v.Range())
	assert.False(t, v.Animating())

	d, err := New(TimeRange{0, 1000}, 100, -1)
	require.NoError(t, err)
	d.Clock = func() time.Time { return now }
	require.NoError(t, d.SetBounds(1000, 2000, true))
	d.Step(now.Add(anim.DefaultDuration / 2))
	assert.Equal(t, TimeRange{500, 1500}, d.Range())
}
