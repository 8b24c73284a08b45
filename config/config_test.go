// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/timeline/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 200*time.Millisecond, c.AnimationDuration.D())
	assert.Equal(t, float32(5), c.SnapThreshold)
	assert.Equal(t, time.Second, c.RefreshInterval.D())
	assert.Equal(t, 2.0, c.ZoomStep)
	assert.False(t, c.NativeClicks)
	assert.NoError(t, c.Validate())
	assert.Equal(t, colors.White, c.BackgroundColor())
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "timeline.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`
AnimationDuration = "350ms"
SnapThreshold = 8
Background = "ivory"
NativeClicks = true
`), 0666))
	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 350*time.Millisecond, c.AnimationDuration.D())
	assert.Equal(t, float32(8), c.SnapThreshold)
	assert.Equal(t, "ivory", c.Background)
	assert.True(t, c.NativeClicks)
	assert.Equal(t, 60, c.FrameRate)
}

func TestOpenEnv(t *testing.T) {
	t.Setenv("TIMELINE_REFRESH_INTERVAL", "250ms")
	t.Setenv("TIMELINE_ZOOM_STEP", "1.5")
	t.Setenv("TIMELINE_LOG_LEVEL", "debug")
	c, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, c.RefreshInterval.D())
	assert.Equal(t, 1.5, c.ZoomStep)
	assert.Equal(t, slog.LevelDebug, c.Level())
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	t.Setenv("TIMELINE_FRAME_RATE", "fast")
	_, err = Open("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := Default()
	c.ZoomStep = 1
	c.FrameRate = 0
	c.Background = "notacolor"
	c.MinSidebarWidth = 300
	err := c.Validate()
	require.Error(t, err)
	for _, s := range []string{"ZoomStep", "FrameRate", "notacolor", "MinSidebarWidth"} {
		assert.Contains(t, err.Error(), s)
	}
	assert.Equal(t, colors.White, c.BackgroundColor())
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "saved.toml")
	c := Default()
	c.AnimationDuration = Duration(time.Second)
	c.QuantizationGuard = true
	require.NoError(t, c.Save(fn))
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(b), "1s")
	o, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, c, o)
}

func TestDuration(t *testing.T) {
	var d Duration
	assert.Error(t, d.UnmarshalText([]byte("soon")))
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.D())
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(b))
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "watched.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`SnapThreshold = 3`), 0666))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func(c *Config, err error) {
			// a write may be seen before it is complete
			if err == nil && c.SnapThreshold == 9 {
				select {
				case got <- c:
				default:
				}
			}
		})
	}()

	// the watcher may not be ready for the first write
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-got:
			assert.Equal(t, float32(9), c.SnapThreshold)
			cancel()
			assert.ErrorIs(t, <-done, context.Canceled)
			return
		case <-tick.C:
			require.NoError(t, os.WriteFile(fn, []byte(`SnapThreshold = 9`), 0666))
		case <-deadline:
			t.Fatal("no reload")
		}
	}
}
