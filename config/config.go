// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the settings of a timeline, loaded from a TOML
// file with overrides from TIMELINE_ environment variables.
package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/timeline/base/errors"
	"cogentcore.org/timeline/base/iox/tomlx"
	"cogentcore.org/timeline/base/logx"
	"cogentcore.org/timeline/colors"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is the prefix of the environment variables that override
// configuration values.
const EnvPrefix = "TIMELINE_"

// Config is the configuration of a timeline.
type Config struct {

	// AnimationDuration is the duration of animated viewport and sidebar transitions.
	AnimationDuration Duration `env:"ANIMATION_DURATION"`

	// SnapThreshold is the distance in pixels that the pointer has to move
	// with the button held before a grab starts.
	SnapThreshold float32 `env:"SNAP_THRESHOLD"`

	// RefreshInterval is the maximum time between redraws.
	RefreshInterval Duration `env:"REFRESH_INTERVAL"`

	// FrameRate is the number of frame ticks per second.
	FrameRate int `env:"FRAME_RATE"`

	// ZoomStep is the factor of a single zoom in or out.
	ZoomStep float64 `env:"ZOOM_STEP"`

	// WheelZoomSpeed is the exponent of the zoom factor per wheel pixel.
	WheelZoomSpeed float64 `env:"WHEEL_ZOOM_SPEED"`

	// SidebarWidth is the width of the expanded sidebar.
	SidebarWidth float32 `env:"SIDEBAR_WIDTH"`

	// MinSidebarWidth is the smallest width that dragging the divider can set.
	MinSidebarWidth float32 `env:"MIN_SIDEBAR_WIDTH"`

	// QuantizationGuard registers color neighborhoods on picking surfaces,
	// for hosts that may perturb colors when compositing.
	QuantizationGuard bool `env:"QUANTIZATION_GUARD"`

	// NativeClicks is whether the host delivers its own click events.
	NativeClicks bool `env:"NATIVE_CLICKS"`

	// Background is the CSS name of the background color.
	Background string `env:"BACKGROUND"`

	// LogLevel is the minimum level of log messages, such as "debug".
	LogLevel string `env:"LOG_LEVEL"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		AnimationDuration: Duration(200 * time.Millisecond),
		SnapThreshold:     5,
		RefreshInterval:   Duration(time.Second),
		FrameRate:         60,
		ZoomStep:          2,
		WheelZoomSpeed:    0.002,
		SidebarWidth:      200,
		Background:        "white",
	}
}

// Open returns the default configuration overridden by the given TOML file,
// if any, and then by environment variables.
func Open(filename string) (*Config, error) {
	c := Default()
	if filename != "" {
		if err := tomlx.Open(c, filename); err != nil {
			return nil, fmt.Errorf("config: %s: %w", filename, err)
		}
	}
	if err := c.ParseEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseEnv overrides values from TIMELINE_ environment variables.
func (c *Config) ParseEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Save saves the configuration to the given TOML file.
func (c *Config) Save(filename string) error {
	return tomlx.Save(c, filename)
}

// Validate returns an error describing every invalid value.
func (c *Config) Validate() error {
	var errs []error
	if c.AnimationDuration < 0 {
		errs = append(errs, fmt.Errorf("AnimationDuration must not be negative: %v", c.AnimationDuration))
	}
	if c.SnapThreshold < 0 {
		errs = append(errs, fmt.Errorf("SnapThreshold must not be negative: %v", c.SnapThreshold))
	}
	if c.RefreshInterval < 0 {
		errs = append(errs, fmt.Errorf("RefreshInterval must not be negative: %v", c.RefreshInterval))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("FrameRate must be positive: %v", c.FrameRate))
	}
	if !(c.ZoomStep > 1) {
		errs = append(errs, fmt.Errorf("ZoomStep must be greater than 1: %v", c.ZoomStep))
	}
	if c.MinSidebarWidth < 0 || c.SidebarWidth < c.MinSidebarWidth {
		errs = append(errs, fmt.Errorf("need 0 <= MinSidebarWidth <= SidebarWidth: %v, %v", c.MinSidebarWidth, c.SidebarWidth))
	}
	if _, err := colors.FromName(c.Background); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// BackgroundColor returns the background color, or white
// if the name is not a known color.
func (c *Config) BackgroundColor() color.RGBA {
	bg, err := colors.FromName(c.Background)
	if err != nil {
		slog.Warn("config: unknown background color", "name", c.Background)
		return colors.White
	}
	return bg
}

// Level returns the log level.
func (c *Config) Level() slog.Level {
	return logx.LevelFromString(c.LogLevel)
}
