// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger used by the
// timeline packages, with colored level output and user-level plumbing.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected,
// typically through command line flags. It determines which messages
// are printed by the logger installed by [SetDefaultLogger].
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - debug: [slog.LevelDebug]
//   - verbose: [slog.LevelInfo]
//   - quiet: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are checked in that order, so, for example, if both
// debug and quiet are set, the level will be [slog.LevelDebug].
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString parses a level name such as "debug" or "WARN",
// returning [UserLevel] when the name is empty or unknown.
func LevelFromString(s string) slog.Level {
	var l slog.Level
	if s == "" || l.UnmarshalText([]byte(s)) != nil {
		return UserLevel
	}
	return l
}

// SetDefaultLogger sets the default logger to one writing to [os.Stderr]
// at [UserLevel], coloring the level when the terminal supports it.
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr, UserLevel))
}

// NewLogger returns a text logger writing to w at the given level.
// Levels are colored with the terminal profile detected for w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lv.String()).Foreground(out.Color(LevelColor(lv))).String())
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// LevelColor returns the hex color used for printing the given level.
func LevelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "#e5534b"
	case level >= slog.LevelWarn:
		return "#c69026"
	case level >= slog.LevelInfo:
		return "#539bf5"
	default:
		return "#768390"
	}
}
