// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the configuration opened from filename every time
// the file is written or replaced, until the context is done. If the new
// configuration can not be opened, fn is called with the error instead.
func Watch(ctx context.Context, filename string, fn func(c *Config, err error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file, so the directory is watched
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("config: reload", "file", filename, "op", ev.Op)
			fn(Open(filename))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("config: watch", "file", filename, "err", err)
		}
	}
}
