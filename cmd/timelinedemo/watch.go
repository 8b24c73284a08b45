// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/timeline/config"
	"github.com/spf13/cobra"
)

func newWatchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dataset.yaml>",
		Short: "Render a dataset again every time the configuration file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.configFile == "" {
				return errors.New("watch needs a configuration file (--config)")
			}
			render := func() error {
				tl, err := o.newTimeline(args[0])
				if err != nil {
					return err
				}
				now, err := o.now()
				if err != nil {
					return err
				}
				tl.Clock = func() time.Time { return now }
				tl.Tick(now)
				return o.save(tl)
			}
			if err := render(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			err := config.Watch(ctx, o.configFile, func(c *config.Config, err error) {
				if err != nil {
					slog.Error("timelinedemo: reload config", "err", err)
					return
				}
				o.cfg = c
				if err := render(); err != nil {
					slog.Error("timelinedemo: render", "err", err)
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
