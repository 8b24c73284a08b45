// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/spf13/cobra"
)

func newRenderCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render <dataset.yaml>",
		Short: "Render a dataset to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := o.now()
			if err != nil {
				return err
			}
			tl, err := o.newTimeline(args[0])
			if err != nil {
				return err
			}
			tl.Clock = func() time.Time { return now }
			tl.Tick(now)
			return o.save(tl)
		},
	}
}
