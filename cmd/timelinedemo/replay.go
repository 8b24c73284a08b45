// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"cogentcore.org/timeline/script"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newReplayCmd(o *options) *cobra.Command {
	settle := time.Second
	cmd := &cobra.Command{
		Use:   "replay <dataset.yaml> <script.yaml>",
		Short: "Replay a script of input events on a dataset and render the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := o.now()
			if err != nil {
				return err
			}
			tl, err := o.newTimeline(args[0])
			if err != nil {
				return err
			}
			sc, err := script.Open(args[1])
			if err != nil {
				return err
			}
			frame := time.Second / time.Duration(o.cfg.FrameRate)
			if _, err := sc.Play(tl, now, frame, settle); err != nil {
				return err
			}
			color.Cyan("range %v", tl.Range())
			color.Cyan("%v", tl.Scheduler.Stats())
			return o.save(tl)
		},
	}
	cmd.Flags().DurationVar(&settle, "settle", settle, "time to keep ticking after the last step")
	return cmd
}
