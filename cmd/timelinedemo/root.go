// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"cogentcore.org/timeline/bands"
	"cogentcore.org/timeline/base/logx"
	"cogentcore.org/timeline/config"
	"cogentcore.org/timeline/paint"
	"cogentcore.org/timeline/timeline"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	configFile string
	envFile    string
	level      string
	width      int
	height     int
	output     string
	pick       string
	at         string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "timelinedemo",
		Short: "Render and replay interactive timelines without a window",
		Long: `timelinedemo draws the bands of a YAML dataset on an offscreen timeline
and saves the result as a PNG image, along with the picking surface if asked.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&o.configFile, "config", "c", "", "TOML configuration file")
	pf.StringVar(&o.envFile, "env", ".env", "file of TIMELINE_ environment variables to load if it exists")
	pf.StringVar(&o.level, "level", "", "log level: debug, info, warn or error (default from config)")
	pf.IntVar(&o.width, "width", 1200, "width of the image in pixels")
	pf.IntVar(&o.height, "height", 400, "height of the image in pixels")
	pf.StringVarP(&o.output, "output", "o", "timeline.png", "output PNG file")
	pf.StringVar(&o.pick, "pick", "", "output PNG file of the picking surface")
	pf.StringVar(&o.at, "at", "", "RFC3339 time to use as the current time (default now)")

	root.AddCommand(newRenderCmd(o), newReplayCmd(o), newWatchCmd(o))
	return root
}

// setup expands ~ in file names, loads the environment file and the
// configuration, and installs the logger.
func (o *options) setup() error {
	for _, fn := range []*string{&o.configFile, &o.envFile, &o.output, &o.pick} {
		p, err := homedir.Expand(*fn)
		if err != nil {
			return err
		}
		*fn = p
	}
	if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	cfg, err := config.Open(o.configFile)
	if err != nil {
		return err
	}
	o.cfg = cfg
	logx.UserLevel = cfg.Level()
	if o.level != "" {
		logx.UserLevel = logx.LevelFromString(o.level)
	}
	logx.SetDefaultLogger()
	return nil
}

// now returns the time given by the at flag, or the current time.
func (o *options) now() (time.Time, error) {
	if o.at == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, o.at)
}

// newTimeline returns a timeline showing the dataset in the given file.
func (o *options) newTimeline(dataset string) (*timeline.Timeline, error) {
	ds, err := bands.OpenDataset(dataset)
	if err != nil {
		return nil, err
	}
	tl := timeline.New(o.cfg, o.width, o.height)
	if err := ds.AddTo(tl); err != nil {
		return nil, err
	}
	slog.Info("timeline: loaded dataset", "file", dataset, "title", ds.Title, "bands", len(tl.Bands()), "range", tl.Range())
	return tl, nil
}

// save writes the images of the timeline to the output files.
func (o *options) save(tl *timeline.Timeline) error {
	if err := paint.NewContextFromRGBA(tl.Image()).SavePNG(o.output); err != nil {
		return err
	}
	color.Green("wrote %s", o.output)
	if o.pick == "" {
		return nil
	}
	if err := paint.NewContextFromRGBA(tl.PickImage()).SavePNG(o.pick); err != nil {
		return err
	}
	color.Green("wrote %s", o.pick)
	return nil
}
