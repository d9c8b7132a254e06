package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/philipparndt/gorim/pkg/export"
	"github.com/philipparndt/gorim/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	watchOutput   string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <spheres>",
	Short: "Rewrite the VRML rims whenever the sphere file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output .wrl file")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "delay after the last change")
	_ = watchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	path := args[0]
	if strings.HasPrefix(path, fixturePrefix) {
		return errors.New("watch needs a sphere file, not a fixture")
	}

	ctx := cmd.Context()
	regenerate := func() {
		set, err := loadSpheres(path)
		if err != nil {
			e.logger.Error("failed to load spheres", "file", path, "err", err)
			return
		}
		res, err := e.compute(ctx, set)
		if err != nil {
			e.logger.Error("failed to compute rims", "err", err)
			return
		}
		opts := export.VRMLOptions{Precision: e.cfg.Precision, Colour: e.cfg.RGBA(), Rims: true}
		if err := export.WriteVRMLFile(watchOutput, set, res, opts); err != nil {
			e.logger.Error("failed to write rims", "err", err)
			return
		}
		e.logger.Info("wrote rims", "file", watchOutput, "rims", len(res.Rims))
	}

	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		return err
	}
	defer fw.Close()
	fw.OnError = func(err error) {
		e.logger.Warn("watcher error", "err", err)
	}
	if err := fw.Watch([]string{path}, func(string) { regenerate() }); err != nil {
		return err
	}

	regenerate()
	e.logger.Info("watching for changes", "file", path)

	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
