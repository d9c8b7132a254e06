package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/philipparndt/gorim/pkg/config"
	"github.com/philipparndt/gorim/pkg/rim"
	"github.com/philipparndt/gorim/pkg/sphere"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const fixturePrefix = "fixture:"

// env carries what every command needs after flag parsing
type env struct {
	cfg    config.Config
	logger *log.Logger
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	applyFlags(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "gorim",
	})
	return &env{cfg: cfg, logger: logger}, nil
}

// applyFlags lets explicitly set flags win over the configuration file
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("segments") {
		cfg.Segments = segments
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
}

func loadSpheres(arg string) (*sphere.Set, error) {
	var (
		set *sphere.Set
		err error
	)
	if name, ok := strings.CutPrefix(arg, fixturePrefix); ok {
		set, err = sphere.Fixture(name)
	} else {
		set, err = sphere.Load(arg)
	}
	if err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}
	return set, nil
}

func (e *env) compute(ctx context.Context, set *sphere.Set) (*rim.Result, error) {
	start := time.Now()
	res, err := rim.Compute(ctx, set.Spheres, rim.Options{
		SegmentsPerTurn: e.cfg.Segments,
		Workers:         e.cfg.Workers,
	})
	if err != nil {
		return nil, err
	}

	for _, s := range res.Skipped {
		e.logger.Warn("skipped pair", "pair", fmt.Sprintf("%d-%d", s.I, s.J), "err", s.Err)
	}
	e.logger.Debug("computed rims",
		"spheres", len(set.Spheres),
		"pairs", res.Pairs,
		"rims", len(res.Rims),
		"took", time.Since(start))
	return res, nil
}
