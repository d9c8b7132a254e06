package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/philipparndt/gorim/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	segments   int
	workers    int
)

var rootCmd = &cobra.Command{
	Use:   "gorim",
	Short: "Compute the visible rims of overlapping spheres",
	Long: `gorim intersects every pair of spheres in a set, clips the resulting circle
against all other spheres and writes what survives as polylines.

Sphere sets are read from YAML or TOML files, or from a built-in fixture
given as fixture:<name> (see "gorim fixtures").`,
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "configuration file (.toml, .yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.IntVarP(&segments, "segments", "s", 0, "polyline segments per full turn")
	flags.IntVarP(&workers, "workers", "w", 0, "concurrent pair workers (0 = number of CPUs)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, rootCmd); err != nil {
		stop()
		os.Exit(1)
	}
}
