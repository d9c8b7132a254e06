package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gorim/pkg/analysis"
	"github.com/philipparndt/gorim/pkg/rim"
	"github.com/philipparndt/gorim/pkg/sphere"
	"github.com/spf13/cobra"
)

const checkTolerance = 1e-9

var (
	infoCheck   bool
	infoLongest int
)

var infoCmd = &cobra.Command{
	Use:   "info <spheres>",
	Short: "Display statistics about the rims of a sphere set",
	Long:  "Show sphere count, bounding box, rim counts by kind, arc totals and the longest rims.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoCheck, "check", false, "verify that rim points lie on both spheres")
	infoCmd.Flags().IntVarP(&infoLongest, "longest", "n", 5, "number of longest rims to list")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	set, err := loadSpheres(args[0])
	if err != nil {
		return err
	}
	res, err := e.compute(cmd.Context(), set)
	if err != nil {
		return err
	}
	stats := analysis.Analyze(set, res)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Sphere Set Information")
	fmt.Fprintln(out, "======================")
	if set.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", set.Name)
	}
	fmt.Fprintf(out, "Source: %s\n\n", args[0])

	fmt.Fprintln(out, "Spheres:")
	fmt.Fprintf(out, "  Count: %d\n", stats.Spheres)
	fmt.Fprintf(out, "  Surface points: %d\n\n", set.TotalPoints())

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(stats.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(stats.BoundingBox.Max))
	fmt.Fprintf(out, "  Diagonal: %s\n\n", analysis.FormatMeasurement(stats.BoundingBox.Diagonal(), ""))

	fmt.Fprintln(out, "Rims:")
	fmt.Fprintf(out, "  Pairs examined: %d\n", stats.Pairs)
	fmt.Fprintf(out, "  Intersecting: %d\n", stats.Intersecting)
	fmt.Fprintf(out, "  Full circles: %d\n", stats.FullCircles)
	fmt.Fprintf(out, "  Partial: %d (%d arcs)\n", stats.Partial, stats.Arcs)
	fmt.Fprintf(out, "  Eliminated: %d\n", stats.Eliminated)
	fmt.Fprintf(out, "  Skipped: %d\n", stats.Skipped)
	fmt.Fprintf(out, "  Polylines: %d (%d points)\n", stats.Polylines, stats.Points)
	fmt.Fprintf(out, "  Visible angle: %s\n", analysis.FormatAngle(stats.TotalAngle))
	fmt.Fprintf(out, "  Visible length: %s\n", analysis.FormatMeasurement(stats.TotalLength, ""))
	if stats.Intersecting > 0 {
		fmt.Fprintf(out, "  Circle radius: %.6f .. %.6f units\n", stats.MinRadius, stats.MaxRadius)
	}

	if longest := analysis.LongestRims(stats, infoLongest); len(longest) > 0 {
		fmt.Fprintln(out, "\nLongest Rims:")
		for _, r := range longest {
			fmt.Fprintf(out, "  %d-%d: %s, %s in %d arc(s)\n",
				r.I, r.J,
				analysis.FormatMeasurement(r.Length, ""),
				analysis.FormatAngle(r.AngularMeasure),
				r.Arcs)
		}
	}

	if infoCheck {
		return checkRims(cmd, e, set.Spheres, res)
	}
	return nil
}

func checkRims(cmd *cobra.Command, e *env, spheres []sphere.Sphere, res *rim.Result) error {
	var errs []error
	for _, r := range res.Rims {
		angles := rim.CheckAngles(r.Circle, 8)
		if err := rim.CheckOnSpheres(r.Circle, spheres[r.I], spheres[r.J], angles, checkTolerance); err != nil {
			e.logger.Error("rim check failed", "pair", fmt.Sprintf("%d-%d", r.I, r.J), "err", err)
			errs = append(errs, fmt.Errorf("rim %d-%d: %w", r.I, r.J, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nCheck: all %d rims lie on both spheres\n", len(res.Rims))
	return nil
}
