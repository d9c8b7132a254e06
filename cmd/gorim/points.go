package main

import (
	"github.com/philipparndt/gorim/pkg/export"
	"github.com/spf13/cobra"
)

var pointsOutput string

var pointsCmd = &cobra.Command{
	Use:   "points <spheres>",
	Short: "Write the surface points not hidden inside other spheres",
	Args:  cobra.ExactArgs(1),
	RunE:  runPoints,
}

func init() {
	pointsCmd.Flags().StringVarP(&pointsOutput, "output", "o", "", "output .wrl file")
	_ = pointsCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(pointsCmd)
}

func runPoints(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	set, err := loadSpheres(args[0])
	if err != nil {
		return err
	}

	err = export.WriteVRMLFile(pointsOutput, set, nil, export.VRMLOptions{
		Precision: e.cfg.Precision,
		Colour:    e.cfg.RGBA(),
		Points:    true,
	})
	if err != nil {
		return err
	}
	e.logger.Info("wrote points", "file", pointsOutput, "spheres", len(set.Spheres))
	return nil
}
