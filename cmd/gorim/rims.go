package main

import (
	"github.com/philipparndt/gorim/pkg/export"
	"github.com/spf13/cobra"
)

var (
	rimsOutput string
	rimsPoints bool
)

var rimsCmd = &cobra.Command{
	Use:   "rims <spheres>",
	Short: "Write the rims of a sphere set as VRML",
	Args:  cobra.ExactArgs(1),
	RunE:  runRims,
}

func init() {
	rimsCmd.Flags().StringVarP(&rimsOutput, "output", "o", "", "output .wrl file")
	rimsCmd.Flags().BoolVar(&rimsPoints, "points", false, "include the visible surface points")
	_ = rimsCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(rimsCmd)
}

func runRims(cmd *cobra.Command, args []string) error {
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

	err = export.WriteVRMLFile(rimsOutput, set, res, export.VRMLOptions{
		Precision: e.cfg.Precision,
		Colour:    e.cfg.RGBA(),
		Rims:      true,
		Points:    rimsPoints,
	})
	if err != nil {
		return err
	}
	e.logger.Info("wrote rims", "file", rimsOutput, "rims", len(res.Rims), "skipped", len(res.Skipped))
	return nil
}
