package main

import (
	"github.com/philipparndt/gorim/pkg/export"
	"github.com/spf13/cobra"
)

var (
	renderOutput   string
	renderAxis     string
	renderWidth    float64
	renderOutlines bool
)

var renderCmd = &cobra.Command{
	Use:   "render <spheres>",
	Short: "Draw an orthographic projection of the rims",
	Long: `Draw the rims as seen along one coordinate axis. The output format follows
the file extension: .svg, .pdf, .eps, .png, .jpg, .gif, .tiff or .webp.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	flags := renderCmd.Flags()
	flags.StringVarP(&renderOutput, "output", "o", "", "output image file")
	flags.StringVar(&renderAxis, "axis", "", "viewing axis: x, y or z")
	flags.Float64Var(&renderWidth, "width", 0, "drawing width in millimetres")
	flags.BoolVar(&renderOutlines, "outlines", false, "draw the sphere silhouettes")
	_ = renderCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("axis") {
		e.cfg.Render.Axis = renderAxis
	}
	if cmd.Flags().Changed("width") {
		e.cfg.Render.Width = renderWidth
	}
	if err := e.cfg.Validate(); err != nil {
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

	err = export.RenderProjection(renderOutput, set, res.Polylines(), export.RenderOptions{
		Axis:        e.cfg.Render.Axis,
		Width:       e.cfg.Render.Width,
		DPI:         e.cfg.Render.DPI,
		StrokeWidth: 0.3,
		Colour:      e.cfg.RGBA(),
		Outlines:    renderOutlines,
	})
	if err != nil {
		return err
	}
	e.logger.Info("wrote projection", "file", renderOutput, "axis", e.cfg.Render.Axis)
	return nil
}
