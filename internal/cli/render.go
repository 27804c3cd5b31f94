package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/artexplorer/primecut"
	"github.com/artexplorer/primecut/polyhedra"
	"github.com/artexplorer/primecut/render"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Source    string
	Spreads   string
	STLPath   string
	FigPath   string
	Thickness float64
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export shadow artifacts for one spread triple",
		Long: `Project a vertex source under one spread triple and export the shadow:
an extruded STL solid of the hull polygon, a 2D figure of the projected
points, or both.

Example:
  primecut render --source truncated-tetrahedron --spreads 0,0.5,0 --stl pentagon.stl
  primecut render --source trunc-tet-plus-icosa --spreads 0.75,0.25,0.5 --fig hendecagon.png`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "vertex source id (see: primecut list)")
	cmd.Flags().StringVar(&opts.Spreads, "spreads", "", "spread triple a,b,c in [0,1]")
	cmd.Flags().StringVar(&opts.STLPath, "stl", "", "write extruded shadow solid to this STL file")
	cmd.Flags().StringVar(&opts.FigPath, "fig", "", "write shadow figure to this file (png or svg)")
	cmd.Flags().Float64Var(&opts.Thickness, "thickness", 0.2, "extrusion thickness of the STL solid")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("spreads")

	return cmd
}

type renderOutput struct {
	Source           string     `json:"source"`
	Spreads          [3]float64 `json:"spreads"`
	HullCount        int        `json:"hull_count"`
	MaxInteriorAngle float64    `json:"max_interior_angle"`
	STL              string     `json:"stl,omitempty"`
	Figure           string     `json:"figure,omitempty"`
}

func runRender(opts *RenderOptions, cmd *cobra.Command) error {
	if opts.STLPath == "" && opts.FigPath == "" {
		return NewExitError(ExitCommandError, "nothing to do: pass --stl and/or --fig")
	}
	if opts.Thickness <= 0 {
		return NewExitError(ExitCommandError, "thickness must be positive")
	}
	points, err := polyhedra.Vertices(opts.Source)
	if err != nil {
		return WrapExitError(ExitCommandError, "unknown vertex source", err)
	}
	spreads, err := parseSpreads(opts.Spreads)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad spreads", err)
	}

	proj, err := primecut.ProjectAndHull(points, spreads, 1)
	if err != nil {
		return WrapExitError(ExitCommandError, "projection failed", err)
	}
	slog.Debug("projected", "source", opts.Source, "hull", proj.HullCount())

	if opts.STLPath != "" {
		tris, err := render.ShadowMesh(proj, opts.Thickness)
		if err != nil {
			return WrapExitError(ExitCommandError, "shadow mesh failed", err)
		}
		if err := render.CreateSTL(opts.STLPath, tris); err != nil {
			return WrapExitError(ExitCommandError, "STL write failed", err)
		}
	}
	if opts.FigPath != "" {
		if err := render.SaveFigure(proj, opts.FigPath); err != nil {
			return WrapExitError(ExitCommandError, "figure write failed", err)
		}
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(out, renderOutput{
			Source:           opts.Source,
			Spreads:          spreads,
			HullCount:        proj.HullCount(),
			MaxInteriorAngle: primecut.MaxInteriorAngle(proj.Hull),
			STL:              opts.STLPath,
			Figure:           opts.FigPath,
		})
	}
	fmt.Fprintf(out, "%s at %g,%g,%g: %d-gon shadow, max angle %.4f°\n",
		opts.Source, spreads[0], spreads[1], spreads[2],
		proj.HullCount(), primecut.MaxInteriorAngle(proj.Hull))
	if opts.STLPath != "" {
		fmt.Fprintf(out, "wrote %s\n", opts.STLPath)
	}
	if opts.FigPath != "" {
		fmt.Fprintf(out, "wrote %s\n", opts.FigPath)
	}
	return nil
}
