package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artexplorer/primecut/polyhedra"
	"github.com/artexplorer/primecut/preset"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List vertex sources and stored presets",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
	return cmd
}

type listPreset struct {
	Name              string     `json:"name"`
	VertexSource      string     `json:"vertex_source"`
	Spreads           [3]float64 `json:"spreads"`
	ExpectedHullCount int        `json:"expected_hull_count"`
	Provenance        string     `json:"provenance,omitempty"`
}

type listOutput struct {
	Sources []string     `json:"sources"`
	Presets []listPreset `json:"presets"`
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	registry, err := preset.Default()
	if err != nil {
		return WrapExitError(ExitCommandError, "compiled-in preset table is invalid", err)
	}
	sources := polyhedra.IDs()
	presets := registry.Presets()

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		output := listOutput{Sources: sources}
		for _, p := range presets {
			output.Presets = append(output.Presets, listPreset{
				Name:              p.Name,
				VertexSource:      p.VertexSource,
				Spreads:           p.Spreads,
				ExpectedHullCount: p.ExpectedHullCount,
				Provenance:        p.Provenance,
			})
		}
		return writeJSON(out, output)
	}

	fmt.Fprintln(out, "vertex sources:")
	for _, id := range sources {
		fmt.Fprintf(out, "  %s\n", id)
	}
	fmt.Fprintln(out, "\npresets:")
	fmt.Fprintf(out, "  %-18s %-26s %-16s %s\n", "NAME", "SOURCE", "SPREADS", "HULL")
	for _, p := range presets {
		fmt.Fprintf(out, "  %-18s %-26s %-16s %d\n",
			p.Name, p.VertexSource,
			fmt.Sprintf("%g,%g,%g", p.Spreads[0], p.Spreads[1], p.Spreads[2]),
			p.ExpectedHullCount)
	}
	return nil
}
