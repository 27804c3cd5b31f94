package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/artexplorer/primecut/polyhedra"
	"github.com/artexplorer/primecut/search"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Source string
	Target int
	Step   float64
	Lo     float64
	Hi     float64
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Sweep spread space for a target hull count",
		Long: `Sweep the three spread parameters over a grid and report every sample
whose shadow polygon has exactly the target number of hull vertices.

Example:
  primecut search --source trunc-tet-plus-dual-tet --target 7 --step 0.25
  primecut search --source trunc-tet-plus-icosa --target 11 --step 0.05 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "vertex source id (see: primecut list)")
	cmd.Flags().IntVar(&opts.Target, "target", 0, "target hull vertex count (required)")
	cmd.Flags().Float64Var(&opts.Step, "step", 0.25, "grid step per spread axis")
	cmd.Flags().Float64Var(&opts.Lo, "lo", 0, "lower spread bound")
	cmd.Flags().Float64Var(&opts.Hi, "hi", 1, "upper spread bound")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

type searchOutput struct {
	Source  string         `json:"source"`
	Target  int            `json:"target"`
	Step    float64        `json:"step"`
	Matches []search.Match `json:"matches"`
}

func runSearch(opts *SearchOptions, cmd *cobra.Command) error {
	if opts.Step <= 0 {
		return NewExitError(ExitCommandError, "step must be positive")
	}
	points, err := polyhedra.Vertices(opts.Source)
	if err != nil {
		return WrapExitError(ExitCommandError, "unknown vertex source", err)
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	slog.Debug("sweep starting", "source", opts.Source, "target", opts.Target,
		"step", opts.Step, "lo", opts.Lo, "hi", opts.Hi)
	matches, err := search.ForHullCount(ctx, points, opts.Target, opts.Step, opts.Lo, opts.Hi)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return WrapExitError(ExitCommandError, "sweep interrupted", err)
		}
		return WrapExitError(ExitCommandError, "sweep failed", err)
	}
	slog.Debug("sweep done", "matches", len(matches))

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(out, searchOutput{
			Source:  opts.Source,
			Target:  opts.Target,
			Step:    opts.Step,
			Matches: matches,
		})
	}

	if len(matches) == 0 {
		fmt.Fprintf(out, "no %d-gon shadows of %s at step %g\n", opts.Target, opts.Source, opts.Step)
		return nil
	}
	fmt.Fprintf(out, "%-24s %-6s %s\n", "SPREADS", "HULL", "MAX ANGLE")
	for _, m := range matches {
		fmt.Fprintf(out, "%-24s %-6d %.4f°\n",
			fmt.Sprintf("%g,%g,%g", m.Spreads[0], m.Spreads[1], m.Spreads[2]),
			m.HullCount, m.MaxInteriorAngle)
	}
	fmt.Fprintf(out, "%d match(es)\n", len(matches))
	return nil
}
