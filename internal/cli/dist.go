package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artexplorer/primecut/polyhedra"
	"github.com/artexplorer/primecut/search"
)

// DistOptions holds flags for the dist command.
type DistOptions struct {
	*RootOptions
	Source string
	Step   float64
}

// NewDistCommand creates the dist command.
func NewDistCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DistOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dist",
		Short: "Histogram of hull counts over the full spread cube",
		Long: `Sweep the unit spread cube and bucket every sample by the hull vertex
count of its shadow. The histogram shows which polygon classes a vertex
source can produce at all, and how rare each one is.

Example:
  primecut dist --source truncated-tetrahedron --step 0.1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDist(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "vertex source id (see: primecut list)")
	cmd.Flags().Float64Var(&opts.Step, "step", 0.1, "grid step per spread axis")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

type distOutput struct {
	Source    string      `json:"source"`
	Step      float64     `json:"step"`
	Samples   int         `json:"samples"`
	Histogram map[int]int `json:"histogram"`
}

func runDist(opts *DistOptions, cmd *cobra.Command) error {
	if opts.Step <= 0 {
		return NewExitError(ExitCommandError, "step must be positive")
	}
	points, err := polyhedra.Vertices(opts.Source)
	if err != nil {
		return WrapExitError(ExitCommandError, "unknown vertex source", err)
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	hist, err := search.Distribution(ctx, points, opts.Step)
	if err != nil {
		return WrapExitError(ExitCommandError, "sweep failed", err)
	}
	total := 0
	for _, n := range hist {
		total += n
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(out, distOutput{
			Source:    opts.Source,
			Step:      opts.Step,
			Samples:   total,
			Histogram: hist,
		})
	}

	counts := make([]int, 0, len(hist))
	for c := range hist {
		counts = append(counts, c)
	}
	sort.Ints(counts)
	fmt.Fprintf(out, "%s, step %g, %d samples\n", opts.Source, opts.Step, total)
	for _, c := range counts {
		n := hist[c]
		bar := strings.Repeat("#", barWidth(n, total))
		fmt.Fprintf(out, "%3d-gon %7d  %s\n", c, n, bar)
	}
	return nil
}

// barWidth scales a bucket to at most 40 columns, keeping nonempty buckets
// visible.
func barWidth(n, total int) int {
	if total == 0 {
		return 0
	}
	w := n * 40 / total
	if w == 0 && n > 0 {
		w = 1
	}
	return w
}
