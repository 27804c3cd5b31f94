package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artexplorer/primecut/polyhedra"
	"github.com/artexplorer/primecut/preset"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	PresetsFile string
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify [name]",
		Short: "Re-derive stored presets and check their shadows",
		Long: `Re-derive the shadow of every stored preset (or a single named one) and
check the hull count and widest interior angle against the recorded
expectations. A failing preset is reported, not skipped; the command
exits 1 if any preset fails.

Example:
  primecut verify
  primecut verify heptagon
  primecut verify --presets ./my-presets.yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.PresetsFile, "presets", "", "verify presets from a YAML file instead of the compiled-in table")

	return cmd
}

type verifyResult struct {
	Name             string  `json:"name"`
	Passed           bool    `json:"passed"`
	ActualHullCount  int     `json:"actual_hull_count"`
	MaxInteriorAngle float64 `json:"max_interior_angle"`
	Error            string  `json:"error,omitempty"`
}

type verifyOutput struct {
	Results []verifyResult `json:"results"`
	Passed  int            `json:"passed"`
	Failed  int            `json:"failed"`
}

func runVerify(opts *VerifyOptions, args []string, cmd *cobra.Command) error {
	registry, err := loadRegistry(opts.PresetsFile)
	if err != nil {
		return err
	}

	var report preset.Report
	if len(args) == 1 {
		result, err := registry.VerifyByName(args[0])
		if err != nil {
			return WrapExitError(ExitCommandError, "verification failed", err)
		}
		report.Results = []preset.Result{result}
		if result.Passed {
			report.Passed = 1
		} else {
			report.Failed = 1
		}
	} else {
		report = registry.VerifyAll()
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		output := verifyOutput{Passed: report.Passed, Failed: report.Failed}
		for _, r := range report.Results {
			vr := verifyResult{
				Name:             r.Name,
				Passed:           r.Passed,
				ActualHullCount:  r.ActualHullCount,
				MaxInteriorAngle: r.MaxInteriorAngle,
			}
			if r.Err != nil {
				vr.Error = r.Err.Error()
			}
			output.Results = append(output.Results, vr)
		}
		if err := writeJSON(out, output); err != nil {
			return err
		}
	} else {
		for _, r := range report.Results {
			switch {
			case r.Err != nil:
				fmt.Fprintf(out, "FAIL %-18s %v\n", r.Name, r.Err)
			case r.Passed:
				fmt.Fprintf(out, "ok   %-18s %d-gon, max angle %.4f°\n",
					r.Name, r.ActualHullCount, r.MaxInteriorAngle)
			default:
				fmt.Fprintf(out, "FAIL %-18s got %d-gon, max angle %.4f°\n",
					r.Name, r.ActualHullCount, r.MaxInteriorAngle)
			}
		}
		fmt.Fprintf(out, "%d passed, %d failed\n", report.Passed, report.Failed)
	}

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d preset(s) failed verification", report.Failed))
	}
	return nil
}

func loadRegistry(path string) (*preset.Registry, error) {
	if path == "" {
		registry, err := preset.Default()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "compiled-in preset table is invalid", err)
		}
		return registry, nil
	}
	configs, err := preset.LoadPresets(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load presets", err)
	}
	registry, err := preset.NewRegistry(configs, polyhedra.Vertices)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to build preset registry", err)
	}
	return registry, nil
}
