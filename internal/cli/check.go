package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jaminalder/nine-mens-morris/internal/harness"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Trace bool
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string               `json:"name"`
	Pass   bool                 `json:"pass"`
	Errors []string             `json:"errors,omitempty"`
	Trace  []harness.TraceEvent `json:"trace,omitempty"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <scenario|dir>...",
		Short: "Run YAML scenarios against the engine",
		Long: `Run YAML scenarios and report which expectations failed.

Arguments may be scenario files or directories; directories contribute
every *.yaml and *.yml file they contain.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (missing path, malformed scenario)

Examples:
  nmm check ./scenarios
  nmm check --trace ./scenarios/flying.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print the step trace of every scenario")

	return cmd
}

func loadScenarioArgs(paths []string) ([]*harness.Scenario, error) {
	var out []*harness.Scenario
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("scenario path not found: %s", p)
		}
		if info.IsDir() {
			ss, err := harness.LoadScenarios(p)
			if err != nil {
				return nil, err
			}
			out = append(out, ss...)
			continue
		}
		s, err := harness.LoadScenario(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func runCheck(opts *CheckOptions, paths []string, cmd *cobra.Command) error {
	scenarios, err := loadScenarioArgs(paths)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenarios", err)
	}

	w := cmd.OutOrStdout()
	result := CheckResult{
		Scenarios: make([]ScenarioResult, 0, len(scenarios)),
		Total:     len(scenarios),
	}
	for _, s := range scenarios {
		sr := ScenarioResult{Name: s.Name}
		res, err := harness.Run(s)
		if err != nil {
			sr.Errors = []string{fmt.Sprintf("execution failed: %v", err)}
		} else {
			sr.Pass = res.Passed()
			sr.Errors = res.Failures
			if opts.Trace {
				sr.Trace = res.Trace
			}
		}
		log.Debug().Str("scenario", s.Name).Bool("pass", sr.Pass).Msg("scenario finished")

		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Scenarios = append(result.Scenarios, sr)

		if opts.Format == "json" {
			continue
		}
		if sr.Pass {
			fmt.Fprintf(w, "✓ %s\n", s.Name)
		} else {
			fmt.Fprintf(w, "✗ %s\n", s.Name)
			for _, e := range sr.Errors {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
		if opts.Trace && res != nil {
			_, _ = w.Write(res.Text())
		}
	}

	var exitErr error
	if result.Failed > 0 {
		exitErr = NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: result}
		if exitErr != nil {
			resp.Status = "error"
			resp.Error = &CLIError{Code: "E_CHECK_FAILED", Message: exitErr.Error()}
		}
		if err := writeJSON(w, resp); err != nil {
			return err
		}
		return exitErr
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	return exitErr
}
