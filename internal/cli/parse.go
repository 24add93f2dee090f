package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaminalder/nine-mens-morris/internal/domain"
)

// ParseResult is the outcome of parsing one action string.
type ParseResult struct {
	Input  string `json:"input"`
	Action string `json:"action,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <action>...",
		Short: "Check action strings against the action grammar",
		Long: `Parse each argument as an action and print its canonical form.

Quote every action so the shell passes it as one argument.

Examples:
  nmm parse "W P 0" "B M 0 1" "W R 5"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, args, cmd)
		},
	}
}

func runParse(opts *RootOptions, inputs []string, cmd *cobra.Command) error {
	results := make([]ParseResult, 0, len(inputs))
	bad := 0
	for _, in := range inputs {
		r := ParseResult{Input: in}
		if a, err := domain.ParseAction(in); err != nil {
			r.Error = err.Error()
			bad++
		} else {
			r.Action = a.String()
		}
		results = append(results, r)
	}

	var exitErr error
	if bad > 0 {
		exitErr = NewExitError(ExitFailure, fmt.Sprintf("%d malformed action(s)", bad))
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: results}
		if exitErr != nil {
			resp.Status = "error"
			resp.Error = &CLIError{Code: "E_MALFORMED_ACTION", Message: exitErr.Error()}
		}
		if err := writeJSON(w, resp); err != nil {
			return err
		}
		return exitErr
	}
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "✗ %s\n", r.Error)
			continue
		}
		fmt.Fprintf(w, "✓ %s\n", r.Action)
	}
	return exitErr
}
