package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jaminalder/nine-mens-morris/internal/domain"
	"github.com/jaminalder/nine-mens-morris/internal/harness"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	VerifyUndo bool
}

// ReplayResult is the outcome of replaying one action file.
type ReplayResult struct {
	File         string `json:"file"`
	Actions      int    `json:"actions"`
	Applied      int    `json:"applied"`
	Winner       string `json:"winner"`
	Phase        string `json:"phase"`
	Turn         string `json:"turn"`
	Board        string `json:"board"`
	UndoVerified bool   `json:"undo_verified,omitempty"`
	Error        string `json:"error,omitempty"`

	points domain.Board
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <file>...",
		Short: "Replay action files through the engine",
		Long: `Replay one or more action files and print the final position.

Each file holds one action per line ("W P 0", "B M 0 1", "W R 5").
Blank lines and lines starting with '#' are ignored.

Exit codes:
  0 - Every file replayed cleanly
  1 - An action was rejected or undo did not round-trip
  2 - Command error (unreadable or malformed file)

Examples:
  nmm replay game.txt
  nmm replay --verify-undo games/*.txt
  nmm replay --format json game.txt`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.VerifyUndo, "verify-undo", false, "also check that undo inverts every prefix")

	return cmd
}

func runReplay(opts *ReplayOptions, files []string, cmd *cobra.Command) error {
	results := make([]ReplayResult, 0, len(files))
	failed := 0
	for _, f := range files {
		res, err := replayFile(f, opts.VerifyUndo)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load actions", err)
		}
		if res.Error != "" {
			failed++
		}
		results = append(results, res)
	}

	w := cmd.OutOrStdout()
	var exitErr error
	if failed > 0 {
		exitErr = NewExitError(ExitFailure, fmt.Sprintf("%d of %d game(s) failed", failed, len(files)))
	}

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: results}
		if exitErr != nil {
			resp.Status = "error"
			resp.Error = &CLIError{Code: "E_REPLAY_FAILED", Message: exitErr.Error()}
		}
		if err := writeJSON(w, resp); err != nil {
			return err
		}
		return exitErr
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if res.Error != "" {
			fmt.Fprintf(w, "✗ %s: %s\n", res.File, res.Error)
		} else {
			fmt.Fprintf(w, "✓ %s: %d actions, winner %s, phase %s\n", res.File, res.Actions, res.Winner, res.Phase)
		}
		if opts.Verbose || res.Error == "" {
			writeBoard(w, res.points)
		}
	}
	return exitErr
}

// replayFile returns an error only when the file cannot be read or parsed.
// Rule violations are reported in the result.
func replayFile(path string, verifyUndo bool) (ReplayResult, error) {
	actions, err := harness.LoadActionsFile(path)
	if err != nil {
		return ReplayResult{}, err
	}
	log.Debug().Str("file", path).Int("actions", len(actions)).Msg("replaying")

	g, err := harness.Replay(actions)
	res := ReplayResult{
		File:    filepath.Base(path),
		Actions: len(actions),
		Applied: len(g.History()),
		Winner:  winnerName(g.Winner()),
		Phase:   g.Phase().String(),
		Turn:    g.Turn().String(),
		Board:   harness.BoardString(g.Points()),
		points:  g.Points(),
	}
	if err != nil {
		log.Info().Str("file", path).Err(err).Msg("replay stopped")
		res.Error = err.Error()
		return res, nil
	}
	if verifyUndo {
		if err := harness.VerifyUndo(actions); err != nil {
			log.Info().Str("file", path).Err(err).Msg("undo check failed")
			res.Error = fmt.Sprintf("undo: %v", err)
			return res, nil
		}
		res.UndoVerified = true
	}
	return res, nil
}
