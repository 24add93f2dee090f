package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jaminalder/nine-mens-morris/internal/domain"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // A game or scenario did not hold up
	ExitCommandError = 2 // Bad arguments, unreadable files
)

// ExitError carries the exit code a command failed with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Nil maps to
// ExitSuccess and plain errors to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// CLIResponse is the JSON envelope for every command.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w io.Writer, resp CLIResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// The diagram puts grid row r on text line 2r and grid column c at
// character 4c.
const (
	diagramRows = 13
	diagramCols = 25
)

// writeBoard draws b as an ASCII diagram. Pieces are coloured when w is a
// terminal that supports it.
func writeBoard(w io.Writer, b domain.Board) {
	var grid [diagramRows][diagramCols]byte
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	for p := domain.Point(0); p < domain.NumPoints; p++ {
		r, c := domain.Layout[p][0], domain.Layout[p][1]
		for _, q := range domain.Neighbors(p) {
			r2, c2 := domain.Layout[q][0], domain.Layout[q][1]
			if r == r2 {
				for x := 4*min(c, c2) + 1; x < 4*max(c, c2); x++ {
					grid[2*r][x] = '-'
				}
			} else {
				for y := 2*min(r, r2) + 1; y < 2*max(r, r2); y++ {
					grid[y][4*c] = '|'
				}
			}
		}
	}
	for p, rc := range domain.Layout {
		grid[2*rc[0]][4*rc[1]] = b[p].String()[0]
	}

	out := termenv.NewOutput(w)
	white := out.String("W").Bold().String()
	black := out.String("B").Foreground(out.Color("4")).Bold().String()
	pieces := strings.NewReplacer("W", white, "B", black)
	for y := range grid {
		fmt.Fprintln(w, pieces.Replace(strings.TrimRight(string(grid[y][:]), " ")))
	}
}

func winnerName(c domain.Color) string {
	if c == domain.None {
		return "none"
	}
	return c.String()
}
