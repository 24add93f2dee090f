package harness

import (
	"fmt"

	"github.com/jaminalder/nine-mens-morris/internal/domain"
)

// StepError reports the action that stopped a replay.
type StepError struct {
	// Index is the zero-based position of the action in the input.
	Index  int
	Action string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Action, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Replay plays actions through a fresh game and stops at the first rejected
// one. The returned game holds every action accepted before the failure.
func Replay(actions []domain.Action) (domain.Game, error) {
	g := domain.New()
	for i, a := range actions {
		if err := g.Play(a); err != nil {
			return g, &StepError{Index: i, Action: a.String(), Err: err}
		}
	}
	return g, nil
}

// VerifyUndo checks that undo exactly inverts play for every prefix of
// actions: after each prefix is undone the game must be undecided, and
// undoing the whole list must leave a fresh game.
func VerifyUndo(actions []domain.Action) error {
	g := domain.New()
	for i := range actions {
		for j := 0; j < i; j++ {
			if err := g.Undo(); err != nil {
				return fmt.Errorf("prefix %d: undo %d: %w", i, j+1, err)
			}
			if w := g.Winner(); w != domain.None {
				return fmt.Errorf("prefix %d: winner %s after undo %d", i, w, j+1)
			}
		}
		if g.Points() != (domain.Board{}) || len(g.History()) != 0 {
			return fmt.Errorf("prefix %d: board not empty after undoing", i)
		}
		for k, a := range actions[:i+1] {
			if err := g.Play(a); err != nil {
				return &StepError{Index: k, Action: a.String(), Err: err}
			}
		}
	}
	want, err := Replay(actions)
	if err != nil {
		return err
	}
	if g.Points() != want.Points() || g.Winner() != want.Winner() || g.Phase() != want.Phase() {
		return fmt.Errorf("final state after interleaved undo differs from a straight replay")
	}
	return nil
}
