package domain

import "fmt"

func (g *Game) checkPlace(a Action) error {
	if g.phase.Kind != Placing {
		return fmt.Errorf("%w: not in placing phase (%s)", ErrIllegalPlace, g.phase)
	}
	if g.placed[a.Player.side()] >= PiecesPerSide {
		return fmt.Errorf("%w: %s has placed all pieces", ErrIllegalPlace, a.Player)
	}
	if g.board[a.To] != None {
		return fmt.Errorf("%w: point %d is occupied", ErrIllegalPlace, a.To)
	}
	return nil
}

func (g *Game) checkMove(a Action) error {
	if g.phase.Kind != Moving {
		return fmt.Errorf("%w: not in moving phase (%s)", ErrIllegalMove, g.phase)
	}
	if g.board[a.From] != a.Player {
		return fmt.Errorf("%w: no %s piece on %d", ErrIllegalMove, a.Player, a.From)
	}
	if g.board[a.To] != None {
		return fmt.Errorf("%w: point %d is occupied", ErrIllegalMove, a.To)
	}
	if g.onBoard[a.Player.side()] != flyingThreshold && !Adjacent(a.From, a.To) {
		return fmt.Errorf("%w: %d is not adjacent to %d", ErrIllegalMove, a.To, a.From)
	}
	return nil
}

func (g *Game) checkRemove(a Action) error {
	if g.phase.Kind != AwaitingRemoval {
		return fmt.Errorf("%w: no removal pending (%s)", ErrIllegalRemove, g.phase)
	}
	opp := a.Player.Opponent()
	if g.board[a.To] != opp {
		return fmt.Errorf("%w: no %s piece on %d", ErrIllegalRemove, opp, a.To)
	}
	if inMill(&g.board, a.To) && hasPieceOutsideMill(&g.board, opp) {
		return fmt.Errorf("%w: point %d", ErrProtectedByMill, a.To)
	}
	return nil
}

// formsMill reports whether a line through p belongs entirely to c on after
// but did not on before.
func formsMill(before, after *Board, p Point, c Color) bool {
	for _, i := range millsThrough[p] {
		if lineOwnedBy(after, mills[i], c) && !lineOwnedBy(before, mills[i], c) {
			return true
		}
	}
	return false
}
