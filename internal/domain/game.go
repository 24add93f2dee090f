package domain

import "fmt"

const (
	// PiecesPerSide is how many pieces each player places.
	PiecesPerSide = 9
	// lossThreshold is the piece count at which a side has lost: its
	// opponent has removed seven of its nine pieces.
	lossThreshold = 2
	// flyingThreshold is the piece count at which a side may move to any
	// empty point.
	flyingThreshold = 3
)

// Game holds the current state of a Nine Men's Morris match. The zero value
// is not ready for use; call New.
type Game struct {
	board   Board
	turn    Color
	placed  [2]int
	onBoard [2]int
	phase   Phase
	history []historyEntry
}

// New returns an empty game with White to move.
func New() Game {
	return Game{turn: White, phase: Phase{Kind: Placing}}
}

// Play validates and applies a. A rejected action leaves the game untouched.
func (g *Game) Play(a Action) error {
	if err := g.validate(a); err != nil {
		return err
	}
	g.apply(a)
	return nil
}

// Undo reverts the most recent accepted action, including a win it declared.
func (g *Game) Undo() error {
	n := len(g.history)
	if n == 0 {
		return ErrNothingToUndo
	}
	e := g.history[n-1]
	g.history = g.history[:n-1]
	e.revert(g)
	return nil
}

// Points returns a copy of the board.
func (g *Game) Points() Board { return g.board }

// Winner returns the winning side once the game is decided, None before.
func (g *Game) Winner() Color {
	if g.phase.Kind == GameOver {
		return g.phase.Color
	}
	return None
}

// Turn returns the side expected to act next.
func (g *Game) Turn() Color { return g.turn }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Placed returns how many pieces c has placed so far.
func (g *Game) Placed(c Color) int {
	if c == None {
		return 0
	}
	return g.placed[c.side()]
}

// OnBoard returns how many of c's pieces are on the board.
func (g *Game) OnBoard(c Color) int {
	if c == None {
		return 0
	}
	return g.onBoard[c.side()]
}

// Clone returns an independent copy, history included.
func (g *Game) Clone() Game {
	cp := *g
	cp.history = append([]historyEntry(nil), g.history...)
	return cp
}

// CanMove reports whether c has at least one legal Move on the current
// board, ignoring whose turn it is.
func (g *Game) CanMove(c Color) bool {
	if c == None {
		return false
	}
	flying := g.onBoard[c.side()] == flyingThreshold
	for p := Point(0); p < NumPoints; p++ {
		if g.board[p] != c {
			continue
		}
		if flying {
			return g.hasEmptyPoint()
		}
		for _, n := range adjacency[p] {
			if g.board[n] == None {
				return true
			}
		}
	}
	return false
}

func (g *Game) hasEmptyPoint() bool {
	for _, c := range g.board {
		if c == None {
			return true
		}
	}
	return false
}

// remaining counts c's pieces still in play, on the board or in hand.
func (g *Game) remaining(c Color) int {
	s := c.side()
	return g.onBoard[s] + PiecesPerSide - g.placed[s]
}

func (g *Game) validate(a Action) error {
	if g.phase.Kind == GameOver {
		return ErrGameOver
	}
	if a.Player != g.turn {
		return fmt.Errorf("%w: %s to act, got %s", ErrWrongPlayer, g.turn, a.Player)
	}
	if !a.To.Valid() {
		return fmt.Errorf("%w: point %d", ErrOutOfBounds, a.To)
	}
	if a.Kind == Move && !a.From.Valid() {
		return fmt.Errorf("%w: point %d", ErrOutOfBounds, a.From)
	}

	switch a.Kind {
	case Place:
		return g.checkPlace(a)
	case Move:
		return g.checkMove(a)
	case Remove:
		return g.checkRemove(a)
	default:
		return fmt.Errorf("%w: unknown action kind %d", ErrIllegalMove, a.Kind)
	}
}

func (g *Game) apply(a Action) {
	e := historyEntry{
		action:  a,
		phase:   g.phase,
		turn:    g.turn,
		placed:  g.placed,
		onBoard: g.onBoard,
	}
	before := g.board
	s := a.Player.side()

	switch a.Kind {
	case Place:
		e.record(a.To, g.board[a.To])
		g.board[a.To] = a.Player
		g.placed[s]++
		g.onBoard[s]++
		g.settle(a.Player, &before, a.To)
	case Move:
		e.record(a.From, g.board[a.From])
		e.record(a.To, g.board[a.To])
		g.board[a.From] = None
		g.board[a.To] = a.Player
		g.settle(a.Player, &before, a.To)
	case Remove:
		opp := a.Player.Opponent()
		e.record(a.To, g.board[a.To])
		g.board[a.To] = None
		g.onBoard[opp.side()]--
		g.turn = opp
		g.phase = g.basePhase()
		g.evaluateWin()
	}

	e.won = g.phase.Kind == GameOver
	g.history = append(g.history, e)
}

// settle finishes a Place or Move that put c's piece on to: either a removal
// is now owed, or the turn passes and the win conditions are checked.
func (g *Game) settle(c Color, before *Board, to Point) {
	if formsMill(before, &g.board, to, c) && g.onBoard[c.Opponent().side()] > 0 {
		g.phase = Phase{Kind: AwaitingRemoval, Color: c}
		return
	}
	g.turn = c.Opponent()
	g.phase = g.basePhase()
	g.evaluateWin()
}

// basePhase is the phase the game is in when no removal is owed.
func (g *Game) basePhase() Phase {
	if g.placed[0]+g.placed[1] < 2*PiecesPerSide {
		return Phase{Kind: Placing}
	}
	return Phase{Kind: Moving}
}

func (g *Game) evaluateWin() {
	for _, c := range [2]Color{White, Black} {
		if g.remaining(c) <= lossThreshold {
			g.phase = Phase{Kind: GameOver, Color: c.Opponent()}
			return
		}
	}
	if g.phase.Kind == Moving && !g.CanMove(g.turn) {
		g.phase = Phase{Kind: GameOver, Color: g.turn.Opponent()}
	}
}
