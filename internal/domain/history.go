package domain

// cellChange remembers what a point held before an action touched it.
type cellChange struct {
	point Point
	prev  Color
}

// historyEntry captures the minimal state needed to undo one action. At most
// two cells change per action (a Move).
type historyEntry struct {
	action  Action
	cells   [2]cellChange
	n       int
	phase   Phase
	turn    Color
	placed  [2]int
	onBoard [2]int
	won     bool
}

func (e *historyEntry) record(p Point, prev Color) {
	e.cells[e.n] = cellChange{point: p, prev: prev}
	e.n++
}

func (e *historyEntry) revert(g *Game) {
	for i := e.n - 1; i >= 0; i-- {
		g.board[e.cells[i].point] = e.cells[i].prev
	}
	g.phase = e.phase
	g.turn = e.turn
	g.placed = e.placed
	g.onBoard = e.onBoard
}

// Step describes one accepted action for audit logs.
type Step struct {
	Action Action
	// Won is set when this action decided the game.
	Won bool
}

// History returns the accepted actions with the outcome each produced.
func (g *Game) History() []Step {
	out := make([]Step, len(g.history))
	for i, e := range g.history {
		out[i] = Step{Action: e.action, Won: e.won}
	}
	return out
}
