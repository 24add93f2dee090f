package domain

import "fmt"

// PhaseKind enumerates the states of the turn machine.
type PhaseKind uint8

const (
	Placing PhaseKind = iota
	Moving
	AwaitingRemoval
	GameOver
)

func (k PhaseKind) String() string {
	switch k {
	case Placing:
		return "placing"
	case Moving:
		return "moving"
	case AwaitingRemoval:
		return "awaiting-removal"
	case GameOver:
		return "game-over"
	default:
		return fmt.Sprintf("phase(%d)", uint8(k))
	}
}

// Phase is the current state of the turn machine. Color is the player who
// owes a removal for AwaitingRemoval and the winner for GameOver; it is None
// otherwise.
type Phase struct {
	Kind  PhaseKind
	Color Color
}

func (p Phase) String() string {
	switch p.Kind {
	case AwaitingRemoval, GameOver:
		return fmt.Sprintf("%s(%s)", p.Kind, p.Color)
	default:
		return p.Kind.String()
	}
}
