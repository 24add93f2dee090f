package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionKind says what an action does.
type ActionKind uint8

const (
	Place ActionKind = iota
	Move
	Remove
)

func (k ActionKind) String() string {
	switch k {
	case Place:
		return "P"
	case Move:
		return "M"
	case Remove:
		return "R"
	default:
		return "?"
	}
}

// Action is one player action. From is only used by Move; Place and Remove
// act on To.
type Action struct {
	Player Color
	Kind   ActionKind
	From   Point
	To     Point
}

// PlaceAt builds a Place action.
func PlaceAt(c Color, p Point) Action { return Action{Player: c, Kind: Place, To: p} }

// MoveTo builds a Move action.
func MoveTo(c Color, from, to Point) Action {
	return Action{Player: c, Kind: Move, From: from, To: to}
}

// RemoveAt builds a Remove action.
func RemoveAt(c Color, p Point) Action { return Action{Player: c, Kind: Remove, To: p} }

// String formats the action in the textual grammar, e.g. "B M 0 1".
func (a Action) String() string {
	if a.Kind == Move {
		return fmt.Sprintf("%s M %d %d", a.Player, a.From, a.To)
	}
	return fmt.Sprintf("%s %s %d", a.Player, a.Kind, a.To)
}

// ParseAction parses "<W|B> P <point>", "<W|B> M <from> <to>" or
// "<W|B> R <point>". Points are not range checked here; the engine reports
// ErrOutOfBounds for them.
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return Action{}, &ParseError{Input: s, Reason: "expected at least 3 fields"}
	}
	var a Action
	switch fields[0] {
	case "W":
		a.Player = White
	case "B":
		a.Player = Black
	default:
		return Action{}, &ParseError{Input: s, Reason: fmt.Sprintf("unknown player %q", fields[0])}
	}

	want := 3
	switch fields[1] {
	case "P":
		a.Kind = Place
	case "M":
		a.Kind = Move
		want = 4
	case "R":
		a.Kind = Remove
	default:
		return Action{}, &ParseError{Input: s, Reason: fmt.Sprintf("unknown action %q", fields[1])}
	}
	if len(fields) != want {
		return Action{}, &ParseError{Input: s, Reason: fmt.Sprintf("expected %d fields, got %d", want, len(fields))}
	}

	pts := make([]Point, 0, 2)
	for _, f := range fields[2:] {
		n, err := strconv.ParseUint(f, 10, 31)
		if err != nil {
			return Action{}, &ParseError{Input: s, Reason: fmt.Sprintf("invalid point %q", f)}
		}
		pts = append(pts, Point(n))
	}
	if a.Kind == Move {
		a.From, a.To = pts[0], pts[1]
	} else {
		a.To = pts[0]
	}
	return a, nil
}

// MustParseAction is like ParseAction but panics on error. It is meant for
// tests and fixed tables.
func MustParseAction(s string) Action {
	a, err := ParseAction(s)
	if err != nil {
		panic(err)
	}
	return a
}
