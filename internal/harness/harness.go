package harness

import (
	"bytes"
	"fmt"

	"github.com/jaminalder/nine-mens-morris/internal/domain"
)

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq     int    `json:"seq"`
	Step    string `json:"step"`
	Outcome string `json:"outcome"`
	Phase   string `json:"phase"`
	Turn    string `json:"turn"`
}

// Result is the outcome of running a scenario.
type Result struct {
	Scenario string       `json:"scenario"`
	Trace    []TraceEvent `json:"trace"`
	Winner   string       `json:"winner"`
	Board    string       `json:"board"`
	// Failures lists every expectation that did not hold.
	Failures []string `json:"failures,omitempty"`
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool { return len(r.Failures) == 0 }

// Text renders the trace deterministically, one step per line.
func (r *Result) Text() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "scenario: %s\n", r.Scenario)
	for _, ev := range r.Trace {
		fmt.Fprintf(&b, "%d %s -> %s [%s, %s]\n", ev.Seq, ev.Step, ev.Outcome, ev.Phase, ev.Turn)
	}
	fmt.Fprintf(&b, "winner: %s\n", r.Winner)
	fmt.Fprintf(&b, "board: %s\n", r.Board)
	return b.Bytes()
}

// BoardString renders the board as 24 characters, one per point.
func BoardString(b domain.Board) string {
	var sb bytes.Buffer
	for _, c := range b {
		sb.WriteString(c.String())
	}
	return sb.String()
}

func winnerName(c domain.Color) string {
	if c == domain.None {
		return "none"
	}
	return c.String()
}

// Run executes s against a fresh game. Step outcomes and final-state
// expectations that do not hold are collected in Result.Failures; an error is
// returned only for a scenario that cannot be executed at all.
func Run(s *Scenario) (*Result, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	g := domain.New()
	res := &Result{Scenario: s.Name}

	for i, st := range s.Steps {
		var err error
		if st.Undo {
			err = g.Undo()
		} else {
			a, perr := domain.ParseAction(st.Play)
			if perr != nil {
				return nil, &StepError{Index: i, Action: st.Play, Err: perr}
			}
			err = g.Play(a)
		}

		outcome := "ok"
		if err != nil {
			outcome = ErrorName(err)
			if outcome == "" {
				return nil, &StepError{Index: i, Action: st.Label(), Err: err}
			}
		}
		want := st.Error
		if want == "" {
			want = "ok"
		}
		if outcome != want {
			res.Failures = append(res.Failures, fmt.Sprintf("step %d (%s): expected %s, got %s", i+1, st.Label(), want, outcome))
		}
		res.Trace = append(res.Trace, TraceEvent{
			Seq:     i + 1,
			Step:    st.Label(),
			Outcome: outcome,
			Phase:   g.Phase().String(),
			Turn:    g.Turn().String(),
		})
	}

	res.Winner = winnerName(g.Winner())
	res.Board = BoardString(g.Points())
	if s.Expect != nil {
		res.Failures = append(res.Failures, checkExpect(&g, s.Expect)...)
	}
	return res, nil
}

func checkExpect(g *domain.Game, e *Expect) []string {
	var failures []string
	if e.Winner != "" {
		if got := winnerName(g.Winner()); got != e.Winner {
			failures = append(failures, fmt.Sprintf("winner: expected %s, got %s", e.Winner, got))
		}
	}
	if e.Turn != "" {
		if got := g.Turn().String(); got != e.Turn {
			failures = append(failures, fmt.Sprintf("turn: expected %s, got %s", e.Turn, got))
		}
	}
	if e.Phase != "" {
		if got := g.Phase().String(); got != e.Phase {
			failures = append(failures, fmt.Sprintf("phase: expected %s, got %s", e.Phase, got))
		}
	}
	pts := g.Points()
	for p := domain.Point(0); p < domain.NumPoints; p++ {
		v, ok := e.Points[int(p)]
		if !ok {
			continue
		}
		want, _ := colorByName(v)
		if pts[p] != want {
			failures = append(failures, fmt.Sprintf("point %d: expected %s, got %s", p, want, pts[p]))
		}
	}
	return failures
}
