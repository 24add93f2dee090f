package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jaminalder/nine-mens-morris/internal/domain"
)

// Scenario is a named sequence of play and undo steps with expectations on
// the outcome of each step and on the final state.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps run in order against a fresh game.
	Steps []Step `yaml:"steps"`

	// Expect is checked after the last step.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Step is either a play (an action in the engine grammar) or an undo.
type Step struct {
	Play string `yaml:"play,omitempty"`
	Undo bool   `yaml:"undo,omitempty"`

	// Error names the rule error the step must fail with, e.g.
	// "protected_by_mill". Empty means the step must succeed.
	Error string `yaml:"error,omitempty"`
}

// Label renders the step for traces.
func (s Step) Label() string {
	if s.Undo {
		return "undo"
	}
	return "play " + strings.Join(strings.Fields(s.Play), " ")
}

// Expect holds expectations on the final state. Empty fields are not
// checked.
type Expect struct {
	// Winner is "W", "B" or "none".
	Winner string `yaml:"winner,omitempty"`
	// Turn is "W" or "B".
	Turn string `yaml:"turn,omitempty"`
	// Phase is the phase string, e.g. "moving" or "awaiting-removal(W)".
	Phase string `yaml:"phase,omitempty"`
	// Points maps point indexes to "W", "B" or ".".
	Points map[int]string `yaml:"points,omitempty"`
}

// ParseScenario decodes a YAML scenario and checks it is well formed.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadScenarios reads every *.yaml and *.yml file in dir, sorted by name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	out := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %s: no steps", s.Name)
	}
	for i, st := range s.Steps {
		if st.Undo == (st.Play != "") {
			return fmt.Errorf("scenario %s step %d: exactly one of play or undo is required", s.Name, i+1)
		}
		if st.Play != "" {
			if _, err := domain.ParseAction(st.Play); err != nil {
				return fmt.Errorf("scenario %s step %d: %w", s.Name, i+1, err)
			}
		}
		if st.Error != "" && errorByName(st.Error) == nil {
			return fmt.Errorf("scenario %s step %d: unknown error %q", s.Name, i+1, st.Error)
		}
	}
	if s.Expect != nil {
		for p, v := range s.Expect.Points {
			if !domain.Point(p).Valid() {
				return fmt.Errorf("scenario %s: point %d out of range", s.Name, p)
			}
			if _, ok := colorByName(v); !ok || v == "none" {
				return fmt.Errorf("scenario %s: point %d: bad content %q", s.Name, p, v)
			}
		}
	}
	return nil
}

// ErrorName returns the snake_case name of the rule error err wraps, or ""
// for nil and non-rule errors.
func ErrorName(err error) string {
	k := domain.Kind(err)
	if k == nil {
		return ""
	}
	return strings.ReplaceAll(k.Error(), " ", "_")
}

func errorByName(name string) error {
	for _, k := range domain.RuleErrors {
		if strings.ReplaceAll(k.Error(), " ", "_") == name {
			return k
		}
	}
	return nil
}

func colorByName(s string) (domain.Color, bool) {
	switch s {
	case "W":
		return domain.White, true
	case "B":
		return domain.Black, true
	case ".", "none":
		return domain.None, true
	default:
		return domain.None, false
	}
}
