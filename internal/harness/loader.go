package harness

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jaminalder/nine-mens-morris/internal/domain"
)

// LoadActions reads one action per line. Blank lines and '#' comments are
// skipped; parse errors carry the line number.
func LoadActions(r io.Reader) ([]domain.Action, error) {
	var actions []domain.Action
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		a, err := domain.ParseAction(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		actions = append(actions, a)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read actions: %w", err)
	}
	return actions, nil
}

// LoadActionsFile reads an action file from disk.
func LoadActionsFile(path string) ([]domain.Action, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	actions, err := LoadActions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return actions, nil
}
