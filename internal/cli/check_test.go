package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenariosDir = "../harness/testdata/scenarios"

func TestCheckCommandScenarioDir(t *testing.T) {
	out, err := execute(t, "check", scenariosDir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ flying\n")
	assert.Contains(t, out, "✓ mill_protection\n")
	assert.Contains(t, out, "Summary: 7 passed, 0 failed, 7 total")
}

func TestCheckCommandTrace(t *testing.T) {
	out, err := execute(t, "check", "--trace", filepath.Join(scenariosDir, "undo_to_empty.yaml"))
	require.NoError(t, err)
	golden, err := os.ReadFile("../harness/testdata/golden/undo_to_empty.golden")
	require.NoError(t, err)
	assert.Contains(t, out, string(golden))
}

func TestCheckCommandFailingScenario(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(`
name: bad
steps:
  - play: W P 0
  - play: W P 1
expect:
  winner: W
`), 0644))

	out, err := execute(t, "check", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ bad")
	assert.Contains(t, out, "step 2 (play W P 1): expected ok, got wrong_player")
	assert.Contains(t, out, "winner: expected W, got none")
	assert.Contains(t, out, "Summary: 0 passed, 1 failed, 1 total")
}

func TestCheckCommandJSON(t *testing.T) {
	out, err := execute(t, "check", "--format", "json", scenariosDir)
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 7, resp.Data.Total)
	assert.Equal(t, 7, resp.Data.Passed)
	for _, s := range resp.Data.Scenarios {
		assert.True(t, s.Pass, s.Name)
		assert.Empty(t, s.Trace, s.Name)
	}
}

func TestCheckCommandMissingPath(t *testing.T) {
	_, err := execute(t, "check", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenario path not found")
}

func TestCheckCommandMalformedScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: broken\nsteps:\n  - play: W Z 0\n"), 0644))

	_, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
