package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaminalder/nine-mens-morris/internal/config"
)

// serveCommand returns the serve subcommand of a fresh root with args parsed.
func serveCommand(t *testing.T, args ...string) (*cobra.Command, *ServeOptions) {
	t.Helper()
	root := NewRootCommand()
	cmd, rest, err := root.Find(append([]string{"serve"}, args...))
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags(rest))
	return cmd, serveOpts(t, cmd)
}

// serveOpts recovers the options bound to cmd's flags.
func serveOpts(t *testing.T, cmd *cobra.Command) *ServeOptions {
	t.Helper()
	opts := &ServeOptions{RootOptions: &RootOptions{}}
	var err error
	opts.ConfigPath, err = cmd.Flags().GetString("config")
	require.NoError(t, err)
	opts.Addr, err = cmd.Flags().GetString("addr")
	require.NoError(t, err)
	opts.Heartbeat, err = cmd.Flags().GetDuration("heartbeat")
	require.NoError(t, err)
	opts.MaxGames, err = cmd.Flags().GetInt("max-games")
	require.NoError(t, err)
	opts.LogLevel, err = cmd.Flags().GetString("log-level")
	require.NoError(t, err)
	opts.Verbose, err = cmd.Flags().GetBool("verbose")
	require.NoError(t, err)
	return opts
}

func TestResolveConfigDefaults(t *testing.T) {
	cmd, opts := serveCommand(t)
	cfg, err := resolveConfig(opts, cmd)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nmm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9999\"\nmax_games: 10\nheartbeat: 3s\nlog_level: error\n"), 0644))

	cmd, opts := serveCommand(t, "--config", path, "--max-games", "2", "--log-level", "debug")
	cfg, err := resolveConfig(opts, cmd)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.Heartbeat)
	assert.Equal(t, 2, cfg.MaxGames)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestResolveConfigVerboseForcesDebug(t *testing.T) {
	cmd, opts := serveCommand(t, "-v")
	cfg, err := resolveConfig(opts, cmd)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestServeCommandBadConfig(t *testing.T) {
	_, err := execute(t, "serve", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "serve", "--max-games", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "max_games must not be negative")
}

func TestRunServeStopsWhenContextEnds(t *testing.T) {
	cfg := config.Default()
	cfg.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := &cobra.Command{}
	cmd.SetErr(io.Discard)
	require.NoError(t, runServe(ctx, cfg, cmd))
}
