package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaminalder/nine-mens-morris/internal/app"
	"github.com/jaminalder/nine-mens-morris/internal/config"
	"github.com/jaminalder/nine-mens-morris/internal/web"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	ConfigPath string
	Addr       string
	Heartbeat  time.Duration
	MaxGames   int
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web host",
		Long: `Serve games over HTTP. Two browsers opening the same game URL take
the White and Black seats; further visitors watch.

Flags override values read from --config.

Examples:
  nmm serve
  nmm serve --addr 127.0.0.1:9000 --max-games 100
  nmm serve --config nmm.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts, cmd)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}
			return runServe(cmd.Context(), cfg, cmd)
		},
	}

	d := config.Default()
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&opts.Addr, "addr", d.Addr, "listen address")
	cmd.Flags().DurationVar(&opts.Heartbeat, "heartbeat", d.Heartbeat, "server-sent events keep-alive interval")
	cmd.Flags().IntVar(&opts.MaxGames, "max-games", d.MaxGames, "maximum number of live games (0 = unbounded)")

	return cmd
}

// resolveConfig loads the config file and applies explicitly set flags.
func resolveConfig(opts *ServeOptions, cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = opts.Addr
	}
	if flags.Changed("heartbeat") {
		cfg.Heartbeat = opts.Heartbeat
	}
	if flags.Changed("max-games") {
		cfg.MaxGames = opts.MaxGames
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runServe(ctx context.Context, cfg config.Config, cmd *cobra.Command) error {
	lvl, err := cfg.Level()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	logger := newLogger(cmd.ErrOrStderr(), lvl)

	svc := app.NewService()
	svc.SetLogger(logger)
	svc.SetMaxGames(cfg.MaxGames)
	handler := web.NewServer(svc, web.WithHeartbeat(cfg.Heartbeat), web.WithLogger(logger))

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to listen", err)
	}
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	logger.Info().Str("addr", ln.Addr().String()).Int("max_games", cfg.MaxGames).Msg("serving")

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("shutdown incomplete")
		return err
	}
	return nil
}
