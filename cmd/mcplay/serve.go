package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gstoney/mcplay"
	"github.com/gstoney/mcplay/config"
	"github.com/gstoney/mcplay/metrics"
)

func serveCmd() *cobra.Command {
	var (
		configFile  string
		envFiles    []string
		addr        string
		logLevel    string
		metricsAddr string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the server",
		Long: `Run the server until interrupted.

Configuration is layered: built-in defaults, then the TOML file given
with --config, then .env files and MCPLAY_* environment variables, then
flags given on the command line.

Examples:
  mcplay serve
  mcplay serve --config=mcplay.toml
  mcplay serve --addr=127.0.0.1:25565 --log-level=debug --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configFile != "" {
				var err error
				if cfg, err = config.Load(configFile); err != nil {
					return err
				}
			}

			// .env in the working directory is optional, explicit ones are not.
			if err := config.LoadEnvFiles(true, ".env"); err != nil {
				return err
			}
			if err := config.LoadEnvFiles(false, envFiles...); err != nil {
				return err
			}
			if err := cfg.ApplyEnv(); err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Server.Addr = addr
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("metrics-addr") {
				cfg.Metrics.Addr = metricsAddr
			}
			if flags.Changed("pretty") {
				cfg.Log.Pretty = pretty
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "Extra .env files to load")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default 0.0.0.0:25565)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve /metrics and /healthz on this address")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Human readable console logs")

	return cmd
}

func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, _ := zerolog.ParseLevel(cfg.Level)

	var log zerolog.Logger
	if cfg.Pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}

func runServe(ctx context.Context, cfg *config.Config) error {
	log := newLogger(cfg.Log)

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := metrics.New()
	if cfg.Metrics.Addr != "" {
		hs := &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           m.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info().Str("addr", hs.Addr).Msg("metrics listening")
			if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("metrics server")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			hs.Shutdown(shutdownCtx)
		}()
	}

	opts, err := mcplay.NewOptions(cfg, log, m)
	if err != nil {
		return err
	}

	log.Info().
		Str("version", version).
		Str("brand", cfg.Server.Brand).
		Int("protocol", cfg.Status.Protocol).
		Stringer("gamemode", opts.World.Gamemode).
		Msg("starting")

	srv := &mcplay.Server{Addr: cfg.Server.Addr, Options: opts}
	return srv.ListenAndServe(ctx)
}
