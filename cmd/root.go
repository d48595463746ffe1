package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/okian/fairway/internal/adapters/live"
	"github.com/okian/fairway/internal/adapters/roster"
	app "github.com/okian/fairway/internal/app"
	"github.com/okian/fairway/internal/config"
	"github.com/okian/fairway/pkg/logger"
)

var version = "dev"

// runtimeEnv is filled by the root command before any subcommand runs.
type runtimeEnv struct {
	cfg *config.Config
	log logger.Logger
}

func newRootCommand() *cobra.Command {
	env := &runtimeEnv{}

	cmd := &cobra.Command{
		Use:   "fairway",
		Short: "Fantasy golf pool standings",
		Long: `Fairway computes season standings for a fantasy golf pool.

Teams and their weekly picks are read from a Google Sheet and merged with the
live PGA Tour leaderboard. Configuration comes from GOLF_* environment
variables, optionally preloaded from .env files, and an optional YAML file
named by GOLF_CONFIG.`,
		Version:      version,
		SilenceUsage: true,
	}

	envFiles := cmd.PersistentFlags().StringSlice("env-file", []string{".env"}, "dotenv files to load before reading configuration")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loadEnvFiles(*envFiles)
		return env.init(cmd.Context(), cmd.ErrOrStderr())
	}

	cmd.AddCommand(newServeCommand(env))
	cmd.AddCommand(newStandingsCommand(env))

	return cmd
}

// execute runs the CLI with a context cancelled on SIGINT/SIGTERM.
func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return newRootCommand().ExecuteContext(ctx)
}

// loadEnvFiles loads dotenv files; a missing file is not an error and
// variables already set in the environment win.
func loadEnvFiles(files []string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

func (e *runtimeEnv) init(ctx context.Context, logOut io.Writer) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithWriter(logOut)); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	e.cfg = cfg
	e.log = log
	return nil
}

// newService wires the roster and live sources from configuration.
func (e *runtimeEnv) newService() *app.Service {
	cfg := e.cfg
	return app.New(
		app.WithLogger(e.log.Named("service")),
		app.WithSheetID(cfg.SheetID),
		app.WithRosterSource(roster.NewSheetsSource(
			roster.WithLogger(e.log.Named("roster")),
			roster.WithSheetName(cfg.SheetName),
			roster.WithCredentialsFile(cfg.Credentials),
			roster.WithCredentialsBase64(cfg.CredentialsB64),
			roster.WithLayout(roster.Layout{
				TournamentRow: cfg.TournamentRow,
				HeaderRow:     cfg.HeaderRow,
				DataStartRow:  cfg.DataStartRow,
				NameCol:       cfg.NameCol,
			}),
		)),
		app.WithLiveSource(live.NewESPNClient(
			live.WithLogger(e.log.Named("live")),
			live.WithURL(cfg.LiveFeedURL),
			live.WithTimeout(cfg.LiveTimeout()),
		)),
	)
}
