// Command migrate manages the database schema with the embedded goose migrations.
//
// Usage: migrate [up|down|status|version]
//
// Exit codes: 0 = success, 1 = error, 2 = bad usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/neuronote-backend/internal/adapter/postgres"
	"github.com/heartmarshall/neuronote-backend/internal/app"
	"github.com/heartmarshall/neuronote-backend/internal/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [up|down|status|version]\n\n%s\n", os.Args[0], config.Usage())
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}
	switch command {
	case "up", "down", "status", "version":
	default:
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	provider, closeDB, err := postgres.NewMigrationProvider(pool)
	if err != nil {
		logger.Error("init migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = closeDB() }()

	if err := run(ctx, provider, command, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, provider *goose.Provider, command string, logger *slog.Logger) error {
	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			logger.Info("migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
		if len(results) == 0 {
			logger.Info("schema up to date")
		}
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("migration rolled back",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			attrs := []any{
				slog.Int64("version", s.Source.Version),
				slog.String("state", string(s.State)),
			}
			if !s.AppliedAt.IsZero() {
				attrs = append(attrs, slog.Time("applied_at", s.AppliedAt))
			}
			logger.Info("migration", attrs...)
		}
	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			return err
		}
		logger.Info("schema version", slog.Int64("version", v))
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
