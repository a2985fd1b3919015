package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/heartmarshall/neuronote-backend/internal/adapter/postgres"
	cardrepo "github.com/heartmarshall/neuronote-backend/internal/adapter/postgres/card"
	deckrepo "github.com/heartmarshall/neuronote-backend/internal/adapter/postgres/deck"
	"github.com/heartmarshall/neuronote-backend/internal/adapter/postgres/memorystate"
	"github.com/heartmarshall/neuronote-backend/internal/config"
	"github.com/heartmarshall/neuronote-backend/internal/service/deck"
	"github.com/heartmarshall/neuronote-backend/internal/service/study"
	"github.com/heartmarshall/neuronote-backend/internal/transport/middleware"
	"github.com/heartmarshall/neuronote-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to the
// database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.SRS.Timezone),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	schema, closeSchema, err := postgres.NewMigrationProvider(pool)
	if err != nil {
		return err
	}
	defer func() { _ = closeSchema() }()

	txm := postgres.NewTxManager(pool)
	decks := deckrepo.New(pool)
	cards := cardrepo.New(pool)
	states := memorystate.New(pool)

	studySvc, err := study.NewService(logger, cards, states, decks, txm, cfg.SRS.ToDomain())
	if err != nil {
		return err
	}
	deckSvc := deck.NewService(logger, decks, cards, txm)

	router := rest.NewRouter(
		rest.NewHealthHandler(pool, schema, Version),
		rest.NewStudyHandler(studySvc, logger),
		rest.NewDeckHandler(deckSvc, logger),
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled() {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		defer limiter.Stop()
	}

	srv := newHTTPServer(ctx, cfg.Server, newHTTPHandler(cfg.CORS, logger, limiter, router), logger)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	logger.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))

	if err := serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger); err != nil {
		return err
	}

	logger.InfoContext(ctx, "application stopped")
	return nil
}
