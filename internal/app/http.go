package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/neuronote-backend/internal/config"
	"github.com/heartmarshall/neuronote-backend/internal/transport/middleware"
)

// newHTTPHandler wraps the router with the middleware stack, outermost first.
// A nil limiter disables rate limiting.
func newHTTPHandler(cors config.CORSConfig, logger *slog.Logger, limiter *middleware.RateLimiter, next http.Handler) http.Handler {
	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cors),
	}
	if limiter != nil {
		mws = append(mws, limiter.Limit())
	}
	return middleware.Chain(mws...)(next)
}

// newHTTPServer builds the server for cfg. Request contexts carry ctx's values
// but not its cancellation, so a shutdown signal lets in-flight requests finish.
func newHTTPServer(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *http.Server {
	base := context.WithoutCancel(ctx)
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		BaseContext:  func(net.Listener) context.Context { return base },
	}
}

// serve runs srv on ln until ctx is done, then drains in-flight requests
// for at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
