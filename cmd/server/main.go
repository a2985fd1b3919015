// Command server runs the spaced-repetition HTTP API.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and environment
// variables; run with -h to list them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/neuronote-backend/internal/app"
	"github.com/heartmarshall/neuronote-backend/internal/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n\n%s\n", os.Args[0], config.Usage())
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("application failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
