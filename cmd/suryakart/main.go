package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/levenlabs/go-lflag"
	"github.com/suryakart/suryakart/pkg/calculator"
	"github.com/suryakart/suryakart/pkg/catalog"
	"github.com/suryakart/suryakart/pkg/log"
	"github.com/suryakart/suryakart/pkg/server"
	"github.com/suryakart/suryakart/pkg/storage"
)

func main() {
	// init packages
	s := storage.Configured()
	products := catalog.Configured(s)
	calculators := calculator.Configured()

	// init server
	srv := server.Configured(calculators, products)

	// parse flags
	lflag.Configure()

	level := log.ConfigureFromLLog()
	slog.Debug("logger configured", slog.String("level", level.String()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// If initialization inside lflag.Do failed, we wouldn't be here (panic).
	defer func() {
		if err := s.Close(); err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to close storage", "error", err)
		}
	}()

	// Run will block until context is canceled or error happens
	if err := srv.Run(ctx); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "server failed", "error", err)
		os.Exit(1)
	}
	log.Ctx(ctx).InfoContext(ctx, "server exited cleanly")
}
