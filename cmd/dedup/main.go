package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fightpulse/fighter-dedup/internal/app"
	"github.com/fightpulse/fighter-dedup/internal/config"
	"github.com/fightpulse/fighter-dedup/internal/interfaces/cli"
	"github.com/fightpulse/fighter-dedup/internal/observability"
	"github.com/fightpulse/fighter-dedup/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(os.Stderr, cfg.LogLevel)
	defer logger.Sync()
	logging.SetDefault(logger)

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownUptrace(ctx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		return 1
	}
	defer func() {
		if err := stopPyroscope(); err != nil {
			logger.Warn("stop pyroscope", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("close app", "error", err)
		}
	}()

	handler := cli.NewHandler(application.Detect, application.Merge, cfg, logger, os.Stdout, os.Stderr)

	return handler.Run(ctx, os.Args[1:])
}
