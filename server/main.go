package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/shkotk/musiclib/server/config"
	"github.com/sirupsen/logrus"
)

func main() {
	// Files next to the binary win over workspace ones, godotenv never overrides.
	cfg, err := config.Load(".env.local", ".env", "server/.env.local", "server/.env")
	if err != nil {
		logrus.WithError(err).Fatal("Can't load config")
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := initializeApp(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Can't initialize app")
	}
	defer cleanup()

	if err := app.run(ctx); err != nil {
		logger.WithError(err).Error("HTTP server stopped")
	}
}
