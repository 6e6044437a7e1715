package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/shkotk/musiclib/server/config"
	"github.com/shkotk/musiclib/server/controllers"
	"github.com/shkotk/musiclib/server/repositories"
	"github.com/shkotk/musiclib/server/router"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

var appSet = wire.NewSet(
	provideDB,
	repositories.NewSongRepository,
	provideSongController,
	router.New,
	newApp,
)

type app struct {
	cfg    config.Config
	logger *logrus.Logger
	router *gin.Engine
}

func newApp(cfg config.Config, logger *logrus.Logger, engine *gin.Engine) *app {
	return &app{cfg, logger, engine}
}

// Serves HTTP until ctx is cancelled, then shuts the server down gracefully.
func (a *app) run(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.WithField("addr", server.Addr).Info("Starting HTTP server")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func newLogger(cfg config.Config) *logrus.Logger {
	logger := logrus.New()
	if !cfg.Debug {
		logger.SetOutput(os.Stdout)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	// Level is validated by config.
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	return logger
}

func provideDB(cfg config.Config, logger *logrus.Logger) (*gorm.DB, func(), error) {
	gormLogLevel := gormlogger.Warn
	logParameterizedQueries := true
	if cfg.Debug {
		gormLogLevel = gormlogger.Info
		logParameterizedQueries = false
	}

	db, err := gorm.Open(postgres.Open(cfg.PGConnString), &gorm.Config{
		Logger: gormlogger.New(
			logger.WithField("component", "gorm"),
			gormlogger.Config{
				SlowThreshold:        200 * time.Millisecond,
				LogLevel:             gormLogLevel,
				ParameterizedQueries: logParameterizedQueries,
			}),
	})
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			logger.WithError(err).Warn("Can't close DB connection pool")
		}
	}

	return db, cleanup, nil
}

func provideSongController(
	cfg config.Config,
	logger *logrus.Logger,
	songRepository *repositories.SongRepository,
) *controllers.SongController {
	return controllers.NewSongController(logger, songRepository, cfg.Debug)
}
