package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/trivia-api/backend/internal/app"
	"github.com/trivia-api/backend/internal/infrastructure/config"

	_ "github.com/trivia-api/backend/docs" // generated swagger docs
)

// @title           Trivia API
// @version         1.0
// @description     Trivia question catalog: browse, search, add and delete questions, and play quizzes.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.MustLoad()
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialise application")
	}
	defer container.Close()

	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           container.Router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"address": cfg.ServerAddress,
			"driver":  cfg.DatabaseDriver,
		}).Info("starting server")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("server failed to start")
			container.Close()
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
	}
}
