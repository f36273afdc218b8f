// Package app wires the store, service and router into one process-ready
// container shared by the HTTP server and the Lambda entrypoint.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/trivia-api/backend/internal/api"
	"github.com/trivia-api/backend/internal/domain/quiz"
	"github.com/trivia-api/backend/internal/infrastructure/config"
	"github.com/trivia-api/backend/internal/seed"
	"github.com/trivia-api/backend/internal/service"
	"github.com/trivia-api/backend/internal/store"
)

type Container struct {
	Store  store.Store
	Trivia *service.TriviaService
	Router http.Handler
}

func NewContainer(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*Container, error) {
	db, err := store.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.DatabaseDriver, err)
	}

	if cfg.SeedFile != "" {
		if err := applySeed(ctx, db, cfg.SeedFile, logger); err != nil {
			db.Close()
			return nil, err
		}
	}

	trivia := service.NewTriviaService(db, quiz.NewSelector(), logger)
	router := api.NewRouter(api.RouterConfig{
		Handler:        api.NewHandler(trivia, logger),
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	return &Container{
		Store:  db,
		Trivia: trivia,
		Router: router,
	}, nil
}

func (c *Container) Close() error {
	return c.Store.Close()
}

func applySeed(ctx context.Context, s store.Store, path string, logger logrus.FieldLogger) error {
	f, err := seed.Load(path)
	if err != nil {
		return err
	}
	res, err := seed.Apply(ctx, s, f)
	if err != nil {
		return fmt.Errorf("apply seed %s: %w", path, err)
	}
	logger.WithFields(logrus.Fields{
		"file":       path,
		"categories": res.Categories,
		"questions":  res.Questions,
	}).Info("seed applied")
	return nil
}
