// Command seed applies a YAML file of categories and starter questions to
// the configured store and exits.
package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/trivia-api/backend/internal/infrastructure/config"
	"github.com/trivia-api/backend/internal/seed"
	"github.com/trivia-api/backend/internal/store"
)

func main() {
	cfg := config.MustLoad()
	logger := cfg.NewLogger()

	path := flag.String("file", cfg.SeedFile, "YAML seed file")
	flag.Parse()
	if *path == "" {
		*path = "seed/trivia.yaml"
	}

	f, err := seed.Load(*path)
	if err != nil {
		logger.WithError(err).Fatal("failed to load seed file")
	}

	db, err := store.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	res, err := seed.Apply(context.Background(), db, f)
	if err != nil {
		db.Close()
		logger.WithError(err).Fatal("seed failed")
	}
	logger.WithFields(logrus.Fields{
		"file":       *path,
		"categories": res.Categories,
		"questions":  res.Questions,
	}).Info("seed applied")
}
