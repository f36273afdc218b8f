package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/trivia-api/backend/internal/app"
	"github.com/trivia-api/backend/internal/infrastructure/config"

	_ "github.com/trivia-api/backend/docs"
)

func main() {
	cfg := config.MustLoad()
	logger := cfg.NewLogger()

	container, err := app.NewContainer(context.Background(), cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialise application")
	}
	defer container.Close()

	logger.WithField("driver", cfg.DatabaseDriver).Info("starting lambda handler")
	lambda.Start(httpadapter.New(container.Router).ProxyWithContext)
}
