package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"space-finder-api/internal/config"
	"space-finder-api/internal/handlers"
	"space-finder-api/internal/logging"
	"space-finder-api/pkg/lambda"
)

var logger *logrus.Logger

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger = logging.New(cfg.LogLevel, true)

	if err := lambda.GetConnectionManager().Initialize(context.Background(), cfg, logger); err != nil {
		logger.WithError(err).Error("Failed to initialize container, retrying on first request")
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to get container")
		return internalServerError(), nil
	}

	spaceHandler := handlers.NewSpaceHandler(container.SpaceService, logger)

	resp, err := spaceHandler.Handle(ctx, lambda.FromAPIGateway(event))
	if err != nil || resp == nil {
		logger.WithError(err).Error("Space handler failed")
		return internalServerError(), nil
	}

	return resp.ToAPIGateway(), nil
}

func internalServerError() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"message":"Internal Server Error"}`,
	}
}

func main() {
	awslambda.Start(handler)
}
