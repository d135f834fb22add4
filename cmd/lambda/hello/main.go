package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"space-finder-api/internal/adapters/dynamo"
	"space-finder-api/internal/config"
	"space-finder-api/internal/hello"
	"space-finder-api/internal/logging"
)

var handler *hello.Handler

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger := logging.New(cfg.LogLevel, true)

	handler = hello.NewHandler(
		hello.NewConfig(cfg.Spaces.TableName),
		dynamo.NewTableProber(cfg.AWS),
		logger,
	)
}

func main() {
	awslambda.Start(handler.Handle)
}
