package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"space-finder-api/internal/config"
	"space-finder-api/internal/logging"
	"space-finder-api/internal/monitor"
)

var notifier *monitor.Notifier

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	notifier = monitor.NewNotifier(cfg.Monitor, nil, logging.New(cfg.LogLevel, true))
}

func main() {
	awslambda.Start(notifier.HandleSNS)
}
