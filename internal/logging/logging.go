package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger configured for the deployment mode. Lambda output goes
// to CloudWatch, which indexes JSON lines; local runs get human readable text.
func New(level string, serverless bool) *logrus.Logger {
	return NewWithOutput(os.Stdout, level, serverless)
}

// NewWithOutput is New with an explicit sink
func NewWithOutput(out io.Writer, level string, serverless bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if serverless {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}
