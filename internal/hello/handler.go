// Package hello implements the diagnostic hello function: it echoes a summary
// of the API Gateway request and checks that the spaces table is reachable.
package hello

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultMessage is the greeting returned in every response body
	DefaultMessage = "Hello from Python Lambda!"
	// DefaultRuntime is the runtime label returned in every response body
	DefaultRuntime = "Python 3.12"

	unknown = "Unknown"
)

// Config is the handler configuration, populated once by the host
type Config struct {
	TableName string
	Message   string
	Runtime   string
}

// NewConfig returns a Config for the given table with the default labels
func NewConfig(tableName string) Config {
	return Config{
		TableName: tableName,
		Message:   DefaultMessage,
		Runtime:   DefaultRuntime,
	}
}

// ProbeResult is the outcome of acquiring a handle to the configured table.
// Handle describes the table when Err is nil.
type ProbeResult struct {
	Handle string
	Err    error
}

// Prober acquires a handle to a named table
type Prober interface {
	Probe(ctx context.Context, tableName string) ProbeResult
}

// Handler serves hello invocations
type Handler struct {
	config Config
	prober Prober
	logger *logrus.Logger
}

// NewHandler creates a new hello handler. prober may be nil when no table is configured.
func NewHandler(cfg Config, prober Prober, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	if cfg.Message == "" {
		cfg.Message = DefaultMessage
	}
	if cfg.Runtime == "" {
		cfg.Runtime = DefaultRuntime
	}
	return &Handler{
		config: cfg,
		prober: prober,
		logger: logger,
	}
}

// Handle logs the event, probes the table when one is configured and returns
// the request summary. The status is always 200; only a failure to serialize
// the event is returned as an error.
func (h *Handler) Handle(ctx context.Context, event map[string]interface{}) (events.APIGatewayProxyResponse, error) {
	eventJSON, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("failed to serialize event: %w", err)
	}
	h.logger.Infof("Event: %s", eventJSON)
	h.logger.Infof("Context: %s", describeContext(ctx))

	tableName := h.config.TableName
	if tableName != "" {
		h.checkTable(ctx, tableName)
	}

	body, err := json.Marshal(ResponseBody{
		Message:   h.config.Message,
		TableName: tableName,
		Runtime:   h.config.Runtime,
		EventInfo: NewEventInfo(event),
	})
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("failed to serialize response: %w", err)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers:    ResponseHeaders(),
		Body:       string(body),
	}, nil
}

// checkTable probes the table and logs the outcome. The result is dropped on
// purpose: the response never depends on it.
func (h *Handler) checkTable(ctx context.Context, tableName string) {
	if h.prober == nil {
		h.logger.Errorf("Error connecting to DynamoDB: no table client configured for %s", tableName)
		return
	}

	result := h.prober.Probe(ctx, tableName)
	if result.Err != nil {
		h.logger.Errorf("Error connecting to DynamoDB: %s", result.Err.Error())
		return
	}

	h.logger.Infof("Connected to table: %s", tableName)
	h.logger.Infof("DynamoDB table resource: %s", result.Handle)
}

func describeContext(ctx context.Context) string {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return "<nil>"
	}
	return fmt.Sprintf("%+v", *lc)
}
