package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithOutput(t *testing.T) {
	t.Run("ServerlessUsesJSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithOutput(&buf, "debug", true)
		logger.WithField("table", "spaces").Info("probe")

		var entry map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
		}
		if entry["msg"] != "probe" || entry["table"] != "spaces" {
			t.Errorf("Unexpected log entry: %v", entry)
		}
		if logger.GetLevel() != logrus.DebugLevel {
			t.Errorf("Expected debug level, got %v", logger.GetLevel())
		}
	})

	t.Run("InvalidLevelFallsBackToInfo", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithOutput(&buf, "loud", false)
		if logger.GetLevel() != logrus.InfoLevel {
			t.Errorf("Expected info level, got %v", logger.GetLevel())
		}
		logger.Info("hello")
		if !strings.Contains(buf.String(), "msg=hello") {
			t.Errorf("Expected text formatted output, got %q", buf.String())
		}
	})
}
