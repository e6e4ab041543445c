package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)

	Info("jackpot contribution applied", "jackpot_id", "jp-1", "pool_version", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}

	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}

	if logEntry["msg"] != "jackpot contribution applied" {
		t.Errorf("Unexpected msg %v", logEntry["msg"])
	}

	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}

	if logEntry["jackpot_id"] != "jp-1" {
		t.Errorf("Expected jackpot_id=jp-1, got %v", logEntry["jackpot_id"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	Debug("hidden")
	Info("hidden")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("Expected warn to be written, got %q", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("Expected empty request id, got %s", got)
	}

	ctx := WithRequestID(context.Background(), "test-req-123")
	if requestID := GetRequestID(ctx); requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)
	FromContext(ctx).Info("with id")

	if !strings.Contains(buf.String(), `"request_id":"test-req-123"`) {
		t.Errorf("Expected request_id attribute, got %s", buf.String())
	}
}

func TestConfigLevels(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"warning": "WARN",
		"ERROR":   "ERROR",
		"bogus":   "INFO",
	}
	for in, want := range cases {
		if got := (Config{Level: in}).LogLevel().String(); got != want {
			t.Errorf("LogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()

	if !config.IsJSON() {
		t.Errorf("Expected JSON format in prod, got %s", config.Format)
	}

	if config.Environment != EnvironmentProduction {
		t.Errorf("Expected prod environment, got %s", config.Environment)
	}

	if config.AddSource {
		t.Error("Expected AddSource=false in production")
	}
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()

	if config.IsJSON() {
		t.Errorf("Expected text format in dev, got %s", config.Format)
	}

	if !config.AddSource {
		t.Error("Expected AddSource=true in development")
	}

	if DefaultConfig().ServiceName != DefaultServiceName {
		t.Error("Expected default service name")
	}
}
