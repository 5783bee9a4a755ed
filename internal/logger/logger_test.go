package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestLevelFiltering(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	Debug("hidden")
	Info("hidden too")
	Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestRunIDContext(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "text"}, &buf)

	id := GenerateRunID()
	require.Len(t, id, 36)

	ctx := WithRunID(context.Background(), id)
	assert.Equal(t, id, GetRunID(ctx))
	assert.Equal(t, "", GetRunID(context.Background()))

	FromContext(ctx).Info("with run")
	assert.True(t, strings.Contains(buf.String(), "run_id="+id))
}

func TestConfigLevels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel())
		})
	}
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		format     string
		env        string
		wantJSON   bool
		wantSource bool
	}{
		{"prod json", "info", "json", EnvironmentProduction, true, false},
		{"prod debug adds source", "debug", "JSON", EnvironmentProduction, true, true},
		{"dev text", "info", "text", EnvironmentDev, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.level, tt.format, DefaultServiceName, DefaultVersion, tt.env)
			assert.Equal(t, tt.wantJSON, cfg.IsJSON())
			assert.Equal(t, tt.wantSource, cfg.AddSource)
			assert.Equal(t, DefaultServiceName, cfg.ServiceName)
		})
	}
}
