package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/TLATER/mcshader-lsp/internal/config"
)

func TestLoggerForConfigLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	logger := loggerFor(&buf, cfg, "", "")
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("config logging.level=debug did not reach the logger")
	}

	logger.Debug("engine ready")
	line := buf.String()
	if !strings.HasPrefix(line, "{") {
		t.Errorf("logging.format=json produced non-JSON output: %q", line)
	}
	if !strings.Contains(line, `"msg":"engine ready"`) {
		t.Errorf("missing message in output: %q", line)
	}
}

func TestLoggerForLevelPrecedence(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "error"

	tests := []struct {
		name  string
		env   string
		flag  string
		level slog.Level
		want  bool
	}{
		{"config alone", "", "", slog.LevelWarn, false},
		{"env overrides config", "debug", "", slog.LevelDebug, true},
		{"flag overrides env", "debug", "error", slog.LevelWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := loggerFor(io.Discard, cfg, tt.env, tt.flag)
			if got := logger.Enabled(context.Background(), tt.level); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestLoggerForDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := loggerFor(&buf, config.DefaultConfig(), "", "")

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default level should be info")
	}

	logger.Info("ready")
	if strings.HasPrefix(buf.String(), "{") {
		t.Errorf("default format should be human, got %q", buf.String())
	}
}
