package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/studiowebux/mensajero/internal/config"
)

func TestInit_NoFileIsNop(t *testing.T) {
	log, err := Init(config.Default())
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if log.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without a file should discard everything")
	}
}

func TestInit_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mensajero.log")
	cfg := config.Default()
	cfg.LogFile = path
	cfg.LogLevel = "debug"

	log, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	log.Debugw("request completed", "status", "200 OK")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	for _, want := range []string{`"msg":"request completed"`, `"status":"200 OK"`, `"level":"debug"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %s", line, want)
		}
	}
}

func TestInit_BadPath(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "dir", "x.log")

	if _, err := Init(cfg); err == nil {
		t.Error("expected error for unwritable log path")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestClose_WithoutFile(t *testing.T) {
	if _, err := Init(config.Default()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	// Second close is a no-op
	if err := Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
