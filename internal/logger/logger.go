package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/studiowebux/mensajero/internal/config"
)

// current and file are flushed and released by Close
var (
	current *zap.Logger
	file    *os.File
)

// Init builds a JSON logger writing to cfg.LogFile. The terminal UI owns
// stdout, so an empty LogFile yields a no-op logger.
func Init(cfg *config.Config) (*zap.SugaredLogger, error) {
	if cfg == nil || cfg.LogFile == "" {
		return zap.NewNop().Sugar(), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(f)),
		ParseLevel(cfg.LogLevel),
	)

	file = f
	current = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return current.Sugar(), nil
}

// ParseLevel maps a config level name to a zap level, defaulting to info
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Close flushes buffered entries and releases the log file opened by Init.
func Close() error {
	if current != nil {
		_ = current.Sync()
		current = nil
	}
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}
