package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogLevel = "info"

// ParseLevel reads a level name, falling back to info for empty or unknown
// names. LOG_LEVEL in the environment takes precedence over raw.
func ParseLevel(raw string) zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if env := strings.TrimSpace(os.Getenv("LOG_LEVEL")); env != "" {
		raw = env
	}
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(raw)))); err != nil {
		_ = level.UnmarshalText([]byte(defaultLogLevel))
	}
	return level
}

// New builds a JSON zap logger. Output goes to stderr, plus path when set;
// the terminal host passes a path only, since stderr belongs to the screen.
func New(level, path string, stderr bool) (*zap.Logger, error) {
	var outputs []string
	if stderr {
		outputs = append(outputs, "stderr")
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		outputs = append(outputs, path)
	}
	if len(outputs) == 0 {
		return zap.NewNop(), nil
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "message",
		TimeKey:    "timestamp",
		LevelKey:   "severity",
		NameKey:    "logger",
		EncodeTime: zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		EncodeName:    zapcore.FullNameEncoder,
		CallerKey:     "caller",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		StacktraceKey: "stacktrace",
	}

	cfg := zap.Config{
		Level:             ParseLevel(level),
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     false,
		DisableStacktrace: true,
	}

	return cfg.Build()
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
