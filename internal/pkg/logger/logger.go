package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

// Config selects level and encoding of the zap backed logger.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a Logger on top of zap.
func New(cfg Config) (Logger, error) {
	var zapConfig zap.Config
	if cfg.Format == "json" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(parsed)

	// Skip the wrapper so the caller is the service line, not this file.
	z, err := zapConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &zapLogger{sugar: z.Sugar()}, nil
}

// NewNop returns a logger that discards everything. Used by tests.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// Error logs an error message together with the causing error, if any.
func (l *zapLogger) Error(msg string, err error) {
	if err != nil {
		l.sugar.Errorw(msg, "error", err)
		return
	}
	l.sugar.Error(msg)
}

// Warn logs a warning message.
func (l *zapLogger) Warn(msg string) {
	l.sugar.Warn(msg)
}

// Info logs an informational message.
func (l *zapLogger) Info(msg string) {
	l.sugar.Info(msg)
}

// Debug logs a debug message.
func (l *zapLogger) Debug(msg string) {
	l.sugar.Debug(msg)
}

// Sync flushes buffered entries of loggers created by New.
func Sync(l Logger) error {
	if zl, ok := l.(*zapLogger); ok {
		return zl.sugar.Sync()
	}
	return nil
}
