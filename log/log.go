// Package log holds the process-wide zap logger. It is a no-op until
// Initialize is called, so library code and tests stay quiet.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Initialize installs a logger writing to stderr. debug selects the
// human-readable development encoder at debug level; otherwise JSON at info.
func Initialize(debug bool) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}

// Close flushes buffered entries. Sync errors on terminals are ignored.
func Close() {
	_ = logger.Sync()
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	return logger
}

// SetLogger replaces the logger, e.g. with zaptest or an observer in tests.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}
