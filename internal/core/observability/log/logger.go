package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Log = (*Logger)(nil)

// Logger is the zap-backed Log implementation.
type Logger struct {
	zapLogger *zap.Logger
}

// New builds a JSON logger writing to stderr at the given level.
func New(level zapcore.Level) *Logger {
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	zapLogger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return &Logger{zapLogger: zapLogger}
}

// NewDevelopment builds a human-readable console logger for interactive
// binaries.
func NewDevelopment(level zapcore.Level) *Logger {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableCaller = true

	zapLogger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return &Logger{zapLogger: zapLogger}
}

// Nop returns a logger that discards everything.
func Nop() *Logger { return &Logger{zapLogger: zap.NewNop()} }

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zapLogger.Debug(msg, fields...) }

func (l *Logger) Info(msg string, fields ...zap.Field) { l.zapLogger.Info(msg, fields...) }

func (l *Logger) Warn(msg string, fields ...zap.Field) { l.zapLogger.Warn(msg, fields...) }

func (l *Logger) Error(msg string, fields ...zap.Field) { l.zapLogger.Error(msg, fields...) }

func (l *Logger) With(fields ...zap.Field) Log {
	return &Logger{zapLogger: l.zapLogger.With(fields...)}
}

// Sync flushes buffered entries; callers should defer it in main.
func (l *Logger) Sync() error { return l.zapLogger.Sync() }
