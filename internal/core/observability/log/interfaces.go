package log

import "go.uber.org/zap"

// Log is the logging surface the engine depends on. Fields are zap
// fields directly; the indirection exists so tests and library users can
// swap the backend (or Nop) without touching call sites.
type Log interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	With(fields ...zap.Field) Log
}
