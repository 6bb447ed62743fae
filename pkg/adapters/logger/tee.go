package logger

import (
	"github.com/user/framegrab/pkg/ports"
)

// TeeLogger fans log messages out to multiple loggers.
type TeeLogger struct {
	loggers []ports.Logger
}

// NewTee creates a logger that forwards every message to all given loggers.
func NewTee(loggers ...ports.Logger) *TeeLogger {
	return &TeeLogger{loggers: loggers}
}

// Debug logs a debug message to all loggers.
func (l *TeeLogger) Debug(msg string, args ...interface{}) {
	for _, logger := range l.loggers {
		logger.Debug(msg, args...)
	}
}

// Info logs an informational message to all loggers.
func (l *TeeLogger) Info(msg string, args ...interface{}) {
	for _, logger := range l.loggers {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning message to all loggers.
func (l *TeeLogger) Warn(msg string, args ...interface{}) {
	for _, logger := range l.loggers {
		logger.Warn(msg, args...)
	}
}

// Error logs an error message to all loggers.
func (l *TeeLogger) Error(msg string, args ...interface{}) {
	for _, logger := range l.loggers {
		logger.Error(msg, args...)
	}
}

// WithComponent returns a tee over component-scoped views of each logger.
func (l *TeeLogger) WithComponent(component string) ports.Logger {
	scoped := make([]ports.Logger, len(l.loggers))
	for i, logger := range l.loggers {
		scoped[i] = logger.WithComponent(component)
	}
	return &TeeLogger{loggers: scoped}
}

// Ensure TeeLogger implements ports.Logger
var _ ports.Logger = (*TeeLogger)(nil)
