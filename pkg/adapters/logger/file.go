package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/framegrab/pkg/ports"
)

// FileLogger appends log lines to a file. Each line carries a timestamp
// and level so the log survives as a record of the extraction run.
type FileLogger struct {
	mu        *sync.Mutex
	file      *os.File
	level     ports.LogLevel
	component string
}

// NewFile creates a file logger appending to the given path.
func NewFile(path string, level ports.LogLevel) (*FileLogger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &FileLogger{
		mu:    &sync.Mutex{},
		file:  file,
		level: level,
	}, nil
}

// Debug logs a debug message.
func (l *FileLogger) Debug(msg string, args ...interface{}) {
	if l.level > ports.LevelDebug {
		return
	}
	l.log("DEBUG", msg, args...)
}

// Info logs an informational message.
func (l *FileLogger) Info(msg string, args ...interface{}) {
	if l.level > ports.LevelInfo {
		return
	}
	l.log("INFO", msg, args...)
}

// Warn logs a warning message.
func (l *FileLogger) Warn(msg string, args ...interface{}) {
	if l.level > ports.LevelWarn {
		return
	}
	l.log("WARNING", msg, args...)
}

// Error logs an error message.
func (l *FileLogger) Error(msg string, args ...interface{}) {
	if l.level > ports.LevelError {
		return
	}
	l.log("ERROR", msg, args...)
}

// WithComponent returns a logger that prefixes messages with the component name.
// The underlying file handle is shared.
func (l *FileLogger) WithComponent(component string) ports.Logger {
	return &FileLogger{
		mu:        l.mu,
		file:      l.file,
		level:     l.level,
		component: component,
	}
}

// Close flushes and closes the log file.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

func (l *FileLogger) log(level, msg string, args ...interface{}) {
	translated := l10n.F(msg, args...)
	if l.component != "" {
		translated = fmt.Sprintf("[%s] %s", l.component, translated)
	}
	line := fmt.Sprintf("%s - %s - %s\n", time.Now().Format("2006-01-02 15:04:05"), level, translated)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.file.WriteString(line)
}

// Ensure FileLogger implements ports.Logger
var _ ports.Logger = (*FileLogger)(nil)
