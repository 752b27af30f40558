// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Provides structured logging with level support for the client and CLI

package logrus

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	entry *logrus.Entry
}

// NewLogger creates a logger writing text output to out at the given level
// ("debug", "info", "warn", "error"). An empty level means info.
func NewLogger(level string, out io.Writer) (*Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	if level == "" {
		level = "info"
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(lvl)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return New(base), nil
}

// New wraps an existing logrus logger
func New(base *logrus.Logger) *Logger {
	return &Logger{entry: logrus.NewEntry(base)}
}

// WithField returns a logger that always logs the given field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.withFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.withFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.withFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.withFields(fields).Error(msg)
}

func (l *Logger) withFields(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	return l.entry.WithFields(logrus.Fields(fields))
}
