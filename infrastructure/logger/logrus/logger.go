// ABOUTME: Logrus-backed implementation of the Logger interface
// ABOUTME: Provides leveled structured logging with optional JSON output

package logrus

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger implements the interfaces.Logger contract on top of logrus
type Logger struct {
	log *logrus.Logger
}

// Options configures the logger
type Options struct {
	// Level is the minimum level to emit: debug, info, warn, error.
	// Defaults to info.
	Level string

	// JSON switches the formatter to JSON output for log aggregation.
	JSON bool
}

// NewLogger creates a logrus-backed logger
func NewLogger(opts Options) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return &Logger{log: log}
}

// Debug logs a debug message with structured fields
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
