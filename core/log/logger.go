// File: logger.go
// Title: Structured Logger Implementation
// Description: Implements a small structured logger with leveled output,
//              contextual fields and named sub-loggers. Configuration
//              methods return clones so context never leaks between
//              components sharing a base logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial structured logger

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fields carries structured context attached to a log entry
type Fields map[string]interface{}

// Logger is a leveled, structured logger. All configuration methods return
// clones; a Logger value is safe for concurrent use.
type Logger struct {
	level  Level
	output io.Writer
	name   string

	// Context fields added to every entry of this logger
	contextFields Fields

	mutex sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration: info level, text
// output to stderr.
func New() *Logger {
	return &Logger{
		level:         LevelInfo,
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
	}
	if logger.output == nil {
		logger.output = os.Stderr
	}
	return logger
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	defaultMutex  sync.Mutex
)

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	defaultOnce.Do(func() {
		defaultMutex.Lock()
		defer defaultMutex.Unlock()
		if defaultLogger == nil {
			defaultLogger = New()
		}
	})
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *Logger) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
}

// WithLevel returns a clone with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithName returns a clone with the given logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithOutput returns a clone writing to the given destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	return clone
}

// WithField returns a clone with one additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a clone with additional context fields
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for key, value := range fields {
		clone.contextFields[key] = value
	}
	return clone
}

// Trace logs a message at trace level
func (l *Logger) Trace(msg string, fields ...Fields) {
	l.log(LevelTrace, msg, fields...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(msg string, fields ...Fields) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(msg string, fields ...Fields) {
	l.log(LevelError, msg, fields...)
}

func (l *Logger) clone() *Logger {
	fields := make(Fields, len(l.contextFields))
	for key, value := range l.contextFields {
		fields[key] = value
	}
	return &Logger{
		level:         l.level,
		output:        l.output,
		name:          l.name,
		contextFields: fields,
	}
}

func (l *Logger) log(level Level, msg string, fields ...Fields) {
	if level < l.level {
		return
	}

	merged := make(Fields, len(l.contextFields))
	for key, value := range l.contextFields {
		merged[key] = value
	}
	for _, extra := range fields {
		for key, value := range extra {
			merged[key] = value
		}
	}

	var b strings.Builder
	b.WriteString(time.Now().Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(level.ShortString())
	if l.name != "" {
		b.WriteByte(' ')
		b.WriteString(l.name)
	}
	b.WriteString(": ")
	b.WriteString(msg)

	// Stable field order keeps output diffable.
	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, " %s=%v", key, merged[key])
	}
	b.WriteByte('\n')

	l.mutex.Lock()
	defer l.mutex.Unlock()
	io.WriteString(l.output, b.String())
}
