// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger construction, level filtering, contextual
//              fields and clone isolation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.level != LevelInfo {
		t.Errorf("New() level = %v, want %v", logger.level, LevelInfo)
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.level != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.level, LevelError)
	}
	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}
	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")
	logger.Error("also visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected messages below warn to be filtered, got %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "also visible") {
		t.Errorf("Expected warn and error messages, got %q", out)
	}
}

func TestLogger_OutputFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf, Name: "parser"})

	logger.Debug("tokens classified", Fields{"count": 7, "argv": true})

	out := buf.String()
	if !strings.Contains(out, "DBG parser: tokens classified") {
		t.Errorf("Expected level, name and message, got %q", out)
	}
	// Fields render sorted by key.
	if !strings.Contains(out, "argv=true count=7") {
		t.Errorf("Expected sorted fields, got %q", out)
	}
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelDebug, Output: &buf})

	child := base.WithField("component", "engine")
	child.Info("started")

	if !strings.Contains(buf.String(), "component=engine") {
		t.Errorf("Expected the context field in output, got %q", buf.String())
	}

	// Entry fields override context fields of the same key.
	buf.Reset()
	child.Info("shadowed", Fields{"component": "matcher"})
	if !strings.Contains(buf.String(), "component=matcher") {
		t.Errorf("Expected the entry field to win, got %q", buf.String())
	}
}

func TestLogger_ClonesAreIsolated(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelDebug, Output: &buf})

	one := base.WithField("side", "one")
	two := base.WithField("side", "two")

	buf.Reset()
	one.Info("ping")
	if !strings.Contains(buf.String(), "side=one") || strings.Contains(buf.String(), "side=two") {
		t.Errorf("Expected clone isolation, got %q", buf.String())
	}

	buf.Reset()
	base.Info("ping")
	if strings.Contains(buf.String(), "side=") {
		t.Errorf("Expected the base logger to stay free of clone fields, got %q", buf.String())
	}

	_ = two
}

func TestLogger_WithLevelAndName(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelError, Output: &buf})

	verbose := base.WithLevel(LevelDebug).WithName("cli")
	verbose.Debug("now visible")

	if !strings.Contains(buf.String(), "DBG cli: now visible") {
		t.Errorf("Expected the clone to log at debug, got %q", buf.String())
	}

	buf.Reset()
	base.Debug("still hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected the base logger to keep its error level, got %q", buf.String())
	}
}

func TestSetDefault(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelDebug, Output: &buf, Name: "default"}))

	GetDefault().Debug("through the default")
	if !strings.Contains(buf.String(), "through the default") {
		t.Errorf("Expected output through the replaced default logger, got %q", buf.String())
	}
}
