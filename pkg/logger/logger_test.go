package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWithOutput_JSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	InitWithOutput(&buf)

	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}

	Log.WithField("component", "test").Debug("hello")
	if !strings.Contains(buf.String(), `"component":"test"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestInitWithOutput_BadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "shouting")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	InitWithOutput(&buf)

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
}

func TestComponent_AddsField(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	InitWithOutput(&buf)

	Component("tick_engine").Info("Tick completed.")
	if !strings.Contains(buf.String(), "component=tick_engine") {
		t.Errorf("expected component field in text output, got %q", buf.String())
	}
}
