package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerWritesToStoreAndWriter(t *testing.T) {
	logger := NewLogger()
	var buf bytes.Buffer
	logger.SetWriter(&buf)

	logger.Infof("hello %s", "world")
	logger.Successf("done")
	logger.Errorf("boom")

	entries := logger.Store().GetAll()
	if len(entries) != 3 {
		t.Fatalf("store has %d entries, want 3", len(entries))
	}
	if entries[0].Level != LevelInfo || entries[0].Message != "hello world" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Level != LevelSuccess {
		t.Errorf("second entry level = %v, want LevelSuccess", entries[1].Level)
	}
	if entries[2].Level != LevelError {
		t.Errorf("third entry level = %v, want LevelError", entries[2].Level)
	}

	out := buf.String()
	if !strings.Contains(out, "hello world") || !strings.Contains(out, "ERROR") {
		t.Errorf("writer output missing content: %q", out)
	}
}

func TestLoggerDebugGating(t *testing.T) {
	logger := NewLogger()
	logger.Debugf("hidden")
	if logger.Store().Len() != 0 {
		t.Error("debug entry stored while debug is disabled")
	}

	logger.SetDebug(true)
	logger.Debugf("visible")
	if logger.Store().Len() != 1 {
		t.Error("debug entry not stored while debug is enabled")
	}
}

func TestLogLevelString(t *testing.T) {
	cases := map[LogLevel]string{
		LevelDebug:   "DEBUG",
		LevelInfo:    "INFO",
		LevelSuccess: "OK",
		LevelWarn:    "WARN",
		LevelError:   "ERROR",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}
