package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "ckpoint.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", data)
	}
}

func TestInitReplacesLogFile(t *testing.T) {
	tempDir := t.TempDir()
	first := filepath.Join(tempDir, "first.log")
	second := filepath.Join(tempDir, "second.log")

	if err := Init(first); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogEvent("opening line")

	if err := Init(second); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogEvent("closing line")
	_ = Close()

	firstData, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read first log: %v", err)
	}
	if strings.Contains(string(firstData), "closing line") {
		t.Fatalf("expected first log detached before second line, got: %s", firstData)
	}
	secondData, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("read second log: %v", err)
	}
	if !strings.Contains(string(secondData), "closing line") {
		t.Fatalf("expected second log to carry the line, got: %s", secondData)
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close without file error: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("repeated Close error: %v", err)
	}
}
