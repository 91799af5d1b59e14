// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestValidate checks configuration JSON against the schema across the
// accepted and rejected shapes: a complete valid document, wrong value types,
// unknown keys, and malformed JSON.
func TestValidate(t *testing.T) {
	valid := `{"debug": true, "logFile": "logs/ckpoint.log", "noColor": false}`
	if err := Validate([]byte(valid)); err != nil {
		t.Fatalf("Validate() with valid config failed: %v", err)
	}

	if err := Validate([]byte(`{}`)); err != nil {
		t.Fatalf("Validate() with empty object failed: %v", err)
	}

	wrongType := `{"debug": "yes"}`
	if err := Validate([]byte(wrongType)); err == nil {
		t.Fatal("Validate() with wrong value type should have failed")
	}

	unknownKey := `{"hosts": []}`
	if err := Validate([]byte(unknownKey)); err == nil {
		t.Fatal("Validate() with unknown key should have failed")
	}

	if err := Validate([]byte(`{"debug": tru`)); err == nil {
		t.Fatal("Validate() with malformed JSON should have failed")
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"debug": false}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := ValidateFile(path); err != nil {
		t.Fatalf("ValidateFile() with valid file failed: %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"debug": 3}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := ValidateFile(bad); err == nil {
		t.Fatal("ValidateFile() with invalid file should have failed")
	}

	if err := ValidateFile(filepath.Join(dir, "absent.json")); err != nil {
		t.Fatalf("ValidateFile() with missing file should be tolerated, got %v", err)
	}
}

func TestLogFilePath(t *testing.T) {
	cfg := Config{LogFile: "  logs/run.log  "}
	if got := cfg.LogFilePath(); got != "logs/run.log" {
		t.Fatalf("expected trimmed path, got %q", got)
	}
	if got := (Config{}).LogFilePath(); got != "" {
		t.Fatalf("expected empty path for unset log file, got %q", got)
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Debug: true, NoColor: true, LogFile: "run.log"}
	ShowConfig(&buf, "config/config.json", cfg, Config{})

	out := buf.String()
	for _, want := range []string{
		"Config file: config/config.json",
		"Debug:    true",
		"No Color: true",
		"Log File: run.log",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}

	buf.Reset()
	ShowConfig(&buf, "", nil, Config{Debug: true})
	out = buf.String()
	if !strings.Contains(out, "No config file loaded (using defaults).") {
		t.Fatalf("expected defaults notice, got:\n%s", out)
	}
	if !strings.Contains(out, "Debug:    true") {
		t.Fatalf("expected fallback values rendered, got:\n%s", out)
	}
	if !strings.Contains(out, "Log File: (stderr only)") {
		t.Fatalf("expected stderr-only log notice, got:\n%s", out)
	}
}
