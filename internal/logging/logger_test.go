package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"multitube/internal/config"
	"multitube/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.File = true

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("file message")

	content, err := os.ReadFile(cfg.LogFilePath())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "file message") {
		t.Fatalf("expected message in log file, got %q", content)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, logging.Options{Format: "console", Level: "debug"})
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	logger.Debug("message with caller")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerPromotesComponentAndSubject(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, logging.Options{Format: "console", Level: "info"})
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	logger = logging.NewComponentLogger(logger, "store")
	logger.Info("channel muted",
		logging.String(logging.FieldGroupID, "g1"),
		logging.String(logging.FieldChannelID, "dQw4w9WgXcQ"),
		logging.String("reason", "two words"))

	line := buf.String()
	for _, want := range []string{
		"INFO  store: channel muted",
		"[group=g1 channel=dQw4w9WgXcQ]",
		`reason="two words"`,
	} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be promoted, got %q", line)
	}
}

func TestJSONLoggerUsesCompactKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, logging.Options{Format: "json", Level: "info"})
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	logger.Warn("snapshot write failed", logging.Error(errors.New("disk full")))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["level"] != "warn" {
		t.Fatalf("expected lowercase level, got %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", payload)
	}
	if payload["error"] != "disk full" {
		t.Fatalf("expected error text, got %v", payload["error"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.NewWithWriter(&bytes.Buffer{}, logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, logging.Options{Format: "json", Level: "info"})
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	logging.WarnWithContext(logger, "snapshot dropped", "snapshot_save_failed",
		logging.String(logging.FieldImpact, "changes not persisted"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if payload[logging.FieldEventType] != "snapshot_save_failed" {
		t.Fatalf("unexpected event_type: %v", payload[logging.FieldEventType])
	}
	if payload[logging.FieldErrorHint] == nil {
		t.Fatal("expected default error hint")
	}
	if payload[logging.FieldImpact] != "changes not persisted" {
		t.Fatalf("expected caller impact preserved, got %v", payload[logging.FieldImpact])
	}
}

func TestErrorWithContextKeepsHintAndAddsEventType(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, logging.Options{Format: "json", Level: "info"})
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	logging.ErrorWithContext(logger, "storage unavailable", "storage_open_failed",
		logging.String(logging.FieldErrorHint, "check storage.backend"),
		logging.Error(errors.New("locked")))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if payload["level"] != "error" {
		t.Fatalf("expected error level, got %v", payload["level"])
	}
	if payload[logging.FieldEventType] != "storage_open_failed" {
		t.Fatalf("unexpected event_type: %v", payload[logging.FieldEventType])
	}
	if payload[logging.FieldErrorHint] != "check storage.backend" {
		t.Fatalf("expected caller hint preserved, got %v", payload[logging.FieldErrorHint])
	}
	if _, ok := payload[logging.FieldImpact]; ok {
		t.Fatal("error logs should not get a default impact")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(t.Context(), 12) {
		t.Fatal("nop logger should not be enabled")
	}
	logging.WarnWithContext(nil, "ignored", "noop")
	logging.ErrorWithContext(nil, "ignored", "noop")
}
