package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clipmeta/internal/config"
	"clipmeta/internal/logging"
)

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "INFO – message without caller") {
		t.Fatalf("unexpected console header: %q", buf.String())
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("message with caller")

	if !strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestJSONLoggerRenamesKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf, RunID: "run-1"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("json message", logging.String(logging.FieldFilename, "clip.mp4"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if entry["level"] != "warn" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
	if entry["msg"] != "json message" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", entry)
	}
	if entry[logging.FieldRunID] != "run-1" {
		t.Fatalf("expected run id, got %v", entry[logging.FieldRunID])
	}
	if entry[logging.FieldFilename] != "clip.mp4" {
		t.Fatalf("expected filename attr, got %v", entry[logging.FieldFilename])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "invalid", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected info threshold, got %q", buf.String())
	}
}

func TestNewFromConfigHonoursLevelAndFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "clipmeta.log")

	var buf bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &buf, "run-2", "")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Warn("below threshold")
	logger.Error("above threshold")

	if strings.Contains(buf.String(), "below threshold") {
		t.Fatalf("warn should be filtered at error level, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "above threshold") {
		t.Fatalf("expected error log, got %q", buf.String())
	}

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"above threshold"`) || !strings.Contains(string(content), `"run_id":"run-2"`) {
		t.Fatalf("expected JSON copy in log file, got %q", content)
	}
}

func TestNewFromConfigLevelOverride(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &buf, "", "debug")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("debug visible")
	if !strings.Contains(buf.String(), "debug visible") {
		t.Fatalf("expected override to enable debug, got %q", buf.String())
	}
}

func TestNewComponentLoggerTagsHeader(t *testing.T) {
	var buf bytes.Buffer
	base, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(base, "scan").Info("walking")
	if !strings.Contains(buf.String(), "INFO [scan] – walking") {
		t.Fatalf("expected component in header, got %q", buf.String())
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "clip skipped", "parse_failed", logging.String(logging.FieldErrorHint, "rename the file"))

	out := buf.String()
	if !strings.Contains(out, `"event_type":"parse_failed"`) {
		t.Fatalf("expected event_type default, got %q", out)
	}
	if !strings.Contains(out, `"error_hint":"rename the file"`) {
		t.Fatalf("expected caller hint to be kept, got %q", out)
	}
	if strings.Count(out, "error_hint") != 1 {
		t.Fatalf("expected a single error_hint, got %q", out)
	}
}

func TestRunIDRoundTripsThroughContext(t *testing.T) {
	id := logging.NewRunID()
	if len(id) != 36 {
		t.Fatalf("expected uuid string, got %q", id)
	}
	ctx := logging.WithRunID(t.Context(), id)
	got, ok := logging.RunIDFromContext(ctx)
	if !ok || got != id {
		t.Fatalf("RunIDFromContext = %q, %v", got, ok)
	}
	if _, ok := logging.RunIDFromContext(t.Context()); ok {
		t.Fatal("expected no run id on bare context")
	}
}
