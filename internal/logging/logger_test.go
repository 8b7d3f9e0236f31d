package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range tests {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewWritesJSONByDefault(t *testing.T) {
	var output bytes.Buffer
	New(&output, "info", "").Info("sales recorded", "brand", "gilbert", "count", 2)

	var record map[string]any
	if err := json.Unmarshal(output.Bytes(), &record); err != nil {
		t.Fatalf("expected json log line, got %q: %v", output.String(), err)
	}
	if record["msg"] != "sales recorded" || record["brand"] != "gilbert" {
		t.Fatalf("unexpected record %#v", record)
	}
}

func TestNewTextFormatAndLevelFilter(t *testing.T) {
	var output bytes.Buffer
	logger := New(&output, "warn", "text")
	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(output.String(), "hidden") {
		t.Fatalf("expected info to be filtered, got %q", output.String())
	}
	if !strings.Contains(output.String(), "msg=shown") {
		t.Fatalf("expected text record, got %q", output.String())
	}
}
