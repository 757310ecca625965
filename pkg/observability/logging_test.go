package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestInitLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Level: "info", Format: "json", Writer: &buf})

	logger.Info("simulation started", "periods", 24)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "simulation started" {
		t.Errorf("msg = %v, want %q", entry["msg"], "simulation started")
	}
	if entry["periods"] != float64(24) {
		t.Errorf("periods = %v, want 24", entry["periods"])
	}
}

func TestInitLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Level: "debug", Format: "text", Writer: &buf})

	logger.Debug("rate resolved", "rate", "0.12")

	out := buf.String()
	if !strings.Contains(out, "rate resolved") {
		t.Errorf("missing message in output: %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("expected text output, got JSON-looking line: %q", out)
	}
}

func TestInitLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Level: "warn", Format: "json", Writer: &buf})

	logger.Info("filtered out")
	if buf.Len() != 0 {
		t.Errorf("info log should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn log should be emitted at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
