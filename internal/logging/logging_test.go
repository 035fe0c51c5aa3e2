package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"ERROR":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Info("match enriched", "match", "granada-away", "moments", 3)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected valid JSON, got %v\noutput: %s", err, buf.String())
	}
	if m["msg"] != "match enriched" {
		t.Errorf("msg = %q, want 'match enriched'", m["msg"])
	}
	if m["match"] != "granada-away" {
		t.Errorf("match = %q, want granada-away", m["match"])
	}
}

func TestTextHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Info("run complete", "patterns", 2)

	out := buf.String()
	if !strings.Contains(out, "msg=\"run complete\"") {
		t.Errorf("text output missing message: %s", out)
	}
	if !strings.Contains(out, "patterns=2") {
		t.Errorf("text output missing attribute: %s", out)
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Debug("per-match detail")
	if buf.Len() != 0 {
		t.Errorf("debug line leaked at info level: %s", buf.String())
	}
}
