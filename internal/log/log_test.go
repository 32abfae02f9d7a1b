// internal/log/log_test.go
package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWithWriter_FileAndConsole(t *testing.T) {
	var file, console bytes.Buffer
	lg := NewWithWriter(&file, &console, slog.LevelDebug)

	lg.Debug("built", "bytes", 108)
	lg.Warnf("close failed: %s", "busy")

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSON records, got %d: %q", len(lines), file.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if rec["msg"] != "built" || rec["bytes"] != float64(108) {
		t.Fatalf("unexpected record %v", rec)
	}

	if strings.Contains(console.String(), "built") {
		t.Fatalf("debug records must not reach the console")
	}
	if !strings.Contains(console.String(), "close failed: busy") {
		t.Fatalf("warnings must reach the console: %q", console.String())
	}
}

func TestNewWithWriter_Level(t *testing.T) {
	var file bytes.Buffer
	lg := NewWithWriter(&file, nil, slog.LevelWarn)

	lg.Info("dropped")
	lg.Infof("dropped %d", 2)
	if file.Len() != 0 {
		t.Fatalf("info must be filtered at warn level: %q", file.String())
	}

	lg.Error("kept")
	if !strings.Contains(file.String(), "kept") {
		t.Fatalf("error record missing")
	}
}

func TestWith(t *testing.T) {
	var file bytes.Buffer
	lg := NewWithWriter(&file, nil, slog.LevelInfo).With("slot", 3)
	lg.Info("rendered")

	if !strings.Contains(file.String(), `"slot":3`) {
		t.Fatalf("attribute missing: %q", file.String())
	}
}

func TestNilLogger(t *testing.T) {
	var lg *Logger

	lg.Debug("x")
	lg.Debugf("x %d", 1)
	lg.Info("x")
	lg.Infof("x %d", 1)
	if lg.With("k", "v") != nil {
		t.Fatalf("With on nil must return nil")
	}
}
