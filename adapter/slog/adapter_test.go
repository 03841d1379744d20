package slogadapter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/rlog"
)

func entryAt(at time.Time, msg string, level rlog.Level) rlog.Entry {
	old := xclock.Default()
	defer xclock.SetDefault(old)
	xclock.SetDefault(xclock.NewFrozen(at))
	return rlog.NewEntry(msg, "window.go", "openWindow", 42, level)
}

func TestSlogObserver_JSONHandler_EmitsTSAndCallSite(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	o := New(slog.New(h))

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	o.Notify(entryAt(at, "opened", rlog.LevelVerbose))

	// Parse a single JSON line
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if gotTS, _ := m["ts"].(string); gotTS != at.Format(time.RFC3339Nano) {
		t.Fatalf("ts mismatch: got %q", gotTS)
	}
	if m["level"] != "DEBUG" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["msg"] != "opened" {
		t.Fatalf("msg mismatch: got %v", m["msg"])
	}
	// Slog JSON handler numbers become float64 in generic map
	if m["file"] != "window.go" || m["function"] != "openWindow" || m["line"] != float64(42) {
		t.Fatalf("call site mismatch: %v", m)
	}
}

func TestSlogObserver_RespectsHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	o := New(slog.New(h))

	o.Notify(entryAt(time.Unix(0, 0).UTC(), "hidden", rlog.LevelVerbose))
	if buf.Len() != 0 {
		t.Fatalf("debug entry written: %s", buf.String())
	}
	o.Notify(entryAt(time.Unix(0, 0).UTC(), "shown", rlog.LevelLog))
	if !strings.Contains(buf.String(), "level=INFO") || !strings.Contains(buf.String(), "msg=shown") {
		t.Fatalf("text output mismatch: %s", buf.String())
	}
}

func TestBuildTextFormat(t *testing.T) {
	var buf bytes.Buffer
	o := Build(Config{Writer: &buf, Format: FormatText})
	o.Notify(entryAt(time.Unix(0, 0).UTC(), "verbose text", rlog.LevelVerbose))
	if !strings.Contains(buf.String(), "level=DEBUG") {
		t.Fatalf("build did not default to debug level: %s", buf.String())
	}
}
