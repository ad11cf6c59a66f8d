package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedactsEmail(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewWithCore(core)

	l.Info("profile created", "parent_email", "mom@example.com", "grade", 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if got := ctx["parent_email"]; got != "m***@example.com" {
		t.Errorf("parent_email = %v, want m***@example.com", got)
	}
	if got := ctx["grade"]; got != int64(3) {
		t.Errorf("grade = %v (%T), want 3", got, got)
	}
}

func TestRedact(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"kid@school.org", "k***@school.org"},
		{"not-an-email", "[REDACTED]"},
		{"@nolocal", "[REDACTED]"},
		{"", "[REDACTED]"},
		{42, "[REDACTED]"},
	}
	for _, tt := range tests {
		if got := redact(tt.in); got != tt.want {
			t.Errorf("redact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeKVs_OddLength(t *testing.T) {
	got := sanitizeKVs([]any{"a", 1, "dangling"})
	if len(got) != 3 || got[2] != "dangling" {
		t.Fatalf("unexpected %v", got)
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := New(Options{Mode: "prod", Level: "info", File: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Debug("hidden")
	l.Info("visible", "key", "value")
	l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "visible") || strings.Contains(out, "hidden") {
		t.Errorf("unexpected log output: %s", out)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error")
	}
}
