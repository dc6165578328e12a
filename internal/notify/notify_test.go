package notify

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifierLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := NewLogNotifier(zap.New(core))
	ctx := context.Background()

	n.Notify(ctx, Success("Task completed", "Write report"))
	n.Notify(ctx, Error("Sign-in failed", "invalid auth code"))
	n.Notify(ctx, Info("Synced", ""))

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	tests := []struct {
		title string
		level zapcore.Level
		kind  string
	}{
		{"Task completed", zapcore.InfoLevel, "success"},
		{"Sign-in failed", zapcore.WarnLevel, "error"},
		{"Synced", zapcore.InfoLevel, "info"},
	}
	for i, tt := range tests {
		e := entries[i]
		if e.Message != tt.title {
			t.Errorf("Entry %d: expected message %q, got %q", i, tt.title, e.Message)
		}
		if e.Level != tt.level {
			t.Errorf("Entry %d: expected level %v, got %v", i, tt.level, e.Level)
		}
		if got := e.ContextMap()["severity"]; got != tt.kind {
			t.Errorf("Entry %d: expected severity field %q, got %v", i, tt.kind, got)
		}
		if e.LoggerName != "notify" {
			t.Errorf("Entry %d: expected logger name notify, got %q", i, e.LoggerName)
		}
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic
	Discard.Notify(context.Background(), Error("ignored", ""))
}
