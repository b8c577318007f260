package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyValueFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).Named("event_feed").With("sport", "football")

	logger.Warn("refetch failed", "attempt", 2, "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.LoggerName != "event_feed" {
		t.Fatalf("unexpected logger name %q", entry.LoggerName)
	}
	fields := entry.ContextMap()
	if fields["sport"] != "football" {
		t.Fatalf("expected sport field, got %v", fields["sport"])
	}
	if fields["attempt"] != int64(2) {
		t.Fatalf("expected attempt=2, got %v (%T)", fields["attempt"], fields["attempt"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("expected error=boom, got %v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	logger := FromZap(zap.New(core))

	logger.DebugContext(context.Background(), "skipped")
	logger.InfoContext(context.Background(), "skipped")
	logger.ErrorContext(context.Background(), "kept")

	if logs.Len() != 1 {
		t.Fatalf("expected only error entry, got %d", logs.Len())
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := Default()
	SetDefault(FromZap(zap.New(core)))
	t.Cleanup(func() { SetDefault(previous) })

	var logger *Logger
	logger.Info("from nil")

	if logs.Len() != 1 {
		t.Fatalf("expected default logger to receive entry, got %d", logs.Len())
	}
}

func TestLogger_TeeWritesBothCores(t *testing.T) {
	t.Parallel()

	primary, primaryLogs := observer.New(zapcore.DebugLevel)
	extra, extraLogs := observer.New(zapcore.WarnLevel)
	logger := FromZap(zap.New(primary)).Tee(extra).With("sport", "football")

	logger.Info("loaded")
	logger.Warn("degraded")

	if primaryLogs.Len() != 2 {
		t.Fatalf("expected two primary entries, got %d", primaryLogs.Len())
	}
	entries := extraLogs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one extra entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["sport"] != "football" {
		t.Fatalf("unexpected fields %v", entries[0].ContextMap())
	}
}
