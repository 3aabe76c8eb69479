package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewRespectsLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	if !New().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("LOG_LEVEL=debug must enable debug records")
	}

	t.Setenv("LOG_LEVEL", "")
	if New().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("default level must suppress debug records")
	}
}
