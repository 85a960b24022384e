package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		env        string
		debugShown bool
	}{
		{"", false},
		{"debug", true},
		{"DEBUG", true},
		{"warn", false},
		{"basura", false},
	}

	for _, tt := range tests {
		t.Run("level "+tt.env, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)

			log := New("test")
			if log == nil {
				t.Fatal("Expected a logger")
			}
			got := log.Enabled(context.Background(), slog.LevelDebug)
			if got != tt.debugShown {
				t.Errorf("Debug enabled = %v, want %v", got, tt.debugShown)
			}
		})
	}
}
