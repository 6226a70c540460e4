package cmd

import (
	"log/slog"
	"testing"
)

func TestLogConfigFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		json      string
		wantLevel slog.Level
		wantJSON  bool
	}{
		{name: "defaults", wantLevel: slog.LevelInfo},
		{name: "debug", level: "debug", wantLevel: slog.LevelDebug},
		{name: "warn", level: "WARN", wantLevel: slog.LevelWarn},
		{name: "error", level: "error", wantLevel: slog.LevelError},
		{name: "unknown level falls back", level: "verbose", wantLevel: slog.LevelInfo},
		{name: "json output", json: "true", wantLevel: slog.LevelInfo, wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GALERIA_LOG_LEVEL", tt.level)
			t.Setenv("GALERIA_LOG_JSON", tt.json)

			cfg := logConfigFromEnv()
			if cfg.Level != tt.wantLevel {
				t.Errorf("level = %v, want %v", cfg.Level, tt.wantLevel)
			}
			if cfg.JSON != tt.wantJSON {
				t.Errorf("json = %v, want %v", cfg.JSON, tt.wantJSON)
			}
		})
	}
}
