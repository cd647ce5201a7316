package game

import "testing"

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error: %v", err)
	}
	if cfg.MapWidth != 80 || cfg.MapHeight != 50 {
		t.Errorf("map = %dx%d, want 80x50", cfg.MapWidth, cfg.MapHeight)
	}
	if cfg.MaxRooms != 30 || cfg.MinRoomSize != 6 || cfg.MaxRoomSize != 10 {
		t.Errorf("rooms = %d/%d/%d, want 30/6/10", cfg.MaxRooms, cfg.MinRoomSize, cfg.MaxRoomSize)
	}
	if cfg.AIStrategy != "approach" {
		t.Errorf("AIStrategy = %q", cfg.AIStrategy)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("ASCIIQUEST_SEED", "42")
	t.Setenv("ASCIIQUEST_MAP_WIDTH", "60")
	t.Setenv("ASCIIQUEST_AI", "strike")
	t.Setenv("ASCIIQUEST_TELEMETRY", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error: %v", err)
	}
	if cfg.Seed != 42 || cfg.MapWidth != 60 || cfg.AIStrategy != "strike" || !cfg.Telemetry || cfg.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestConfigFromEnvErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"ASCIIQUEST_SEED", "abc"},
		{"ASCIIQUEST_MAP_HEIGHT", "tall"},
		{"ASCIIQUEST_MAP_WIDTH", "2"},
		{"ASCIIQUEST_MIN_ROOM_SIZE", "12"},
		{"ASCIIQUEST_TELEMETRY", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := ConfigFromEnv(); err == nil {
				t.Errorf("%s=%s should fail", tt.key, tt.value)
			}
		})
	}
}
