package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/asciiquest/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	MapWidth    int
	MapHeight   int
	MaxRooms    int // room placement attempts per level
	MinRoomSize int
	MaxRoomSize int

	// AIStrategy selects monster behavior: "approach" or "strike".
	AIStrategy string

	// LocaleDir and Language pick the message catalog.
	LocaleDir string
	Language  string

	LogLevel  string
	LogFormat string
	LogFile   string

	// Telemetry enables the OTLP exporter.
	Telemetry bool
}

// DefaultConfig returns the standard 80x50 game.
func DefaultConfig() Config {
	return Config{
		MapWidth:    world.DefaultWidth,
		MapHeight:   world.DefaultHeight,
		MaxRooms:    world.DefaultGenerator.Attempts,
		MinRoomSize: world.DefaultGenerator.MinRoomSize,
		MaxRoomSize: world.DefaultGenerator.MaxRoomSize,
		AIStrategy:  "approach",
		LocaleDir:   "locales",
		Language:    "en_GB",
		LogLevel:    "info",
		LogFormat:   "text",
		LogFile:     "asciiquest.log",
	}
}

// ConfigFromEnv starts from DefaultConfig and applies ASCIIQUEST_*
// variables. LOG_LEVEL and LOG_FORMAT are honored as well.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{"ASCIIQUEST_MAP_WIDTH", &cfg.MapWidth},
		{"ASCIIQUEST_MAP_HEIGHT", &cfg.MapHeight},
		{"ASCIIQUEST_MAX_ROOMS", &cfg.MaxRooms},
		{"ASCIIQUEST_MIN_ROOM_SIZE", &cfg.MinRoomSize},
		{"ASCIIQUEST_MAX_ROOM_SIZE", &cfg.MaxRoomSize},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	if raw, ok := os.LookupEnv("ASCIIQUEST_SEED"); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("ASCIIQUEST_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if raw, ok := os.LookupEnv("ASCIIQUEST_TELEMETRY"); ok {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, fmt.Errorf("ASCIIQUEST_TELEMETRY: %w", err)
		}
		cfg.Telemetry = on
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"ASCIIQUEST_AI", &cfg.AIStrategy},
		{"ASCIIQUEST_LOCALE_DIR", &cfg.LocaleDir},
		{"ASCIIQUEST_LANG", &cfg.Language},
		{"ASCIIQUEST_LOG_FILE", &cfg.LogFile},
		{"LOG_LEVEL", &cfg.LogLevel},
		{"LOG_FORMAT", &cfg.LogFormat},
	}
	for _, v := range strs {
		if raw, ok := os.LookupEnv(v.key); ok {
			*v.dst = raw
		}
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations the generator cannot honor.
func (c Config) Validate() error {
	if c.MapWidth < 3 || c.MapHeight < 3 {
		return fmt.Errorf("map %dx%d too small", c.MapWidth, c.MapHeight)
	}
	if c.MinRoomSize <= 0 || c.MaxRoomSize < c.MinRoomSize {
		return fmt.Errorf("room size range %d..%d invalid", c.MinRoomSize, c.MaxRoomSize)
	}
	return nil
}

// generator returns the level generator this config describes.
func (c Config) generator() world.Generator {
	return world.Generator{
		Attempts:    c.MaxRooms,
		MinRoomSize: c.MinRoomSize,
		MaxRoomSize: c.MaxRoomSize,
	}
}
