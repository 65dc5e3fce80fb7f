package game

import (
	"fmt"
	"strconv"
	"time"

	"github.com/samdwyer/mazewalk/internal/ui"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed       = "MAZEWALK_SEED"
	EnvCells      = "MAZEWALK_CELLS"
	EnvEnemies    = "MAZEWALK_ENEMIES"
	EnvView       = "MAZEWALK_VIEW"
	EnvFrameMS    = "MAZEWALK_FRAME_MS"
	EnvAudio      = "MAZEWALK_AUDIO"
	EnvTuningFile = "MAZEWALK_TUNING_FILE"
	EnvLogFile    = "MAZEWALK_LOG_FILE"
	EnvEnemyKind  = "MAZEWALK_ENEMY_KIND"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible maze generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Cells         int           // Distinct cells the maze generator visits
	Enemies       int           // Enemies spawned at start
	View          ui.ViewMode   // First-person or top-down
	FrameInterval time.Duration // Fixed delay between frames
	Audio         bool          // Play synthesized sounds
	TuningFile    string        // Optional JSON file overriding the built-in tuning
	LogFile       string        // Where log output goes while the screen is up
	EnemyKind     string        // Spawn only this enemy kind; empty means the weighted mix
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Cells:         64,
		Enemies:       32,
		View:          ui.ViewFirstPerson,
		FrameInterval: 16 * time.Millisecond,
		Audio:         true,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies any of the MAZEWALK_*
// variables that getenv reports as set.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v := getenv(EnvCells); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvCells, err)
		}
		cfg.Cells = n
	}
	if v := getenv(EnvEnemies); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvEnemies, err)
		}
		cfg.Enemies = n
	}
	if v := getenv(EnvView); v != "" {
		mode, err := ui.ParseViewMode(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvView, err)
		}
		cfg.View = mode
	}
	if v := getenv(EnvFrameMS); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvFrameMS, err)
		}
		cfg.FrameInterval = time.Duration(ms) * time.Millisecond
	}
	if v := getenv(EnvAudio); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvAudio, err)
		}
		cfg.Audio = on
	}
	cfg.TuningFile = getenv(EnvTuningFile)
	cfg.LogFile = getenv(EnvLogFile)
	cfg.EnemyKind = getenv(EnvEnemyKind)

	cfg = cfg.Normalized()
	return cfg, cfg.Validate()
}

// Normalized returns c with a cell target below 1 raised to 1, which
// generates a maze of just the starting cell.
func (c Config) Normalized() Config {
	if c.Cells < 1 {
		c.Cells = 1
	}
	return c
}

// Validate checks that the configuration can start a game.
func (c Config) Validate() error {
	if c.Enemies < 0 {
		return fmt.Errorf("enemies must not be negative, got %d", c.Enemies)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", c.FrameInterval)
	}
	return nil
}
