package host

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xyproto/env/v2"

	"github.com/livescene/scene/internal/logger"
)

// Config tunes the live loop. LoadConfig fills it from SCENE_* environment variables.
type Config struct {
	Debounce  time.Duration // Quiet period after a file change before reloading.
	Poll      time.Duration // Interval between file checks when events are unavailable.
	FPS       int
	TimeScale float64 // Multiplier applied to wall clock seconds.
	MaxLeaves int     // Per-pass leaf limit, 0 for none.
	MaxSteps  int     // Per-pass statement and loop iteration budget, 0 for none.
	LogLevel  logger.Level
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Debounce:  150 * time.Millisecond,
		Poll:      250 * time.Millisecond,
		FPS:       30,
		TimeScale: 1,
		MaxLeaves: 100000,
		MaxSteps:  1000000,
		LogLevel:  logger.LevelInfo,
	}
}

// LoadConfig reads SCENE_DEBOUNCE_MS, SCENE_POLL_MS, SCENE_FPS, SCENE_TIME_SCALE, SCENE_MAX_LEAVES,
// SCENE_MAX_STEPS and SCENE_LOG_LEVEL over DefaultConfig.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	cfg.Debounce = time.Duration(env.Int("SCENE_DEBOUNCE_MS", int(cfg.Debounce/time.Millisecond))) * time.Millisecond
	cfg.Poll = time.Duration(env.Int("SCENE_POLL_MS", int(cfg.Poll/time.Millisecond))) * time.Millisecond
	cfg.FPS = env.Int("SCENE_FPS", cfg.FPS)
	cfg.MaxLeaves = env.Int("SCENE_MAX_LEAVES", cfg.MaxLeaves)
	cfg.MaxSteps = env.Int("SCENE_MAX_STEPS", cfg.MaxSteps)
	if text := env.Str("SCENE_TIME_SCALE"); text != "" {
		scale, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return cfg, fmt.Errorf("SCENE_TIME_SCALE: %w", err)
		}
		cfg.TimeScale = scale
	}
	level, err := logger.ParseLevel(env.Str("SCENE_LOG_LEVEL", "info"))
	if err != nil {
		return cfg, fmt.Errorf("SCENE_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level
	return cfg, cfg.Validate()
}

// Validate reports the first out of range field.
func (c Config) Validate() error {
	switch {
	case c.Debounce < 0:
		return fmt.Errorf("debounce must not be negative, got %s", c.Debounce)
	case c.Poll <= 0:
		return fmt.Errorf("poll interval must be positive, got %s", c.Poll)
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	case c.MaxLeaves < 0:
		return fmt.Errorf("max leaves must not be negative, got %d", c.MaxLeaves)
	case c.MaxSteps < 0:
		return fmt.Errorf("max steps must not be negative, got %d", c.MaxSteps)
	}
	return nil
}

// FrameInterval is the time between frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
