// Package config resolves game settings from an optional .env file and
// the environment. Command-line flags override anything loaded here.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultTick = 100 * time.Millisecond
)

// Config holds the game's tunable settings.
type Config struct {
	Tick   time.Duration // Turn period; also the input read timeout
	Danger bool          // Danger mode: blocks accumulate as food is eaten
	Sound  bool          // Feedback tones
	Color  string        // "auto", "truecolor" or "256"
}

// Load reads the optional .env file and the environment. Missing keys
// fall back to defaults; a malformed value logs and falls back rather
// than failing a game that is about to take over the terminal.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	return Config{
		Tick:   envMillis("SNAKE_TICK_MS", DefaultTick),
		Danger: envBool("SNAKE_DANGER", false),
		Sound:  envBool("SNAKE_SOUND", true),
		Color:  envString("SNAKE_COLOR", "auto"),
	}
}

func envString(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("environment variable %s must be a boolean, got %q", key, value)
		return fallback
	}
	return parsed
}

func envMillis(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	ms, err := strconv.Atoi(value)
	if err != nil || ms <= 0 {
		log.Printf("environment variable %s must be a positive integer of milliseconds, got %q", key, value)
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
