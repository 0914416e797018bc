// Package config loads preferences from the environment, optionally seeded
// from a .env file next to the executable. Configuration is read once at
// startup; nothing watches for changes.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultHotkey    = "ctrl+alt+f"
	DefaultLogLevel  = "info"
	DefaultLabelSize = 14

	// EnvFileVar points at an alternate .env file when none sits beside
	// the executable.
	EnvFileVar = "HINTO_CONFIG"
)

// Config holds every user-tunable preference.
type Config struct {
	// Hotkey is the activation combination, e.g. "ctrl+alt+f".
	Hotkey string
	// Alphabet orders the label characters; invalid or empty values fall
	// back to the built-in ordering downstream.
	Alphabet string
	// AutoClick clicks as soon as typed input uniquely matches a label.
	AutoClick bool
	// ScanTiming enables per-scanner timing logs.
	ScanTiming bool
	// LabelTheme names the overlay color theme.
	LabelTheme string
	// LabelSize is the overlay font size in points.
	LabelSize int
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from a .env file (when present) and the process
// environment; the environment wins.
func Load() (*Config, error) {
	if path := resolveEnvPath(); path != "" {
		_ = godotenv.Load(path)
	}

	cfg := &Config{
		Hotkey:     getEnvWithDefault("HINTO_HOTKEY", DefaultHotkey),
		Alphabet:   os.Getenv("HINTO_ALPHABET"),
		AutoClick:  envBool("HINTO_AUTO_CLICK"),
		ScanTiming: envBool("HINTO_SCAN_TIMING"),
		LabelTheme: getEnvWithDefault("HINTO_LABEL_THEME", "dark"),
		LabelSize:  envInt("HINTO_LABEL_SIZE", DefaultLabelSize),
		LogLevel:   getEnvWithDefault("HINTO_LOG_LEVEL", DefaultLogLevel),
	}
	return cfg, nil
}

func resolveEnvPath() string {
	if alt := os.Getenv(EnvFileVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}
	return ""
}

func getEnvWithDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
