package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/eatsplit/internal/logging"
	"github.com/idilsaglam/eatsplit/internal/ui"
)

type Config struct {
	// Look & feel
	Theme string

	// Roster
	SeedFile  string
	ImageBase string

	// Logging
	LogFile  string
	LogLevel string
}

// Load reads the environment, after merging a local .env file if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Theme:     getEnv("EATSPLIT_THEME", "classic"),
		SeedFile:  getEnv("EATSPLIT_SEED_FILE", ""),
		ImageBase: getEnv("EATSPLIT_IMAGE_BASE", "https://i.pravatar.cc/48"),
		LogFile:   getEnv("EATSPLIT_LOG_FILE", ""),
		LogLevel:  getEnv("EATSPLIT_LOG_LEVEL", "info"),
	}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if !slices.Contains(ui.Themes(), strings.ToLower(c.Theme)) {
		problems = append(problems, fmt.Sprintf("invalid theme '%s': must be one of %v", c.Theme, ui.Themes()))
	}

	if c.ImageBase == "" {
		problems = append(problems, "image base URL cannot be empty")
	} else if u, err := url.Parse(c.ImageBase); err != nil {
		problems = append(problems, fmt.Sprintf("invalid image base URL '%s': %v", c.ImageBase, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid image base URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); err != nil {
			problems = append(problems, fmt.Sprintf("seed file '%s' is not readable: %v", c.SeedFile, err))
		}
	}

	if c.LogFile != "" {
		dir := filepath.Dir(c.LogFile)
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			problems = append(problems, fmt.Sprintf("log file directory '%s' does not exist", dir))
		}
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

// Level is the parsed log level, falling back to info.
func (c *Config) Level() slog.Level {
	l, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
