package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func String(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func RequiredString(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

func Bool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v != "false" && v != "0"
}

func Duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Config is the assembled runtime configuration for the console.
type Config struct {
	APIBaseURL         string
	RequestTimeout     time.Duration
	TokenPath          string
	HealthPollInterval time.Duration
}

// Load reads an optional .env from the working directory, then the
// environment. Missing .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	tokenPath := String("BOOKDESK_TOKEN_PATH", "")
	if tokenPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		tokenPath = filepath.Join(dir, "bookdesk", "token")
	}

	cfg := Config{
		APIBaseURL:         String("BOOKDESK_API_BASE_URL", "http://localhost:3100/api"),
		RequestTimeout:     Duration("BOOKDESK_REQUEST_TIMEOUT", 10*time.Second),
		TokenPath:          tokenPath,
		HealthPollInterval: Duration("BOOKDESK_HEALTH_POLL_INTERVAL", 30*time.Second),
	}
	return cfg, nil
}

func Int(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
