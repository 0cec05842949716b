package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override preferences.
const (
	EnvAssets   = "TOUR_ASSETS"
	EnvEnvURL   = "TOUR_ENV_URL"
	EnvWindowed = "TOUR_WINDOWED"
	EnvShowFPS  = "TOUR_SHOW_FPS"
	EnvLog      = "TOUR_LOG"
	EnvCatalog  = "TOUR_CATALOG"
)

// LoadEnv loads KEY=VALUE pairs from a dotenv file into the process environment.
// Variables already set are left alone. A missing file is not an error.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ApplyEnv returns p with any TOUR_* variables applied. Malformed booleans are reported
// and leave the preference unchanged.
func ApplyEnv(p Prefs) (Prefs, error) {
	if v := os.Getenv(EnvAssets); v != "" {
		p.AssetDir = v
	}
	if v := os.Getenv(EnvEnvURL); v != "" {
		p.EnvironmentURL = v
	}
	if v := os.Getenv(EnvLog); v != "" {
		p.LogPath = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		p.Catalog = v
	}
	var firstErr error
	for key, dst := range map[string]*bool{EnvWindowed: &p.Windowed, EnvShowFPS: &p.ShowFPS} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("config: %s: %w", key, err)
			}
			continue
		}
		*dst = b
	}
	return p, firstErr
}
