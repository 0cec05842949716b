package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/tour.json"

// Prefs holds user preferences for the tour window. Tour behaviour (spacing, timing,
// cooldown) is fixed in code and not configurable here.
type Prefs struct {
	Windowed       bool   `json:"windowed"`
	Width          int    `json:"width,omitempty"`
	Height         int    `json:"height,omitempty"`
	ShowFPS        bool   `json:"show_fps"`
	AssetDir       string `json:"asset_dir"`
	Catalog        string `json:"catalog,omitempty"` // optional YAML replacing the built-in planets
	EnvironmentURL string `json:"environment_url,omitempty"`
	Font           string `json:"font,omitempty"` // font family searched under assets/fonts
	LogPath        string `json:"log_path,omitempty"`
}

// Default returns fullscreen, no overlays, assets in ./assets.
func Default() Prefs {
	return Prefs{
		Windowed: false,
		Width:    1280,
		Height:   720,
		ShowFPS:  false,
		AssetDir: "assets",
	}
}

// Load reads preferences from path. If the file is missing or invalid, returns Default()
// and does not create a file.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Overlay returns base with every non-zero field of over copied onto it. A false bool or
// empty string in over never clears base.
func Overlay(base, over Prefs) (Prefs, error) {
	if err := copier.CopyWithOption(&base, &over, copier.Option{IgnoreEmpty: true}); err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	return base, nil
}
