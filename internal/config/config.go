package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultPath is the preferences file, relative to the working directory.
const DefaultPath = "config/mockup.json"

// Prefs holds tool preferences persisted across runs. Scene content (shape,
// dimensions, textures) is per-session and never persisted.
type Prefs struct {
	WindowWidth        int    `json:"window_width"`
	WindowHeight       int    `json:"window_height"`
	OutputPath         string `json:"output_path"`
	AssetBaseURL       string `json:"asset_base_url,omitempty"`
	EnvironmentPath    string `json:"environment_path,omitempty"`
	EnvironmentVisible bool   `json:"environment_visible"`
	ShowFPS            bool   `json:"show_fps"`
}

// Default returns the starting preferences.
func Default() Prefs {
	return Prefs{
		WindowWidth:        1280,
		WindowHeight:       800,
		OutputPath:         "mockup-render.png",
		EnvironmentVisible: false,
		ShowFPS:            false,
	}
}

// Load reads preferences from path. A missing or invalid file yields
// Default() and is not an error; no file is created.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		d := Default()
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	if p.OutputPath == "" {
		p.OutputPath = Default().OutputPath
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
