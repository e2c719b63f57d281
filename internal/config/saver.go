package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Save writes the config to ~/.config/notable/config.json, preserving any
// top-level keys it does not manage (hand-edited extras survive a save).
func Save(cfg *Config) error {
	path := ConfigPath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Start from the existing file so unknown keys are kept.
	merged := make(map[string]json.RawMessage)
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &merged)
	}

	for key, section := range map[string]interface{}{
		"store":  cfg.Store,
		"keymap": cfg.Keymap,
		"ui":     cfg.UI,
	} {
		b, err := json.Marshal(section)
		if err != nil {
			return err
		}
		merged[key] = b
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SaveTheme updates only the theme name in config and saves.
func SaveTheme(themeName string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	return Save(cfg)
}
