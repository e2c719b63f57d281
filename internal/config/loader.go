package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDir  = ".config/notable"
	configFile = "config.json"
)

// testConfigPath overrides the config location for tests.
var testConfigPath string

// rawConfig is the JSON-unmarshaling intermediary. Pointer fields
// distinguish "absent" from zero values when merging into defaults.
type rawConfig struct {
	Store  rawStoreConfig `json:"store"`
	Keymap KeymapConfig   `json:"keymap"`
	UI     rawUIConfig    `json:"ui"`
}

type rawStoreConfig struct {
	Path string `json:"path"`
}

type rawUIConfig struct {
	ShowFooter *bool          `json:"showFooter"`
	Markdown   *bool          `json:"markdown"`
	Theme      rawThemeConfig `json:"theme"`
}

type rawThemeConfig struct {
	Name string `json:"name"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/notable/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil // return defaults when home cannot be resolved
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)
	cfg.Store.Path = ExpandPath(cfg.Store.Path)

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.Store.Path != "" {
		cfg.Store.Path = raw.Store.Path
	}

	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}

	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.Markdown != nil {
		cfg.UI.Markdown = *raw.UI.Markdown
	}
	if raw.UI.Theme.Name != "" {
		cfg.UI.Theme.Name = raw.UI.Theme.Name
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	if testConfigPath != "" {
		return testConfigPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// SetTestConfigPath points Load/Save at a specific file, for tests.
func SetTestConfigPath(path string) { testConfigPath = path }

// ResetTestConfigPath restores the default config location.
func ResetTestConfigPath() { testConfigPath = "" }
