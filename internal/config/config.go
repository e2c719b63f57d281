package config

// Config is the root configuration structure.
type Config struct {
	Store  StoreConfig  `json:"store"`
	Keymap KeymapConfig `json:"keymap"`
	UI     UIConfig     `json:"ui"`
}

// StoreConfig configures note persistence.
type StoreConfig struct {
	Path string `json:"path"` // notes file path (supports ~ expansion); empty = default
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool        `json:"showFooter"`
	Markdown   bool        `json:"markdown"` // render note content as markdown in view mode
	Theme      ThemeConfig `json:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name string `json:"name"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter: true,
			Markdown:   true,
			Theme: ThemeConfig{
				Name: "default",
			},
		},
	}
}
