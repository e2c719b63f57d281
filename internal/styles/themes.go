package styles

import (
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects access to themeRegistry and currentTheme for thread safety
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds all theme colors
type ColorPalette struct {
	// Brand colors
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`

	// Status colors
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`

	// Text colors
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"`
	TextSubtle    string `json:"textSubtle"`

	// Background colors
	BgPrimary   string `json:"bgPrimary"`
	BgSecondary string `json:"bgSecondary"`
	BgTertiary  string `json:"bgTertiary"`
	BgOverlay   string `json:"bgOverlay"`

	// Border colors
	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`
	BorderMuted  string `json:"borderMuted"`

	// Additional UI colors
	TextHighlight    string `json:"textHighlight"`
	ToastSuccessText string `json:"toastSuccessText"`
	ToastErrorText   string `json:"toastErrorText"`

	// Glamour theme name for markdown rendering
	MarkdownTheme string `json:"markdownTheme"`
}

// Theme represents a complete theme configuration
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

// Built-in themes
var (
	// DefaultTheme is the default dark theme
	DefaultTheme = Theme{
		Name:        "default",
		DisplayName: "Default Dark",
		Colors: ColorPalette{
			Primary:   "#7C3AED",
			Secondary: "#3B82F6",
			Accent:    "#F59E0B",

			Success: "#10B981",
			Warning: "#F59E0B",
			Error:   "#EF4444",
			Info:    "#3B82F6",

			TextPrimary:   "#F9FAFB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",
			TextSubtle:    "#4B5563",

			BgPrimary:   "#111827",
			BgSecondary: "#1F2937",
			BgTertiary:  "#374151",
			BgOverlay:   "#00000080",

			BorderNormal: "#374151",
			BorderActive: "#7C3AED",
			BorderMuted:  "#1F2937",

			TextHighlight:    "#E5E7EB",
			ToastSuccessText: "#000000",
			ToastErrorText:   "#FFFFFF",

			MarkdownTheme: "dark",
		},
	}

	// DraculaTheme is a Dracula-inspired dark theme with vibrant colors
	DraculaTheme = Theme{
		Name:        "dracula",
		DisplayName: "Dracula",
		Colors: ColorPalette{
			Primary:   "#BD93F9",
			Secondary: "#8BE9FD",
			Accent:    "#FFB86C",

			Success: "#50FA7B",
			Warning: "#FFB86C",
			Error:   "#FF5555",
			Info:    "#8BE9FD",

			TextPrimary:   "#F8F8F2",
			TextSecondary: "#BFBFBF",
			TextMuted:     "#6272A4",
			TextSubtle:    "#44475A",

			BgPrimary:   "#282A36",
			BgSecondary: "#343746",
			BgTertiary:  "#44475A",
			BgOverlay:   "#00000080",

			BorderNormal: "#44475A",
			BorderActive: "#BD93F9",
			BorderMuted:  "#343746",

			TextHighlight:    "#F8F8F2",
			ToastSuccessText: "#282A36",
			ToastErrorText:   "#F8F8F2",

			MarkdownTheme: "dracula",
		},
	}

	// LightTheme is a light theme for bright terminals
	LightTheme = Theme{
		Name:        "light",
		DisplayName: "Light",
		Colors: ColorPalette{
			Primary:   "#7C3AED",
			Secondary: "#2563EB",
			Accent:    "#D97706",

			Success: "#059669",
			Warning: "#D97706",
			Error:   "#DC2626",
			Info:    "#2563EB",

			TextPrimary:   "#111827",
			TextSecondary: "#4B5563",
			TextMuted:     "#6B7280",
			TextSubtle:    "#9CA3AF",

			BgPrimary:   "#FFFFFF",
			BgSecondary: "#F3F4F6",
			BgTertiary:  "#E5E7EB",
			BgOverlay:   "#00000040",

			BorderNormal: "#D1D5DB",
			BorderActive: "#7C3AED",
			BorderMuted:  "#E5E7EB",

			TextHighlight:    "#1F2937",
			ToastSuccessText: "#FFFFFF",
			ToastErrorText:   "#FFFFFF",

			MarkdownTheme: "light",
		},
	}
)

var themeRegistry = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
	"light":   LightTheme,
}

var currentTheme = DefaultTheme

// IsValidHexColor reports whether s is a #RRGGBB or #RRGGBBAA color code.
func IsValidHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// GetTheme returns the theme with the given name.
func GetTheme(name string) (Theme, error) {
	themeMu.RLock()
	defer themeMu.RUnlock()
	t, ok := themeRegistry[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// CurrentTheme returns the currently applied theme.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns all registered theme names, sorted.
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTheme sets the active theme by name and rebuilds all package styles.
func ApplyTheme(name string) error {
	t, err := GetTheme(name)
	if err != nil {
		return err
	}

	themeMu.Lock()
	currentTheme = t
	themeMu.Unlock()

	applyPalette(t.Colors)
	rebuildStyles()
	return nil
}

func applyPalette(c ColorPalette) {
	Primary = lipgloss.Color(c.Primary)
	Secondary = lipgloss.Color(c.Secondary)
	Accent = lipgloss.Color(c.Accent)

	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)
	Info = lipgloss.Color(c.Info)

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)
	TextSubtle = lipgloss.Color(c.TextSubtle)

	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgSecondary = lipgloss.Color(c.BgSecondary)
	BgTertiary = lipgloss.Color(c.BgTertiary)
	BgOverlay = lipgloss.Color(c.BgOverlay)

	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)
	BorderMuted = lipgloss.Color(c.BorderMuted)

	TextHighlight = lipgloss.Color(c.TextHighlight)
	ToastSuccessTextColor = lipgloss.Color(c.ToastSuccessText)
	ToastErrorTextColor = lipgloss.Color(c.ToastErrorText)

	if c.MarkdownTheme != "" {
		CurrentMarkdownTheme = c.MarkdownTheme
	}
}

// rebuildStyles recreates the derived lipgloss styles from the current
// palette vars. Styles capture colors at construction time, so a palette
// change alone does not affect them.
func rebuildStyles() {
	PanelActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)
	PanelInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)
	PanelHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		MarginBottom(1)

	Title = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	Subtitle = lipgloss.NewStyle().Foreground(TextHighlight)
	Body = lipgloss.NewStyle().Foreground(TextPrimary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Subtle = lipgloss.NewStyle().Foreground(TextSubtle)
	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)
	Logo = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	ListItemNormal = lipgloss.NewStyle().Foreground(TextPrimary)
	ListItemSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgTertiary)
	ListItemFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary)
	ListCursor = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	ToastSuccess = lipgloss.NewStyle().
		Background(Success).
		Foreground(ToastSuccessTextColor).
		Bold(true).
		Padding(0, 1)
	ToastError = lipgloss.NewStyle().
		Background(Error).
		Foreground(ToastErrorTextColor).
		Bold(true).
		Padding(0, 1)

	Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgSecondary)

	ModalOverlay = lipgloss.NewStyle().Background(BgOverlay)
	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Background(BgSecondary).
		Padding(1, 2)
	ModalTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true).
		MarginBottom(1)

	Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 2)
	ButtonFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary).
		Padding(0, 2).
		Bold(true)
}
