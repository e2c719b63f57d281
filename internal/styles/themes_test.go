package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"valid uppercase", "#FF5500", true},
		{"valid lowercase", "#aabbcc", true},
		{"valid mixed case", "#AbCdEf", true},
		{"valid with alpha", "#00000080", true},
		{"invalid 3-char", "#FFF", false},
		{"invalid 7-char", "#FF55001", false},
		{"no hash", "FF5500", false},
		{"invalid char G", "#GGGGGG", false},
		{"empty string", "", false},
		{"just hash", "#", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidHexColor(tt.input)
			if got != tt.valid {
				t.Errorf("IsValidHexColor(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestGetTheme_Unknown(t *testing.T) {
	if _, err := GetTheme("nope"); err == nil {
		t.Error("GetTheme(nope) should return error")
	}
}

func TestListThemes_ContainsBuiltins(t *testing.T) {
	names := ListThemes()
	want := map[string]bool{"default": false, "dracula": false, "light": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("ListThemes() missing %q", name)
		}
	}
}

func TestApplyTheme(t *testing.T) {
	defer func() {
		if err := ApplyTheme("default"); err != nil {
			t.Fatalf("restore default theme: %v", err)
		}
	}()

	if err := ApplyTheme("dracula"); err != nil {
		t.Fatalf("ApplyTheme(dracula) failed: %v", err)
	}
	if Primary != lipgloss.Color("#BD93F9") {
		t.Errorf("Primary = %v, want dracula purple", Primary)
	}
	if CurrentMarkdownTheme != "dracula" {
		t.Errorf("CurrentMarkdownTheme = %q, want dracula", CurrentMarkdownTheme)
	}
	if CurrentTheme().Name != "dracula" {
		t.Errorf("CurrentTheme().Name = %q, want dracula", CurrentTheme().Name)
	}

	if err := ApplyTheme("nope"); err == nil {
		t.Error("ApplyTheme(nope) should return error")
	}
}
