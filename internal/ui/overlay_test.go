package ui

import (
	"strings"
	"testing"
)

func TestWidestLine(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"empty", []string{}, 0},
		{"single", []string{"hello"}, 5},
		{"multiple", []string{"hi", "hello", "hey"}, 5},
		{"with ansi", []string{"\x1b[31mred\x1b[0m"}, 3},
		{"empty lines", []string{"", "", ""}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := widestLine(tt.lines); got != tt.want {
				t.Errorf("widestLine() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSpliceRow(t *testing.T) {
	tests := []struct {
		name       string
		bgLine     string
		modalLine  string
		startX     int
		modalWidth int
		totalWidth int
	}{
		{"centered", "background text here", "[MODAL]", 5, 7, 20},
		{"at left edge", "background", "[M]", 0, 3, 10},
		{"background shorter than modal position", "hi", "[MODAL]", 10, 7, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spliceRow(tt.bgLine, tt.modalLine, tt.startX, tt.modalWidth, tt.totalWidth)
			if !strings.Contains(got, tt.modalLine) {
				t.Errorf("spliceRow() missing modal content %q", tt.modalLine)
			}
		})
	}
}

func TestOverlayModal(t *testing.T) {
	t.Run("centers modal", func(t *testing.T) {
		result := OverlayModal("line1\nline2\nline3\nline4\nline5", "[M]", 10, 5)
		lines := strings.Split(result, "\n")
		if len(lines) != 5 {
			t.Fatalf("expected 5 lines, got %d", len(lines))
		}
		if !strings.Contains(lines[2], "[M]") {
			t.Error("modal not found in middle line")
		}
	})

	t.Run("strips ansi from background", func(t *testing.T) {
		result := OverlayModal("\x1b[31mred\x1b[0m\n\x1b[32mgreen\x1b[0m", "X", 10, 3)
		if strings.Contains(result, "\x1b[31m") {
			t.Error("original red ANSI code should be stripped")
		}
		if !strings.Contains(result, "X") {
			t.Error("modal should be present")
		}
	})

	t.Run("modal larger than background", func(t *testing.T) {
		result := OverlayModal("a\nb", "MODAL", 10, 5)
		lines := strings.Split(result, "\n")
		if len(lines) != 5 {
			t.Fatalf("expected 5 lines, got %d", len(lines))
		}
		if !strings.Contains(result, "MODAL") {
			t.Error("modal not found in result")
		}
	})
}

func TestConfirmDialog_FocusStartsOnCancel(t *testing.T) {
	d := NewConfirmDialog("Delete note", "Really delete?")
	if d.ConfirmFocused() {
		t.Error("focus should start on cancel")
	}
	d.FocusNext()
	if !d.ConfirmFocused() {
		t.Error("FocusNext() should move focus to confirm")
	}
	d.FocusNext()
	if d.ConfirmFocused() {
		t.Error("FocusNext() should move focus back to cancel")
	}
}

func TestConfirmDialog_ViewContainsContent(t *testing.T) {
	d := NewConfirmDialog("Delete note", "This cannot be undone.")
	d.Danger = true
	view := d.View()
	for _, want := range []string{"Delete note", "This cannot be", "Confirm", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
