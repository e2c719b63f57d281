// Package ui provides shared rendering helpers for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle is applied to background content behind modals. Existing ANSI
// codes are stripped first; SGR 2 (faint) does not reliably combine with
// color codes in most terminals.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// widestLine returns the maximum visual width of the given lines.
func widestLine(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// dimLine strips ANSI codes and applies the dim style.
func dimLine(s string) string {
	return DimStyle.Render(ansi.Strip(s))
}

// spliceRow lays modalLine over bgLine starting at column startX, dimming
// the background segments on either side.
func spliceRow(bgLine, modalLine string, startX, modalWidth, totalWidth int) string {
	var b strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if startX > 0 {
		left := ansi.Truncate(stripped, startX, "")
		b.WriteString(DimStyle.Render(left))
		if pad := startX - ansi.StringWidth(left); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}

	b.WriteString(modalLine)

	rightStart := startX + modalWidth
	if rightStart < totalWidth && bgWidth > rightStart {
		b.WriteString(DimStyle.Render(ansi.Cut(stripped, rightStart, bgWidth)))
	}

	return b.String()
}

// OverlayModal composites a modal on top of a dimmed background, centered,
// with dimmed background visible on all sides.
func OverlayModal(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	modalLines := strings.Split(modal, "\n")

	modalWidth := widestLine(modalLines)
	modalHeight := len(modalLines)
	startX := max(0, (width-modalWidth)/2)
	startY := max(0, (height-modalHeight)/2)

	out := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}

		row := y - startY
		if row >= 0 && row < modalHeight {
			out = append(out, spliceRow(bgLine, modalLines[row], startX, modalWidth, width))
		} else {
			out = append(out, dimLine(bgLine))
		}
	}

	return strings.Join(out, "\n")
}
