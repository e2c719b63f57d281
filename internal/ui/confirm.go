package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notable/internal/styles"
)

// Modal width presets.
const (
	ModalWidthSmall  = 40
	ModalWidthMedium = 50
)

// ConfirmDialog is a two-button confirmation modal. Focus starts on Cancel
// so a stray Enter never confirms a destructive action.
type ConfirmDialog struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
	Danger      bool // red border and confirm button
	Width       int

	focusConfirm bool
}

// NewConfirmDialog creates a dialog with sensible defaults.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:       title,
		Message:     message,
		ConfirmText: " Confirm ",
		CancelText:  " Cancel ",
		Width:       ModalWidthMedium,
	}
}

// FocusNext moves focus between the two buttons.
func (d *ConfirmDialog) FocusNext() {
	d.focusConfirm = !d.focusConfirm
}

// ConfirmFocused reports whether the confirm button has focus.
func (d *ConfirmDialog) ConfirmFocused() bool {
	return d.focusConfirm
}

// View renders the dialog box.
func (d *ConfirmDialog) View() string {
	box := styles.ModalBox
	confirm := styles.Button
	cancel := styles.ButtonFocused
	if d.focusConfirm {
		confirm = styles.ButtonFocused
		cancel = styles.Button
	}
	if d.Danger {
		box = box.BorderForeground(styles.Error)
		if d.focusConfirm {
			confirm = styles.ButtonDangerFocused
		} else {
			confirm = styles.ButtonDanger
		}
	}

	innerWidth := d.Width - 6 // border and padding
	title := styles.ModalTitle.Render(d.Title)
	message := styles.Body.Width(innerWidth).Render(d.Message)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		confirm.Render(d.ConfirmText),
		"  ",
		cancel.Render(d.CancelText),
	)
	buttonRow := lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, buttons)

	content := lipgloss.JoinVertical(lipgloss.Left, title, message, "", buttonRow)
	return box.Width(d.Width).Render(content)
}
