package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/notable/internal/note"
	"github.com/marcus/notable/internal/styles"
	"github.com/marcus/notable/internal/ui"
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderDetail())

	out := main
	if m.cfg.UI.ShowFooter {
		out = lipgloss.JoinVertical(lipgloss.Left, main, m.renderFooter())
	}

	if m.confirmDialog != nil {
		return ui.OverlayModal(out, m.confirmDialog.View(), m.width, m.height)
	}
	return out
}

func (m *Model) renderSidebar() string {
	panel := styles.PanelInactive
	if m.focus == PaneSidebar && m.notes.Mode() != note.ModeEditing {
		panel = styles.PanelActive
	}

	innerW := m.sidebarWidth - 4 // border and padding
	var b strings.Builder
	b.WriteString(styles.PanelHeader.Render(fmt.Sprintf("Notes (%d)", m.notes.Len())))
	b.WriteString("\n")

	notes := m.notes.Notes()
	if len(notes) == 0 {
		b.WriteString(styles.Muted.Render("No notes yet"))
		b.WriteString("\n")
		b.WriteString(styles.Subtle.Render("Press n to create one"))
	} else {
		rows := m.listHeight()
		end := m.scrollOff + rows
		if end > len(notes) {
			end = len(notes)
		}
		for i := m.scrollOff; i < end; i++ {
			b.WriteString(m.renderSidebarRow(notes[i], i, innerW))
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	return panel.
		Width(m.sidebarWidth - 2).
		Height(m.height - footerHeight - 2).
		Render(b.String())
}

func (m *Model) renderSidebarRow(n note.Note, idx, innerW int) string {
	marker := "  "
	if idx == m.cursor {
		marker = styles.ListCursor.Render("> ")
	}

	rowW := innerW - 2
	stamp := relativeTime(n.UpdatedAt)
	titleW := rowW - runewidth.StringWidth(stamp) - 1
	if titleW < 4 {
		titleW = 4
	}
	title := runewidth.Truncate(displayTitle(n), titleW, "…")
	pad := rowW - runewidth.StringWidth(title) - runewidth.StringWidth(stamp)
	if pad < 1 {
		pad = 1
	}
	line := title + strings.Repeat(" ", pad) + stamp

	style := styles.ListItemNormal
	switch {
	case idx == m.cursor && m.focus == PaneSidebar:
		style = styles.ListItemFocused
	case n.ID == m.notes.ActiveID():
		style = styles.ListItemSelected
	}
	return marker + style.Render(line)
}

func (m *Model) renderDetail() string {
	panel := styles.PanelInactive
	if m.focus == PaneDetail || m.notes.Mode() == note.ModeEditing {
		panel = styles.PanelActive
	}

	var content string
	if m.notes.Mode() == note.ModeEditing {
		content = m.renderEditForm()
	} else {
		content = m.renderViewing()
	}

	return panel.
		Width(m.width - m.sidebarWidth - 2).
		Height(m.height - footerHeight - 2).
		Render(content)
}

func (m *Model) renderViewing() string {
	n, ok := m.notes.Active()
	if !ok {
		return styles.Muted.Render("No note selected") + "\n" +
			styles.Subtle.Render("Press n to create one")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(displayTitle(n)))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Updated " + relativeTime(n.UpdatedAt)))
	b.WriteString("\n\n")

	body := m.renderContent(n)
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	visible := m.detailHeight() - 3
	if visible < 1 {
		visible = 1
	}
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.detailScroll > maxScroll {
		m.detailScroll = maxScroll
	}
	end := m.detailScroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	b.WriteString(strings.Join(lines[m.detailScroll:end], "\n"))

	return b.String()
}

// renderContent produces the note body for the detail pane, markdown-rendered
// when enabled. Rendering is cached until the note, pane width, or markdown
// toggle changes.
func (m *Model) renderContent(n note.Note) string {
	w := m.detailWidth()
	if m.renderedID == n.ID && m.renderedStamp == n.UpdatedAt &&
		m.renderedWidth == w && m.renderedMD == m.markdownEnabled {
		return m.rendered
	}

	out := n.Content
	if m.markdownEnabled {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(styles.CurrentMarkdownTheme),
			glamour.WithWordWrap(w),
		)
		if err != nil {
			m.logger.Warn("glamour init failed", "error", err)
		} else if rendered, rerr := r.Render(n.Content); rerr == nil {
			out = rendered
		}
	}

	m.renderedID = n.ID
	m.renderedStamp = n.UpdatedAt
	m.renderedWidth = w
	m.renderedMD = m.markdownEnabled
	m.rendered = out
	return out
}

func (m *Model) renderEditForm() string {
	w := m.detailWidth()
	var b strings.Builder
	b.WriteString(m.titleInput.View())
	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render(strings.Repeat("─", w)))
	b.WriteString("\n")
	b.WriteString(m.bodyInput.View())
	return b.String()
}

func (m *Model) renderFooter() string {
	if m.statusMsg != "" {
		style := styles.ToastSuccess
		if m.statusIsError {
			style = styles.ToastError
		}
		return style.Render(m.statusMsg)
	}

	var hints string
	switch m.context() {
	case "edit":
		hints = "ctrl+s save   esc cancel   tab switch field"
	case "detail":
		hints = "e edit   d delete   j/k scroll   y yank   m markdown   tab back   q quit"
	default:
		hints = "n new   enter open   e edit   d delete   y yank   tab pane   q quit"
	}
	return styles.Footer.Width(m.width).Render(" " + hints)
}

// displayTitle returns a human-readable label for a note: its title, the
// first non-blank content line as a fallback, or "(untitled)".
func displayTitle(n note.Note) string {
	if t := strings.TrimSpace(n.Title); t != "" {
		return t
	}
	for _, line := range strings.Split(n.Content, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return "(untitled)"
}

// relativeTime formats a millisecond timestamp relative to now.
func relativeTime(millis int64) string {
	if millis == 0 {
		return ""
	}
	d := time.Since(time.UnixMilli(millis))
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return time.UnixMilli(millis).Format("Jan 2")
	}
}
