package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notable/internal/note"
	"github.com/marcus/notable/internal/state"
	"github.com/marcus/notable/internal/ui"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeEditInputs()
		m.invalidateRender()
		m.ensureCursorVisible()
		return m, nil

	case TickMsg:
		m.ClearToast()
		return m, tickCmd()

	case ToastMsg:
		m.ShowToast(msg.Message, msg.Duration, msg.IsError)
		return m, nil

	case StoreChangedMsg:
		// Re-arm the watcher before anything else
		cmd := watchStoreCmd(m.changes)
		if m.notes.Mode() == note.ModeEditing {
			// Never clobber an open draft; apply once the edit ends
			m.pendingReload = true
			return m, cmd
		}
		m.reloadFromStore()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// reloadFromStore re-reads the notes file and swaps the collection in.
func (m *Model) reloadFromStore() {
	notes, err := m.store.Load()
	if err != nil {
		m.logger.Warn("reload after external change failed", "error", err)
		return
	}
	m.notes.Reload(notes)
	m.clampCursor()
	m.invalidateRender()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDialog != nil {
		return m.handleConfirmKey(msg)
	}
	if m.notes.Mode() == note.ModeEditing {
		return m.handleEditKey(msg)
	}

	if cmd := m.keys.Resolve(msg.String(), m.context()); cmd != "" {
		return m.dispatch(cmd)
	}
	return m, nil
}

// handleConfirmKey routes keys while the delete confirmation is open.
func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right", "h", "l":
		m.confirmDialog.FocusNext()
	case "enter":
		if m.confirmDialog.ConfirmFocused() {
			return m.deleteConfirmed()
		}
		m.closeConfirm()
	case "y":
		return m.deleteConfirmed()
	case "n", "esc", "q":
		m.closeConfirm()
	}
	return m, nil
}

// handleEditKey routes keys while the edit form is open. Bound chords run
// commands; everything else feeds the focused input.
func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if cmd := m.keys.Resolve(s, "edit"); cmd != "" && !isTextKey(msg) {
		return m.dispatch(cmd)
	}
	if s == "enter" && m.editFocus == 0 {
		m.focusBody()
		return m, nil
	}

	var cmd tea.Cmd
	if m.editFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return m, cmd
}

// isTextKey reports whether the key press is ordinary typed text that must
// reach the input instead of the keymap.
func isTextKey(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}

// dispatch executes a resolved keymap command.
func (m *Model) dispatch(cmd string) (tea.Model, tea.Cmd) {
	switch cmd {
	case "quit":
		return m.quit()

	case "cursor-down":
		m.moveCursor(1)
	case "cursor-up":
		m.moveCursor(-1)
	case "cursor-top":
		m.cursor = 0
		m.ensureCursorVisible()
	case "cursor-bottom":
		m.cursor = m.notes.Len() - 1
		m.clampCursor()

	case "select-note":
		m.selectCursor()
	case "new-note":
		m.notes.Create()
		m.seedEditInputs()
		m.focus = PaneDetail
	case "edit-note":
		m.beginEdit()
	case "delete-note":
		m.openDeleteConfirm()
	case "yank-note":
		return m, m.yankTarget()
	case "toggle-markdown":
		m.markdownEnabled = !m.markdownEnabled
		if err := state.SetMarkdownEnabled(m.markdownEnabled); err != nil {
			m.logger.Warn("persist markdown preference failed", "error", err)
		}
		m.invalidateRender()

	case "switch-pane":
		if m.focus == PaneSidebar {
			m.focus = PaneDetail
		} else {
			m.focus = PaneSidebar
		}
	case "back":
		m.focus = PaneSidebar

	case "scroll-down":
		m.detailScroll++
	case "scroll-up":
		if m.detailScroll > 0 {
			m.detailScroll--
		}
	case "scroll-top":
		m.detailScroll = 0
	case "scroll-bottom":
		m.detailScroll = 1 << 20 // clamped against content at render time

	case "sidebar-narrower":
		m.resizeSidebar(-2)
	case "sidebar-wider":
		m.resizeSidebar(2)

	case "save-note":
		return m.saveDraft()
	case "cancel-edit":
		return m.cancelEdit()
	case "next-field", "prev-field":
		m.toggleEditFocus()
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if err := state.SetActiveNoteID(m.notes.ActiveID()); err != nil {
		m.logger.Warn("persist active note failed", "error", err)
	}
	if m.stopWatch != nil {
		m.stopWatch()
	}
	return m, tea.Quit
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// selectCursor makes the note under the sidebar cursor active and shows it.
func (m *Model) selectCursor() {
	notes := m.notes.Notes()
	if m.cursor < 0 || m.cursor >= len(notes) {
		return
	}
	id := notes[m.cursor].ID
	m.notes.Select(id)
	if err := state.SetActiveNoteID(id); err != nil {
		m.logger.Warn("persist active note failed", "error", err)
	}
	m.focus = PaneDetail
	m.detailScroll = 0
	m.invalidateRender()
}

// beginEdit opens the edit form for the targeted note. With an empty
// collection it falls back to creating a new note.
func (m *Model) beginEdit() {
	if m.notes.Len() == 0 {
		m.notes.Create()
		m.seedEditInputs()
		m.focus = PaneDetail
		return
	}
	if m.focus == PaneSidebar {
		m.selectCursor()
	}
	m.notes.Edit()
	m.seedEditInputs()
	m.focus = PaneDetail
}

// targetNote returns the note the current command applies to: the cursor row
// in the sidebar, the active note otherwise.
func (m *Model) targetNote() (note.Note, bool) {
	if m.focus == PaneSidebar {
		notes := m.notes.Notes()
		if m.cursor >= 0 && m.cursor < len(notes) {
			return notes[m.cursor], true
		}
		return note.Note{}, false
	}
	return m.notes.Active()
}

func (m *Model) openDeleteConfirm() {
	n, ok := m.targetNote()
	if !ok {
		return
	}
	d := ui.NewConfirmDialog("Delete note", fmt.Sprintf("Delete %q? This cannot be undone.", displayTitle(n)))
	d.ConfirmText = " Delete "
	d.Danger = true
	m.confirmDialog = d
	m.confirmNoteID = n.ID
}

func (m *Model) closeConfirm() {
	m.confirmDialog = nil
	m.confirmNoteID = ""
}

func (m *Model) deleteConfirmed() (tea.Model, tea.Cmd) {
	id := m.confirmNoteID
	m.closeConfirm()

	if err := m.notes.Delete(id); err != nil {
		var pe *note.PersistenceError
		if errors.As(err, &pe) {
			m.logger.Error("write-through failed", "error", pe.Err)
		}
		m.ShowToast("Deleted in memory; saving to disk failed", 4*time.Second, true)
	} else {
		m.ShowToast("Note deleted", 2*time.Second, false)
	}

	if err := state.SetActiveNoteID(m.notes.ActiveID()); err != nil {
		m.logger.Warn("persist active note failed", "error", err)
	}
	m.syncCursorToActive()
	m.detailScroll = 0
	m.invalidateRender()
	return m, nil
}

func (m *Model) yankTarget() tea.Cmd {
	n, ok := m.targetNote()
	if !ok {
		return nil
	}
	return yankCmd(n.Content)
}

func (m *Model) resizeSidebar(delta int) {
	w := m.sidebarWidth + delta
	if w < minSidebarWidth {
		w = minSidebarWidth
	}
	if w > maxSidebarWidth {
		w = maxSidebarWidth
	}
	if w == m.sidebarWidth {
		return
	}
	m.sidebarWidth = w
	if err := state.SetSidebarWidth(w); err != nil {
		m.logger.Warn("persist sidebar width failed", "error", err)
	}
	m.resizeEditInputs()
	m.invalidateRender()
}

// saveDraft commits the edit form. An empty draft is rejected and the form
// stays open; a failed disk write keeps the in-memory result and warns.
func (m *Model) saveDraft() (tea.Model, tea.Cmd) {
	d := note.Draft{Title: m.titleInput.Value(), Content: m.bodyInput.Value()}
	saved, err := m.notes.Save(d)
	if errors.Is(err, note.ErrEmptyNote) {
		m.ShowToast("Cannot save an empty note", 2*time.Second, true)
		return m, nil
	}

	if err != nil {
		var pe *note.PersistenceError
		if errors.As(err, &pe) {
			m.logger.Error("write-through failed", "error", pe.Err)
		}
		m.ShowToast("Saved in memory; writing to disk failed", 4*time.Second, true)
	} else {
		m.ShowToast("Saved "+displayTitle(saved), 2*time.Second, false)
	}

	m.finishEdit()
	if err := state.SetActiveNoteID(m.notes.ActiveID()); err != nil {
		m.logger.Warn("persist active note failed", "error", err)
	}
	m.syncCursorToActive()
	return m, nil
}

// cancelEdit discards the draft and returns to viewing.
func (m *Model) cancelEdit() (tea.Model, tea.Cmd) {
	m.notes.CancelEdit()
	m.finishEdit()
	if m.notes.ActiveID() == "" {
		m.focus = PaneSidebar
	}
	return m, nil
}

// finishEdit tears the form down after a save or cancel.
func (m *Model) finishEdit() {
	m.titleInput.Blur()
	m.bodyInput.Blur()
	m.detailScroll = 0
	m.invalidateRender()
	if m.pendingReload {
		m.pendingReload = false
		m.reloadFromStore()
	}
}

func (m *Model) focusBody() {
	m.editFocus = 1
	m.titleInput.Blur()
	m.bodyInput.Focus()
}

func (m *Model) toggleEditFocus() {
	if m.editFocus == 0 {
		m.focusBody()
		return
	}
	m.editFocus = 0
	m.bodyInput.Blur()
	m.titleInput.Focus()
}
