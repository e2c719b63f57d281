// Package app implements the root Bubble Tea model: a sidebar listing all
// notes next to a detail pane that either renders the active note or hosts
// the edit form.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notable/internal/config"
	"github.com/marcus/notable/internal/keymap"
	"github.com/marcus/notable/internal/note"
	"github.com/marcus/notable/internal/state"
	"github.com/marcus/notable/internal/styles"
	"github.com/marcus/notable/internal/ui"
)

// FocusPane represents which pane receives navigation keys.
type FocusPane int

const (
	PaneSidebar FocusPane = iota
	PaneDetail
)

// Layout constants.
const (
	defaultSidebarWidth = 30
	minSidebarWidth     = 20
	maxSidebarWidth     = 60
	footerHeight        = 1
)

// Model is the root application model.
type Model struct {
	cfg    *config.Config
	keys   *keymap.Registry
	logger *slog.Logger
	notes  *note.Model
	store  note.Store

	// Terminal dimensions
	width  int
	height int
	ready  bool

	// Pane state
	focus        FocusPane
	sidebarWidth int

	// Sidebar state
	cursor    int
	scrollOff int

	// Detail state
	detailScroll    int
	markdownEnabled bool

	// Render cache for the detail pane; keyed by note identity, update
	// stamp, pane width, and markdown toggle
	renderedID    string
	renderedStamp int64
	renderedWidth int
	renderedMD    bool
	rendered      string

	// Edit form state
	titleInput textinput.Model
	bodyInput  textarea.Model
	editFocus  int // 0=title, 1=body

	// Delete confirmation modal
	confirmDialog *ui.ConfirmDialog
	confirmNoteID string

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// Store watcher state
	changes       <-chan struct{}
	stopWatch     func()
	pendingReload bool
}

// New creates the root model. changes and stopWatch come from the store
// watcher and may be nil when watching is disabled.
func New(cfg *config.Config, notes *note.Model, st note.Store, changes <-chan struct{}, stopWatch func(), logger *slog.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.TextStyle = styles.Title
	ti.PlaceholderStyle = styles.Subtle

	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.FocusedStyle = textarea.Style{
		Base:             lipgloss.NewStyle(),
		CursorLine:       lipgloss.NewStyle(),
		CursorLineNumber: styles.Muted,
		EndOfBuffer:      styles.Muted,
		LineNumber:       styles.Muted,
		Placeholder:      styles.Subtle,
		Prompt:           lipgloss.NewStyle(),
		Text:             lipgloss.NewStyle(),
	}
	ta.BlurredStyle = ta.FocusedStyle
	// alt+c is yank elsewhere in the app; keep the textarea from eating it
	ta.KeyMap.CapitalizeWordForward = key.NewBinding(key.WithDisabled())
	ta.Blur()

	m := &Model{
		cfg:          cfg,
		keys:         buildRegistry(cfg),
		logger:       logger,
		notes:        notes,
		store:        st,
		sidebarWidth: defaultSidebarWidth,
		titleInput:   ti,
		bodyInput:    ta,
		changes:      changes,
		stopWatch:    stopWatch,
	}

	if w := state.GetSidebarWidth(); w >= minSidebarWidth && w <= maxSidebarWidth {
		m.sidebarWidth = w
	}
	m.markdownEnabled = cfg.UI.Markdown && state.GetMarkdownEnabled()

	// Restore the last active note; Select ignores ids that no longer exist
	if id := state.GetActiveNoteID(); id != "" {
		notes.Select(id)
	}
	m.syncCursorToActive()

	return m
}

// buildRegistry assembles the key registry from defaults plus config
// overrides.
func buildRegistry(cfg *config.Config) *keymap.Registry {
	r := keymap.NewRegistry()
	keymap.RegisterDefaults(r)
	for k, cmd := range cfg.Keymap.Overrides {
		r.SetUserOverride(k, cmd)
	}
	return r
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tickCmd()}
	if m.changes != nil {
		cmds = append(cmds, watchStoreCmd(m.changes))
	}
	return tea.Batch(cmds...)
}

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration, isError bool) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(duration)
	m.statusIsError = isError
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// context names the keymap context for the current UI state.
func (m *Model) context() string {
	if m.notes.Mode() == note.ModeEditing {
		return "edit"
	}
	if m.focus == PaneDetail {
		return "detail"
	}
	return "sidebar"
}

// syncCursorToActive moves the sidebar cursor to the active note.
func (m *Model) syncCursorToActive() {
	id := m.notes.ActiveID()
	if id == "" {
		m.clampCursor()
		return
	}
	for i, n := range m.notes.Notes() {
		if n.ID == id {
			m.cursor = i
			break
		}
	}
	m.ensureCursorVisible()
}

func (m *Model) clampCursor() {
	if n := m.notes.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// ensureCursorVisible adjusts the sidebar scroll offset so the cursor row is
// on screen.
func (m *Model) ensureCursorVisible() {
	rows := m.listHeight()
	if rows <= 0 {
		return
	}
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	}
	if m.cursor >= m.scrollOff+rows {
		m.scrollOff = m.cursor - rows + 1
	}
	if m.scrollOff < 0 {
		m.scrollOff = 0
	}
}

// listHeight returns the number of visible sidebar rows.
func (m *Model) listHeight() int {
	// panel borders (2) plus the header line and its margin
	return m.height - footerHeight - 4
}

// detailWidth returns the inner width of the detail pane.
func (m *Model) detailWidth() int {
	// panel borders and padding on both panes
	w := m.width - m.sidebarWidth - 6
	if w < 10 {
		w = 10
	}
	return w
}

// detailHeight returns the inner height of the detail pane.
func (m *Model) detailHeight() int {
	h := m.height - footerHeight - 2
	if h < 3 {
		h = 3
	}
	return h
}

// seedEditInputs fills the edit form from the current draft.
func (m *Model) seedEditInputs() {
	d := m.notes.Draft()
	m.titleInput.SetValue(d.Title)
	m.bodyInput.SetValue(d.Content)
	m.editFocus = 0
	m.titleInput.Focus()
	m.bodyInput.Blur()
	m.titleInput.CursorEnd()
	m.resizeEditInputs()
}

func (m *Model) resizeEditInputs() {
	w := m.detailWidth()
	m.titleInput.Width = w
	m.bodyInput.SetWidth(w)
	h := m.detailHeight() - 5 // title row, separator, hint line
	if h < 3 {
		h = 3
	}
	m.bodyInput.SetHeight(h)
}

// invalidateRender drops the cached detail rendering.
func (m *Model) invalidateRender() {
	m.renderedID = ""
	m.rendered = ""
}
