package note

// Store persists the note collection. Load tolerates missing or malformed
// data by returning an empty collection; Save reports failures so the UI can
// surface a warning.
type Store interface {
	Load() ([]Note, error)
	Save([]Note) error
}

// Change is a bitmask naming which parts of the model changed in an
// operation. Subscribers receive the union for the whole operation.
type Change int

const (
	ChangeCollection Change = 1 << iota
	ChangeSelection
	ChangeDraft
	ChangeMode
)

// Model owns the note collection, the active-note selection, the edit draft,
// and the viewing/editing mode. It is the single writer; every successful
// mutation is written through to the store synchronously.
type Model struct {
	store    Store
	notes    []Note
	activeID string
	draft    Draft
	mode     Mode
	subs     []func(Change)
}

// NewModel creates a model backed by the given store and loads the
// persisted collection. The first note (if any) becomes active.
func NewModel(store Store) *Model {
	m := &Model{store: store}
	notes, err := store.Load()
	if err == nil {
		m.notes = notes
	}
	if len(m.notes) > 0 {
		m.activeID = m.notes[0].ID
	}
	return m
}

// Subscribe registers a callback invoked after every state change.
func (m *Model) Subscribe(fn func(Change)) {
	m.subs = append(m.subs, fn)
}

func (m *Model) notify(c Change) {
	if c == 0 {
		return
	}
	for _, fn := range m.subs {
		fn(c)
	}
}

// Notes returns a copy of the collection in display order.
func (m *Model) Notes() []Note {
	out := make([]Note, len(m.notes))
	copy(out, m.notes)
	return out
}

// Len returns the number of notes.
func (m *Model) Len() int { return len(m.notes) }

// ActiveID returns the id of the active note, or "" if none.
func (m *Model) ActiveID() string { return m.activeID }

// Active returns the active note, if any.
func (m *Model) Active() (Note, bool) {
	for _, n := range m.notes {
		if n.ID == m.activeID {
			return n, true
		}
	}
	return Note{}, false
}

// Draft returns the current edit buffer.
func (m *Model) Draft() Draft { return m.draft }

// Mode returns the current detail pane mode.
func (m *Model) Mode() Mode { return m.mode }

// Create clears the selection, opens an empty draft, and enters edit mode.
// No note is added to the collection until the draft is saved.
func (m *Model) Create() {
	var changed Change
	if m.activeID != "" {
		m.activeID = ""
		changed |= ChangeSelection
	}
	if m.draft != (Draft{}) {
		changed |= ChangeDraft
	}
	m.draft = Draft{}
	if m.mode != ModeEditing {
		m.mode = ModeEditing
		changed |= ChangeMode
	}
	m.notify(changed | ChangeDraft)
}

// Save validates and commits the draft. When the active id names an existing
// note its title, content, and timestamp are replaced in place; otherwise a
// new note is prepended and becomes active. On success the model exits edit
// mode and writes the collection through to the store.
//
// Returns ErrEmptyNote when both trimmed fields are blank (no state change).
// A *PersistenceError reports a failed write-through; the returned note and
// the in-memory mutation are still valid in that case.
func (m *Model) Save(d Draft) (Note, error) {
	if d.Empty() {
		return Note{}, ErrEmptyNote
	}

	changed := ChangeCollection
	var saved Note
	if idx := m.indexOf(m.activeID); idx >= 0 {
		m.notes[idx].Title = d.Title
		m.notes[idx].Content = d.Content
		m.notes[idx].UpdatedAt = nowMillis()
		saved = m.notes[idx]
	} else {
		saved = Note{
			ID:        newID(),
			Title:     d.Title,
			Content:   d.Content,
			UpdatedAt: nowMillis(),
		}
		m.notes = append([]Note{saved}, m.notes...)
		m.activeID = saved.ID
		changed |= ChangeSelection
	}

	m.draft = Draft{}
	if m.mode != ModeViewing {
		m.mode = ModeViewing
		changed |= ChangeMode
	}
	changed |= ChangeDraft

	err := m.persist()
	m.notify(changed)
	return saved, err
}

// Select makes the note with the given id active and exits edit mode,
// silently discarding any unsaved draft. Selecting an unknown id is a no-op.
func (m *Model) Select(id string) {
	if m.indexOf(id) < 0 {
		return
	}
	var changed Change
	if m.activeID != id {
		m.activeID = id
		changed |= ChangeSelection
	}
	changed |= m.exitEdit()
	m.notify(changed)
}

// Delete removes the note with the given id unconditionally; confirmation is
// the caller's concern. If the removed note was active the new first note is
// selected, or the selection clears when the collection is empty. The change
// is written through to the store.
func (m *Model) Delete(id string) error {
	idx := m.indexOf(id)
	if idx < 0 {
		return nil
	}
	m.notes = append(m.notes[:idx], m.notes[idx+1:]...)

	changed := ChangeCollection
	if m.activeID == id {
		m.activeID = ""
		if len(m.notes) > 0 {
			m.activeID = m.notes[0].ID
		}
		changed |= ChangeSelection
	}
	changed |= m.exitEdit()

	err := m.persist()
	m.notify(changed)
	return err
}

// Edit enters edit mode with the draft seeded from the active note, or an
// empty draft when nothing is active.
func (m *Model) Edit() {
	m.draft = Draft{}
	if n, ok := m.Active(); ok {
		m.draft = Draft{Title: n.Title, Content: n.Content}
	}
	changed := ChangeDraft
	if m.mode != ModeEditing {
		m.mode = ModeEditing
		changed |= ChangeMode
	}
	m.notify(changed)
}

// CancelEdit exits edit mode and discards the draft, restoring display of
// the active note's current values.
func (m *Model) CancelEdit() {
	m.notify(m.exitEdit())
}

// Reload replaces the collection from a freshly loaded snapshot (external
// mutation of the store). A still-present active note keeps its selection;
// a vanished one is replaced by the new first note, mirroring Delete.
func (m *Model) Reload(notes []Note) {
	m.notes = notes
	changed := ChangeCollection
	if m.indexOf(m.activeID) < 0 {
		m.activeID = ""
		if len(m.notes) > 0 {
			m.activeID = m.notes[0].ID
		}
		changed |= ChangeSelection | m.exitEdit()
	}
	m.notify(changed)
}

// exitEdit returns to viewing mode and clears the draft, reporting what
// changed.
func (m *Model) exitEdit() Change {
	var changed Change
	if m.mode != ModeViewing {
		m.mode = ModeViewing
		changed |= ChangeMode
	}
	if m.draft != (Draft{}) {
		m.draft = Draft{}
		changed |= ChangeDraft
	}
	return changed
}

// persist writes the collection through to the store.
func (m *Model) persist() error {
	if err := m.store.Save(m.Notes()); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

func (m *Model) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, n := range m.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
