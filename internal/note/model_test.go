package note

import (
	"errors"
	"testing"
)

// fakeStore records saves and can be made to fail.
type fakeStore struct {
	notes   []Note
	saved   [][]Note
	loadErr error
	saveErr error
}

func (s *fakeStore) Load() ([]Note, error) {
	return s.notes, s.loadErr
}

func (s *fakeStore) Save(notes []Note) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, notes)
	return nil
}

func newTestModel(t *testing.T, notes []Note) (*Model, *fakeStore) {
	t.Helper()
	st := &fakeStore{notes: notes}
	return NewModel(st), st
}

func TestNewModel_SelectsFirstNoteOnLoad(t *testing.T) {
	m, _ := newTestModel(t, []Note{
		{ID: "1", Title: "first"},
		{ID: "2", Title: "second"},
	})
	if got := m.ActiveID(); got != "1" {
		t.Errorf("ActiveID = %q, want %q", got, "1")
	}
	if m.Mode() != ModeViewing {
		t.Errorf("Mode = %v, want Viewing", m.Mode())
	}
}

func TestNewModel_EmptyStore(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
	if m.ActiveID() != "" {
		t.Errorf("ActiveID = %q, want empty", m.ActiveID())
	}
}

func TestCreate_ClearsSelectionAndEntersEditing(t *testing.T) {
	m, _ := newTestModel(t, []Note{{ID: "1"}})
	m.Create()

	if m.ActiveID() != "" {
		t.Errorf("ActiveID = %q, want empty", m.ActiveID())
	}
	if m.Mode() != ModeEditing {
		t.Errorf("Mode = %v, want Editing", m.Mode())
	}
	if d := m.Draft(); d != (Draft{}) {
		t.Errorf("Draft = %+v, want empty", d)
	}
	if m.Len() != 1 {
		t.Errorf("Create added a note: Len = %d, want 1", m.Len())
	}
}

func TestSave_CreateThenSaveScenario(t *testing.T) {
	m, st := newTestModel(t, nil)

	m.Create()
	n, err := m.Save(Draft{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n.Title != "A" || n.Content != "B" {
		t.Errorf("saved note = %+v, want title A content B", n)
	}
	if n.ID == "" {
		t.Error("saved note has empty id")
	}
	if n.UpdatedAt == 0 {
		t.Error("saved note has zero timestamp")
	}
	if m.ActiveID() != n.ID {
		t.Errorf("ActiveID = %q, want %q", m.ActiveID(), n.ID)
	}
	if m.Mode() != ModeViewing {
		t.Errorf("Mode = %v, want Viewing after save", m.Mode())
	}
	if len(st.saved) != 1 {
		t.Fatalf("write-throughs = %d, want 1", len(st.saved))
	}
	if len(st.saved[0]) != 1 || st.saved[0][0].ID != n.ID {
		t.Errorf("persisted collection = %+v, want the saved note", st.saved[0])
	}
}

func TestSave_EmptyDraftRejected(t *testing.T) {
	for _, d := range []Draft{
		{},
		{Title: "   ", Content: "\t\n"},
	} {
		m, st := newTestModel(t, []Note{{ID: "1", Title: "keep"}})
		m.Edit()

		_, err := m.Save(d)
		if !errors.Is(err, ErrEmptyNote) {
			t.Fatalf("Save(%+v) err = %v, want ErrEmptyNote", d, err)
		}
		if m.Len() != 1 || m.Notes()[0].Title != "keep" {
			t.Errorf("collection changed on rejected save: %+v", m.Notes())
		}
		if m.Mode() != ModeEditing {
			t.Errorf("Mode = %v, want still Editing", m.Mode())
		}
		if len(st.saved) != 0 {
			t.Errorf("rejected save wrote through %d times", len(st.saved))
		}
	}
}

func TestSave_UpdatesActiveNoteInPlace(t *testing.T) {
	m, _ := newTestModel(t, []Note{
		{ID: "1", Title: "one", UpdatedAt: 5},
		{ID: "2", Title: "two"},
	})
	m.Edit()
	n, err := m.Save(Draft{Title: "one*", Content: "body"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n.ID != "1" {
		t.Errorf("id changed on update: %q", n.ID)
	}
	notes := m.Notes()
	if notes[0].ID != "1" || notes[1].ID != "2" {
		t.Errorf("order changed on update: %v, %v", notes[0].ID, notes[1].ID)
	}
	if notes[0].Title != "one*" || notes[0].Content != "body" {
		t.Errorf("note not updated: %+v", notes[0])
	}
	if notes[0].UpdatedAt <= 5 {
		t.Errorf("UpdatedAt not stamped: %d", notes[0].UpdatedAt)
	}
}

func TestSave_PrependsNewNotes(t *testing.T) {
	m, _ := newTestModel(t, []Note{{ID: "old", Title: "old"}})

	m.Create()
	n, err := m.Save(Draft{Title: "new"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	notes := m.Notes()
	if notes[0].ID != n.ID {
		t.Errorf("new note not first: %+v", notes)
	}
	if notes[1].ID != "old" {
		t.Errorf("existing note displaced: %+v", notes)
	}
}

func TestSave_PersistenceErrorKeepsMutation(t *testing.T) {
	m, st := newTestModel(t, nil)
	st.saveErr = errors.New("quota exceeded")

	m.Create()
	n, err := m.Save(Draft{Title: "A"})

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *PersistenceError", err)
	}
	if m.Len() != 1 || m.ActiveID() != n.ID {
		t.Errorf("in-memory state lost on persistence error: len=%d active=%q", m.Len(), m.ActiveID())
	}
	if m.Mode() != ModeViewing {
		t.Errorf("Mode = %v, want Viewing", m.Mode())
	}
}

func TestIDUniqueness_AcrossOperations(t *testing.T) {
	m, _ := newTestModel(t, nil)

	for i := 0; i < 20; i++ {
		m.Create()
		if _, err := m.Save(Draft{Title: "note"}); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	// Delete a few from the middle, then add more.
	notes := m.Notes()
	for _, n := range notes[5:10] {
		if err := m.Delete(n.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
	}
	for i := 0; i < 5; i++ {
		m.Create()
		if _, err := m.Save(Draft{Content: "body"}); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	seen := make(map[string]bool)
	for _, n := range m.Notes() {
		if seen[n.ID] {
			t.Fatalf("duplicate id %q", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestDelete_ActiveNoteReselectsFirst(t *testing.T) {
	m, _ := newTestModel(t, []Note{{ID: "1"}, {ID: "2"}})

	if err := m.Delete("1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if m.Len() != 1 || m.Notes()[0].ID != "2" {
		t.Errorf("collection = %+v, want [2]", m.Notes())
	}
	if m.ActiveID() != "2" {
		t.Errorf("ActiveID = %q, want %q", m.ActiveID(), "2")
	}
}

func TestDelete_LastNoteClearsSelection(t *testing.T) {
	m, _ := newTestModel(t, []Note{{ID: "1"}})

	if err := m.Delete("1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if m.ActiveID() != "" {
		t.Errorf("ActiveID = %q, want empty", m.ActiveID())
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
}

func TestDelete_InactiveNoteKeepsSelection(t *testing.T) {
	m, _ := newTestModel(t, []Note{{ID: "1"}, {ID: "2"}})

	if err := m.Delete("2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if m.ActiveID() != "1" {
		t.Errorf("ActiveID = %q, want %q", m.ActiveID(), "1")
	}
}

func TestDelete_ExitsEditMode(t *testing.T) {
	m, _ := newTestModel(t, []Note{{ID: "1"}, {ID: "2"}})
	m.Edit()

	if err := m.Delete("1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if m.Mode() != ModeViewing {
		t.Errorf("Mode = %v, want Viewing", m.Mode())
	}
}

func TestEdit_SeedsDraftFromActiveNote(t *testing.T) {
	m, _ := newTestModel(t, []Note{{ID: "1", Title: "t", Content: "c"}})
	m.Edit()

	if m.Mode() != ModeEditing {
		t.Fatalf("Mode = %v, want Editing", m.Mode())
	}
	if d := m.Draft(); d.Title != "t" || d.Content != "c" {
		t.Errorf("Draft = %+v, want seeded from note", d)
	}
}

func TestCancelEdit_RestoresViewingAndDiscardsDraft(t *testing.T) {
	m, st := newTestModel(t, []Note{{ID: "1", Title: "t", Content: "c"}})
	m.Edit()
	m.CancelEdit()

	if m.Mode() != ModeViewing {
		t.Errorf("Mode = %v, want Viewing", m.Mode())
	}
	if d := m.Draft(); d != (Draft{}) {
		t.Errorf("Draft = %+v, want discarded", d)
	}
	n, ok := m.Active()
	if !ok || n.Title != "t" || n.Content != "c" {
		t.Errorf("active note changed by cancel: %+v", n)
	}
	if len(st.saved) != 0 {
		t.Errorf("cancel wrote through %d times", len(st.saved))
	}
}

func TestSelect_WhileEditingDiscardsDraft(t *testing.T) {
	m, _ := newTestModel(t, []Note{
		{ID: "1", Title: "one"},
		{ID: "2", Title: "two", Content: "body"},
	})
	m.Edit()

	m.Select("2")
	if m.Mode() != ModeViewing {
		t.Errorf("Mode = %v, want Viewing", m.Mode())
	}
	if d := m.Draft(); d != (Draft{}) {
		t.Errorf("Draft = %+v, want discarded", d)
	}
	n, ok := m.Active()
	if !ok || n.ID != "2" || n.Content != "body" {
		t.Errorf("note 2 altered by select: %+v", n)
	}
}

func TestSelect_UnknownIDIsNoOp(t *testing.T) {
	m, _ := newTestModel(t, []Note{{ID: "1"}})
	m.Select("missing")
	if m.ActiveID() != "1" {
		t.Errorf("ActiveID = %q, want %q", m.ActiveID(), "1")
	}
}

func TestReload_ActiveNoteVanished(t *testing.T) {
	m, _ := newTestModel(t, []Note{{ID: "1"}, {ID: "2"}})

	m.Reload([]Note{{ID: "2"}, {ID: "3"}})
	if m.ActiveID() != "2" {
		t.Errorf("ActiveID = %q, want new first note", m.ActiveID())
	}

	m.Reload(nil)
	if m.ActiveID() != "" {
		t.Errorf("ActiveID = %q, want empty after empty reload", m.ActiveID())
	}
}

func TestReload_ActiveNoteSurvives(t *testing.T) {
	m, _ := newTestModel(t, []Note{{ID: "1"}, {ID: "2"}})
	m.Select("2")

	m.Reload([]Note{{ID: "2", Title: "changed"}})
	if m.ActiveID() != "2" {
		t.Errorf("ActiveID = %q, want %q", m.ActiveID(), "2")
	}
}

func TestSubscribe_NotifiesOnChanges(t *testing.T) {
	m, _ := newTestModel(t, []Note{{ID: "1"}})

	var got Change
	m.Subscribe(func(c Change) { got |= c })

	m.Edit()
	if got&ChangeMode == 0 || got&ChangeDraft == 0 {
		t.Errorf("Edit notified %b, want mode+draft", got)
	}

	got = 0
	if _, err := m.Save(Draft{Title: "x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got&ChangeCollection == 0 {
		t.Errorf("Save notified %b, want collection", got)
	}
}
