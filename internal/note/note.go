// Package note implements the note collection model: an ordered list of
// notes, the active-note selection, and the viewing/editing mode machine.
// All mutation flows through Model operations; the UI only reads.
package note

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note represents a single note. The JSON tags define the wire form used by
// the persistent store: [{id, title, content, updated}, ...].
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt int64  `json:"updated"` // milliseconds since epoch
}

// Draft is the transient edit buffer bound to the edit form. It is never
// persisted; it exists only while the model is in ModeEditing.
type Draft struct {
	Title   string
	Content string
}

// Empty reports whether both fields are blank after trimming whitespace.
func (d Draft) Empty() bool {
	return strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == ""
}

// Mode is the detail pane mode.
type Mode int

const (
	ModeViewing Mode = iota
	ModeEditing
)

// String returns the display name for the mode.
func (m Mode) String() string {
	if m == ModeEditing {
		return "Editing"
	}
	return "Viewing"
}

// newID generates a unique note identifier.
func newID() string {
	return uuid.NewString()
}

// nowMillis returns the current time in milliseconds since epoch.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}
