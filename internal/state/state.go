// Package state persists small UI preferences between runs. Unlike the note
// store, losing this file is harmless; every accessor degrades to defaults.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent user preferences.
type State struct {
	// Sidebar width preference (columns, 0 = use default)
	SidebarWidth int `json:"sidebarWidth,omitempty"`

	// Last active note, restored on startup when it still exists
	ActiveNoteID string `json:"activeNoteId,omitempty"`

	// Markdown rendering toggle for the detail pane
	MarkdownDisabled bool `json:"markdownDisabled,omitempty"`
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "notable"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetSidebarWidth returns the saved sidebar width.
// Returns 0 if no preference is saved (use default).
func GetSidebarWidth() int {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.SidebarWidth
}

// SetSidebarWidth saves the sidebar width preference.
func SetSidebarWidth(width int) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.SidebarWidth = width
	mu.Unlock()
	return Save()
}

// GetActiveNoteID returns the last active note id.
func GetActiveNoteID() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.ActiveNoteID
}

// SetActiveNoteID saves the active note id.
func SetActiveNoteID(id string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ActiveNoteID = id
	mu.Unlock()
	return Save()
}

// GetMarkdownEnabled returns whether markdown rendering is enabled.
func GetMarkdownEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return true
	}
	return !current.MarkdownDisabled
}

// SetMarkdownEnabled saves the markdown rendering preference.
func SetMarkdownEnabled(enabled bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.MarkdownDisabled = !enabled
	mu.Unlock()
	return Save()
}
