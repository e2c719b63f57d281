package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},
		{Key: "n", Command: "new-note", Context: "global"},

		// Sidebar context (note list)
		{Key: "q", Command: "quit", Context: "sidebar"},
		{Key: "j", Command: "cursor-down", Context: "sidebar"},
		{Key: "down", Command: "cursor-down", Context: "sidebar"},
		{Key: "k", Command: "cursor-up", Context: "sidebar"},
		{Key: "up", Command: "cursor-up", Context: "sidebar"},
		{Key: "g", Command: "cursor-top", Context: "sidebar"},
		{Key: "G", Command: "cursor-bottom", Context: "sidebar"},
		{Key: "enter", Command: "select-note", Context: "sidebar"},
		{Key: "tab", Command: "switch-pane", Context: "sidebar"},
		{Key: "e", Command: "edit-note", Context: "sidebar"},
		{Key: "d", Command: "delete-note", Context: "sidebar"},
		{Key: "X", Command: "delete-note", Context: "sidebar"},
		{Key: "y", Command: "yank-note", Context: "sidebar"},
		{Key: "m", Command: "toggle-markdown", Context: "sidebar"},
		{Key: "<", Command: "sidebar-narrower", Context: "sidebar"},
		{Key: ">", Command: "sidebar-wider", Context: "sidebar"},

		// Detail context (viewing a note)
		{Key: "q", Command: "quit", Context: "detail"},
		{Key: "tab", Command: "switch-pane", Context: "detail"},
		{Key: "esc", Command: "back", Context: "detail"},
		{Key: "enter", Command: "edit-note", Context: "detail"},
		{Key: "i", Command: "edit-note", Context: "detail"},
		{Key: "e", Command: "edit-note", Context: "detail"},
		{Key: "d", Command: "delete-note", Context: "detail"},
		{Key: "j", Command: "scroll-down", Context: "detail"},
		{Key: "down", Command: "scroll-down", Context: "detail"},
		{Key: "k", Command: "scroll-up", Context: "detail"},
		{Key: "up", Command: "scroll-up", Context: "detail"},
		{Key: "g", Command: "scroll-top", Context: "detail"},
		{Key: "G", Command: "scroll-bottom", Context: "detail"},
		{Key: "y", Command: "yank-note", Context: "detail"},
		{Key: "m", Command: "toggle-markdown", Context: "detail"},

		// Edit context (draft form); typing keys go to the inputs, so only
		// chords and escapes are bound here
		{Key: "esc", Command: "cancel-edit", Context: "edit"},
		{Key: "ctrl+s", Command: "save-note", Context: "edit"},
		{Key: "tab", Command: "next-field", Context: "edit"},
		{Key: "shift+tab", Command: "prev-field", Context: "edit"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
