// Package keymap maps key presses to command identifiers per UI context,
// with user overrides layered on top of the defaults.
package keymap

// Binding associates a key with a command in a specific context.
type Binding struct {
	Key     string // bubbletea key string, e.g. "ctrl+s", "enter", "j"
	Command string // command identifier, e.g. "delete-note"
	Context string // UI context, "global" applies everywhere
}

// Registry resolves key presses to commands.
type Registry struct {
	bindings  map[string]map[string]string // context -> key -> command
	overrides map[string]string            // key -> command, user-supplied
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings:  make(map[string]map[string]string),
		overrides: make(map[string]string),
	}
}

// RegisterBinding adds a binding. A later binding for the same context and
// key wins.
func (r *Registry) RegisterBinding(b Binding) {
	ctx := b.Context
	if ctx == "" {
		ctx = "global"
	}
	if r.bindings[ctx] == nil {
		r.bindings[ctx] = make(map[string]string)
	}
	r.bindings[ctx][b.Key] = b.Command
}

// SetUserOverride maps a key to a command regardless of context. Overrides
// take precedence over all default bindings.
func (r *Registry) SetUserOverride(key, command string) {
	r.overrides[key] = command
}

// Resolve returns the command for a key in the given context. Context
// bindings shadow global ones; user overrides shadow both. Returns "" when
// the key is unbound.
func (r *Registry) Resolve(key, context string) string {
	if cmd, ok := r.overrides[key]; ok {
		return cmd
	}
	if ctx := r.bindings[context]; ctx != nil {
		if cmd, ok := ctx[key]; ok {
			return cmd
		}
	}
	if global := r.bindings["global"]; global != nil {
		if cmd, ok := global[key]; ok {
			return cmd
		}
	}
	return ""
}

// Bindings returns all bindings for a context, for help rendering.
func (r *Registry) Bindings(context string) []Binding {
	var out []Binding
	for key, cmd := range r.bindings[context] {
		out = append(out, Binding{Key: key, Command: cmd, Context: context})
	}
	return out
}
