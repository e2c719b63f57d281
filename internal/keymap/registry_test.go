package keymap

import "testing"

func TestResolve_ContextShadowsGlobal(t *testing.T) {
	r := NewRegistry()
	r.RegisterBinding(Binding{Key: "e", Command: "global-thing", Context: "global"})
	r.RegisterBinding(Binding{Key: "e", Command: "edit-note", Context: "detail"})

	if got := r.Resolve("e", "detail"); got != "edit-note" {
		t.Errorf("Resolve(e, detail) = %q, want edit-note", got)
	}
	if got := r.Resolve("e", "sidebar"); got != "global-thing" {
		t.Errorf("Resolve(e, sidebar) = %q, want global fallback", got)
	}
}

func TestResolve_UserOverrideWins(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)
	r.SetUserOverride("d", "yank-note")

	if got := r.Resolve("d", "sidebar"); got != "yank-note" {
		t.Errorf("Resolve(d, sidebar) = %q, want override", got)
	}
}

func TestResolve_UnboundKey(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	if got := r.Resolve("ctrl+z", "sidebar"); got != "" {
		t.Errorf("Resolve(ctrl+z) = %q, want empty", got)
	}
}

func TestDefaults_CoreCommandsBound(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	for _, tc := range []struct {
		key, context, want string
	}{
		{"n", "sidebar", "new-note"},
		{"enter", "sidebar", "select-note"},
		{"d", "sidebar", "delete-note"},
		{"enter", "detail", "edit-note"},
		{"esc", "edit", "cancel-edit"},
		{"ctrl+s", "edit", "save-note"},
		{"ctrl+c", "edit", "quit"},
	} {
		if got := r.Resolve(tc.key, tc.context); got != tc.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tc.key, tc.context, got, tc.want)
		}
	}
}
