package app

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Message types for tea.Cmd
type (
	// TickMsg is sent on each clock tick.
	TickMsg time.Time

	// ToastMsg displays a temporary status message.
	ToastMsg struct {
		Message  string
		Duration time.Duration
		IsError  bool // true for error toasts (red), false for success (green)
	}

	// StoreChangedMsg reports an external modification of the notes file.
	StoreChangedMsg struct{}
)

// tickCmd returns a command that ticks every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchStoreCmd waits for the next change notification from the store
// watcher. The channel closing ends the watch silently.
func watchStoreCmd(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return StoreChangedMsg{}
	}
}

// yankCmd copies text to the system clipboard and reports the result as a
// toast.
func yankCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ToastMsg{Message: "Copy failed: " + err.Error(), Duration: 2 * time.Second, IsError: true}
		}
		return ToastMsg{Message: "Copied note to clipboard", Duration: 2 * time.Second}
	}
}
