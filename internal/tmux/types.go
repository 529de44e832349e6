package tmux

import (
	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Cursor is a cell position inside the active pane.
type Cursor struct {
	X, Y int
}

// PopupOptions describes a display-popup request. Empty X or Y place the
// popup at the mouse position.
type PopupOptions struct {
	Client  string
	Width   int
	Height  int
	X       string
	Y       string
	Command string
}

type tmuxClient interface {
	DisplayMessage(target, format string) (string, error)
	Command(parts ...string) (string, error)
	Close() error
}

var newTmux = func(socketPath string) (tmuxClient, error) {
	if socketPath != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}
