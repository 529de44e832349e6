package state

import "github.com/atomicstack/xitems/internal/keysym"

// Event is one semantic input event reported by a render backend.
type Event interface {
	isEvent()
}

// KeyPress is a key press with the modifiers held at the time.
type KeyPress struct {
	Sym  keysym.Keysym
	Mods keysym.Modifiers
}

// PointerEnter reports the pointer entering the panel at row offset Y.
type PointerEnter struct{ Y int }

// PointerMove reports pointer motion inside the panel.
type PointerMove struct{ Y int }

// PointerLeave reports the pointer leaving the panel.
type PointerLeave struct{}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonMiddle
	ButtonSecondary
	WheelUp
	WheelDown
	ButtonOther
)

// IsWheel reports whether b is a scroll wheel direction.
func (b Button) IsWheel() bool { return b == WheelUp || b == WheelDown }

// ButtonPress reports a pointer button press.
type ButtonPress struct{ Button Button }

// Damage reports that rows overlapping [Y0, Y1) must be repainted. More is
// set when further damage of the same batch follows.
type Damage struct {
	Y0, Y1 int
	More   bool
}

// FocusChange reports the terminal gaining or losing input focus.
type FocusChange struct{ Focused bool }

func (KeyPress) isEvent()     {}
func (PointerEnter) isEvent() {}
func (PointerMove) isEvent()  {}
func (PointerLeave) isEvent() {}
func (ButtonPress) isEvent()  {}
func (Damage) isEvent()       {}
func (FocusChange) isEvent()  {}
