package ui

import (
	"github.com/atomicstack/xitems/internal/keysym"
	"github.com/atomicstack/xitems/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Down   key.Binding
	Up     key.Binding
	Select key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:   key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		Up:     key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Select: key.NewBinding(key.WithKeys("enter", "ctrl+j"), key.WithHelp("enter", "select")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Select, k.Cancel}
}

var namedKeys = map[tea.KeyType]keysym.Keysym{
	tea.KeyEnter:     keysym.Return,
	tea.KeyEscape:    keysym.Escape,
	tea.KeyTab:       keysym.Tab,
	tea.KeyBackspace: keysym.BackSpace,
	tea.KeySpace:     keysym.Space,
	tea.KeyUp:        keysym.Up,
	tea.KeyDown:      keysym.Down,
	tea.KeyLeft:      keysym.Left,
	tea.KeyRight:     keysym.Right,
	tea.KeyHome:      keysym.Home,
	tea.KeyEnd:       keysym.End,
	tea.KeyPgUp:      keysym.Prior,
	tea.KeyPgDown:    keysym.Next,
	tea.KeyInsert:    keysym.Insert,
	tea.KeyDelete:    keysym.Delete,
}

// controlKeys are the control characters that do not fall in the
// ctrl+a..ctrl+z block.
var controlKeys = map[tea.KeyType]keysym.Keysym{
	tea.KeyCtrlAt:           keysym.Space,
	tea.KeyCtrlBackslash:    keysym.Backslash,
	tea.KeyCtrlCloseBracket: keysym.BracketRight,
}

// keyPress translates a terminal key into a key symbol press. Pastes and
// keys without a symbol report false.
func keyPress(msg tea.KeyMsg) (state.KeyPress, bool) {
	var mods keysym.Modifiers
	if msg.Alt {
		mods |= keysym.Alt
	}
	switch {
	case msg.Paste:
		return state.KeyPress{}, false
	case msg.Type == tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return state.KeyPress{}, false
		}
		return state.KeyPress{Sym: keysym.FromRune(msg.Runes[0]), Mods: mods}, true
	case msg.Type == tea.KeyShiftTab:
		return state.KeyPress{Sym: keysym.Tab, Mods: mods | keysym.Shift}, true
	case msg.Type <= tea.KeyF1 && msg.Type >= tea.KeyF20:
		return state.KeyPress{Sym: keysym.F1 + keysym.Keysym(tea.KeyF1-msg.Type), Mods: mods}, true
	}
	if sym, ok := namedKeys[msg.Type]; ok {
		return state.KeyPress{Sym: sym, Mods: mods}, true
	}
	if sym, ok := controlKeys[msg.Type]; ok {
		return state.KeyPress{Sym: sym, Mods: mods | keysym.Control}, true
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		letter := keysym.Keysym('a' + rune(msg.Type-tea.KeyCtrlA))
		return state.KeyPress{Sym: letter, Mods: mods | keysym.Control}, true
	}
	return state.KeyPress{}, false
}
