package ui

import (
	"github.com/atomicstack/xitems/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// itemArea returns the top-left cell of the first row and the size of the
// area covered by item rows.
func (m *Model) itemArea() (x, y, w, h int) {
	ox, oy := m.origin()
	x = ox + m.styles.Panel.GetBorderLeftSize()
	y = oy + m.styles.Panel.GetBorderTopSize()
	return x, y, m.rowWidth + 2*m.styles.HorizontalPadding, m.session.Height()
}

// pointerEvents derives enter, move and leave events from the pointer
// position, followed by a button event for presses.
func (m *Model) pointerEvents(msg tea.MouseMsg) []state.Event {
	x, y, w, h := m.itemArea()
	inside := msg.X >= x && msg.X < x+w && msg.Y >= y && msg.Y < y+h
	rel := msg.Y - y

	evs := make([]state.Event, 0, 2)
	switch {
	case inside && !m.inside:
		evs = append(evs, state.PointerEnter{Y: rel})
	case inside:
		evs = append(evs, state.PointerMove{Y: rel})
	case m.inside:
		evs = append(evs, state.PointerLeave{})
	}
	m.inside = inside

	if msg.Action == tea.MouseActionPress {
		if b, ok := button(msg); ok {
			evs = append(evs, state.ButtonPress{Button: b})
		}
	}
	return evs
}

func button(msg tea.MouseMsg) (state.Button, bool) {
	switch msg.Button {
	case tea.MouseButtonLeft:
		return state.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return state.ButtonMiddle, true
	case tea.MouseButtonRight:
		return state.ButtonSecondary, true
	case tea.MouseButtonWheelUp:
		return state.WheelUp, true
	case tea.MouseButtonWheelDown:
		return state.WheelDown, true
	case tea.MouseButtonNone:
		return 0, false
	}
	if tea.MouseEvent(msg).IsWheel() {
		// horizontal scrolling has no meaning in a single column
		return 0, false
	}
	return state.ButtonOther, true
}
