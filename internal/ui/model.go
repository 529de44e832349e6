package ui

import (
	"reflect"

	"github.com/atomicstack/xitems/internal/theme"
	"github.com/atomicstack/xitems/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// Options controls placement and chrome of the panel.
type Options struct {
	// X and Y are the panel origin in terminal cells.
	X, Y       int
	ShowFooter bool
}

// Model implements the Bubble Tea model for the menu panel.
type Model struct {
	session *state.Session
	styles  *theme.Styles

	rows       []string
	itemWidth  int
	rowWidth   int
	originX    int
	originY    int
	width      int
	height     int
	inside     bool
	showFooter bool

	help help.Model
	keys keyMap

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps session and paints every row once.
func NewModel(session *state.Session, styles *theme.Styles, opts Options) *Model {
	if styles == nil {
		styles = theme.Default()
	}
	m := &Model{
		session:    session,
		styles:     styles,
		rows:       make([]string, session.Rows()),
		itemWidth:  session.List().MaxWidth(),
		originX:    max(opts.X, 0),
		originY:    max(opts.Y, 0),
		showFooter: opts.ShowFooter,
		help:       help.New(),
		keys:       defaultKeyMap(),
	}
	m.rowWidth = m.itemWidth
	m.registerHandlers()
	session.MarkAll()
	session.Redraw(m)
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.FocusMsg{}):      m.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// dispatch feeds events to the session in order, repainting when asked to,
// and quits the program once an outcome is reached.
func (m *Model) dispatch(evs ...state.Event) tea.Cmd {
	for _, ev := range evs {
		res := m.session.Dispatch(ev)
		if res.Redraw {
			m.session.Redraw(m)
		}
		if res.Outcome.Status != state.Open {
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	ev, ok := keyPress(key)
	if !ok {
		return nil
	}
	return m.dispatch(ev)
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	return m.dispatch(m.pointerEvents(mouse)...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	m.rowWidth = m.fitRowWidth()
	return m.dispatch(state.Damage{Y0: 0, Y1: m.session.Height()})
}

func (m *Model) handleFocusMsg(tea.Msg) tea.Cmd {
	return m.dispatch(state.FocusChange{Focused: true})
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	return m.dispatch(state.FocusChange{Focused: false})
}

// fitRowWidth narrows rows that would not fit the terminal.
func (m *Model) fitRowWidth() int {
	if m.width <= 0 {
		return m.itemWidth
	}
	avail := m.width - m.styles.Panel.GetHorizontalFrameSize() - 2*m.styles.HorizontalPadding
	if avail < 1 {
		avail = 1
	}
	return min(m.itemWidth, avail)
}

// Outcome reports how the session ended.
func (m *Model) Outcome() state.Outcome {
	return m.session.Outcome()
}

// Session exposes the underlying session.
func (m *Model) Session() *state.Session {
	return m.session
}
