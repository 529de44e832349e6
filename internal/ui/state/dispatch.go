package state

import (
	"github.com/atomicstack/xitems/internal/keysym"
	"github.com/atomicstack/xitems/internal/logging/events"
)

// Result is what the backend needs to know after one event: whether to run
// a redraw pass now, and the session outcome.
type Result struct {
	Redraw  bool
	Outcome Outcome
}

type action int

const (
	actionNone action = iota
	actionDown
	actionUp
	actionCommit
	actionCancel
)

// controlRemap translates symbols pressed with Control into the symbol of
// the action they stand for. Unlisted symbols pass through unchanged.
var controlRemap = map[keysym.Keysym]keysym.Keysym{
	keysym.Escape:       keysym.Escape,
	keysym.BracketLeft:  keysym.Escape,
	keysym.BracketRight: keysym.Escape,
	'C':                 keysym.Escape,
	'c':                 keysym.Escape,
	'M':                 keysym.Return,
	'm':                 keysym.Return,
	'J':                 keysym.Return,
	'j':                 keysym.Return,
	'N':                 keysym.Down,
	'n':                 keysym.Down,
	'P':                 keysym.Up,
	'p':                 keysym.Up,
}

func actionFor(sym keysym.Keysym) action {
	switch sym {
	case 'j', 'J', keysym.Down:
		return actionDown
	case 'k', 'K', keysym.Up:
		return actionUp
	case keysym.Return, keysym.KPEnter:
		return actionCommit
	case keysym.Escape:
		return actionCancel
	}
	return actionNone
}

// Dispatch feeds one event to the session. Events arriving after the
// session ended are ignored.
func (s *Session) Dispatch(ev Event) Result {
	if s.Done() {
		return Result{Outcome: s.outcome}
	}
	if _, ok := ev.(Damage); !ok {
		s.deferred = false
	}
	switch e := ev.(type) {
	case KeyPress:
		s.handleKey(e)
	case PointerEnter:
		s.inBounds = true
		s.SelectByPosition(e.Y)
	case PointerMove:
		s.SelectByPosition(e.Y)
	case PointerLeave:
		s.inBounds = false
	case ButtonPress:
		s.handleButton(e)
	case Damage:
		s.Damage(e.Y0, e.Y1)
		events.Redraw.Damage(e.Y0, e.Y1, e.More)
		s.deferred = e.More
	case FocusChange:
		s.focused = e.Focused
		events.Selection.Focus(e.Focused)
	}
	return Result{
		Redraw:  !s.Done() && !s.deferred && s.NeedsRedraw(),
		Outcome: s.outcome,
	}
}

func (s *Session) handleKey(k KeyPress) {
	sym := k.Sym
	if k.Mods&keysym.Control != 0 {
		if mapped, ok := controlRemap[sym]; ok {
			sym = mapped
		}
	} else if s.SelectByKey(sym) {
		s.commit(events.ReasonQuickSelect)
		return
	}
	switch actionFor(sym) {
	case actionDown:
		s.Move(Down)
	case actionUp:
		s.Move(Up)
	case actionCommit:
		s.commit(events.ReasonKey)
	case actionCancel:
		s.cancel(events.ReasonKey)
	}
}

func (s *Session) handleButton(b ButtonPress) {
	switch {
	case b.Button == WheelUp:
		s.Move(Up)
	case b.Button == WheelDown:
		s.Move(Down)
	case s.inBounds:
		s.commit(events.ReasonClick)
	default:
		s.cancel(events.ReasonClickOutside)
	}
}

func (s *Session) commit(reason events.OutcomeReason) {
	s.outcome = Outcome{Status: Committed}
	if it := s.SelectedItem(); it != nil {
		s.outcome.Text = it.Text
		s.outcome.HasText = true
	}
	events.Outcome.Commit(s.outcome.Text, reason)
}

func (s *Session) cancel(reason events.OutcomeReason) {
	s.outcome = Outcome{Status: Cancelled}
	events.Outcome.Cancel(reason)
}
