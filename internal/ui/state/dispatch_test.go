package state

import (
	"testing"

	"github.com/atomicstack/xitems/internal/keysym"
)

func key(sym keysym.Keysym) KeyPress { return KeyPress{Sym: sym} }

func ctrl(sym keysym.Keysym) KeyPress { return KeyPress{Sym: sym, Mods: keysym.Control} }

func TestDispatchDownDownCommit(t *testing.T) {
	s := newTestSession(t, "apple", "banana", "cherry")
	s.Dispatch(key(keysym.Down))
	s.Dispatch(key('j'))
	res := s.Dispatch(key(keysym.Return))
	if res.Outcome.Status != Committed || !res.Outcome.HasText || res.Outcome.Text != "cherry" {
		t.Fatalf("expected cherry committed, got %+v", res.Outcome)
	}
}

func TestDispatchCancel(t *testing.T) {
	s := newTestSession(t, "apple")
	res := s.Dispatch(key(keysym.Escape))
	if res.Outcome.Status != Cancelled || res.Outcome.HasText {
		t.Fatalf("expected cancel without text, got %+v", res.Outcome)
	}
}

func TestDispatchCommitWithoutSelection(t *testing.T) {
	s := newTestSession(t, "apple")
	s.Unselect()
	res := s.Dispatch(key(keysym.KPEnter))
	if res.Outcome.Status != Committed || res.Outcome.HasText {
		t.Fatalf("expected commit without output, got %+v", res.Outcome)
	}
}

func TestDispatchMoveRequestsRedraw(t *testing.T) {
	s := newTestSession(t, "alpha", "bravo")
	if res := s.Dispatch(key('k')); !res.Redraw {
		t.Fatalf("expected redraw after move")
	}
	if s.Selected() != 1 {
		t.Fatalf("expected k to wrap to last, got %d", s.Selected())
	}
	s.Redraw(&recorder{})
	if res := s.Dispatch(key('x')); res.Redraw {
		t.Fatalf("expected unbound key to be ignored")
	}
}

func TestDispatchControlRemap(t *testing.T) {
	cases := []struct {
		name   string
		sym    keysym.Keysym
		status Status
		sel    int
	}{
		{"ctrl-c cancels", 'c', Cancelled, 0},
		{"ctrl-C cancels", 'C', Cancelled, 0},
		{"ctrl-[ cancels", keysym.BracketLeft, Cancelled, 0},
		{"ctrl-] cancels", keysym.BracketRight, Cancelled, 0},
		{"ctrl-m commits", 'm', Committed, 0},
		{"ctrl-J commits", 'J', Committed, 0},
		{"ctrl-n moves down", 'n', Open, 1},
		{"ctrl-P moves up", 'P', Open, 2},
		{"ctrl-k passes through", 'k', Open, 2},
		{"ctrl-x ignored", 'x', Open, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, "alpha", "bravo", "charlie")
			res := s.Dispatch(ctrl(tc.sym))
			if res.Outcome.Status != tc.status {
				t.Fatalf("expected %v, got %v", tc.status, res.Outcome.Status)
			}
			if s.Selected() != tc.sel {
				t.Fatalf("expected selection %d, got %d", tc.sel, s.Selected())
			}
		})
	}
}

func TestDispatchQuickSelectCommits(t *testing.T) {
	s := newTestSession(t, "a apple", "b banana", "c cherry")
	res := s.Dispatch(key('B'))
	if res.Outcome.Status != Committed || res.Outcome.Text != "banana" {
		t.Fatalf("expected banana committed, got %+v", res.Outcome)
	}
}

func TestDispatchQuickSelectSkippedWithControl(t *testing.T) {
	s := newTestSession(t, "x apple", "b banana")
	res := s.Dispatch(ctrl('b'))
	if res.Outcome.Status != Open || s.Selected() != 0 {
		t.Fatalf("expected ctrl-b to be ignored, got %+v sel=%d", res.Outcome, s.Selected())
	}
}

func TestDispatchQuickSelectTakesPrecedenceOverNavigation(t *testing.T) {
	s := newTestSession(t, "apple", "j jam")
	res := s.Dispatch(key('j'))
	if res.Outcome.Status != Committed || res.Outcome.Text != "jam" {
		t.Fatalf("expected jam committed, got %+v", res.Outcome)
	}
}

func TestDispatchPointer(t *testing.T) {
	s := newTestSession(t, "alpha", "bravo", "charlie")
	s.Dispatch(PointerEnter{Y: 2})
	if !s.InBounds() || s.Selected() != 2 {
		t.Fatalf("expected in bounds on row 2, got inBounds=%v sel=%d", s.InBounds(), s.Selected())
	}
	s.Dispatch(PointerMove{Y: 1})
	if s.Selected() != 1 {
		t.Fatalf("expected hover on row 1, got %d", s.Selected())
	}
	res := s.Dispatch(ButtonPress{Button: ButtonPrimary})
	if res.Outcome.Status != Committed || res.Outcome.Text != "bravo" {
		t.Fatalf("expected click to commit bravo, got %+v", res.Outcome)
	}
}

func TestDispatchClickOutsideCancels(t *testing.T) {
	s := newTestSession(t, "alpha", "bravo")
	s.Dispatch(PointerEnter{Y: 0})
	s.Dispatch(PointerLeave{})
	if s.InBounds() {
		t.Fatalf("expected pointer out of bounds")
	}
	res := s.Dispatch(ButtonPress{Button: ButtonSecondary})
	if res.Outcome.Status != Cancelled {
		t.Fatalf("expected click outside to cancel, got %+v", res.Outcome)
	}
}

func TestDispatchWheelNavigates(t *testing.T) {
	s := newTestSession(t, "alpha", "bravo", "charlie")
	res := s.Dispatch(ButtonPress{Button: WheelDown})
	if res.Outcome.Status != Open || s.Selected() != 1 {
		t.Fatalf("expected wheel down to move, got %+v sel=%d", res.Outcome, s.Selected())
	}
	s.Dispatch(ButtonPress{Button: WheelUp})
	s.Dispatch(ButtonPress{Button: WheelUp})
	if s.Selected() != 2 {
		t.Fatalf("expected wheel up to wrap, got %d", s.Selected())
	}
}

func TestDispatchDamageBatchDefersRedraw(t *testing.T) {
	s := newTestSession(t, "alpha", "bravo", "charlie")
	if res := s.Dispatch(Damage{Y0: 0, Y1: 1, More: true}); res.Redraw {
		t.Fatalf("expected redraw deferred while more damage follows")
	}
	if res := s.Dispatch(Damage{Y0: 0, Y1: 2, More: true}); res.Redraw {
		t.Fatalf("expected redraw deferred while more damage follows")
	}
	res := s.Dispatch(Damage{Y0: 2, Y1: 3})
	if !res.Redraw {
		t.Fatalf("expected redraw at end of batch")
	}
	r := &recorder{}
	if n := s.Redraw(r); n != 3 {
		t.Fatalf("expected one coalesced pass over 3 rows, painted %d", n)
	}
}

func TestDispatchKeyAfterDeferredDamageRedraws(t *testing.T) {
	s := newTestSession(t, "alpha", "bravo", "charlie")
	if res := s.Dispatch(Damage{Y0: 0, Y1: 1, More: true}); res.Redraw {
		t.Fatalf("expected redraw deferred while more damage follows")
	}
	res := s.Dispatch(key(keysym.Down))
	if !res.Redraw {
		t.Fatalf("expected key press to redraw despite pending damage")
	}
	r := &recorder{}
	if n := s.Redraw(r); n != 2 {
		t.Fatalf("expected damaged and moved rows painted, got %d", n)
	}
	if res := s.Dispatch(key(keysym.Down)); !res.Redraw {
		t.Fatalf("expected second move to redraw")
	}
}

func TestDispatchFocusChange(t *testing.T) {
	s := newTestSession(t, "alpha")
	s.Dispatch(FocusChange{Focused: false})
	if s.Focused() {
		t.Fatalf("expected focus cleared")
	}
	s.Dispatch(FocusChange{Focused: true})
	if !s.Focused() {
		t.Fatalf("expected focus restored")
	}
}

func TestDispatchIgnoresEventsAfterOutcome(t *testing.T) {
	s := newTestSession(t, "alpha", "bravo")
	s.Dispatch(key(keysym.Escape))
	res := s.Dispatch(key(keysym.Down))
	if res.Outcome.Status != Cancelled || s.Selected() != 0 || res.Redraw {
		t.Fatalf("expected events after cancel to be ignored, got %+v", res)
	}
}
