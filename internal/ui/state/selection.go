package state

import (
	"github.com/atomicstack/xitems/internal/keysym"
	"github.com/atomicstack/xitems/internal/logging/events"
	"github.com/atomicstack/xitems/internal/menu"
)

// Direction is a navigation direction through the cyclic list.
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Move advances the selection in the given direction, wrapping around the
// ends. Without a selection, down picks the first item and up the last.
func (s *Session) Move(dir Direction) bool {
	from := s.selected
	var to int
	switch {
	case from == None && dir == Down:
		to = s.list.First()
	case from == None:
		to = s.list.Last()
	case dir == Down:
		to = s.list.Next(from)
	default:
		to = s.list.Prev(from)
	}
	changed := s.set(to)
	if changed {
		events.Selection.Move(dir.String(), from, to)
	}
	return changed
}

// SelectByPosition selects the item whose row band contains y. Positions at
// or above the first band pick the first item; positions below the last
// band pick the last.
func (s *Session) SelectByPosition(y int) bool {
	first := s.list.First()
	idx := first
	for top := s.rowHeight; y >= top; top += s.rowHeight {
		next := s.list.Next(idx)
		if next == first {
			break
		}
		idx = next
	}
	changed := s.set(idx)
	if changed {
		events.Selection.Hover(y, idx)
	}
	return changed
}

// SelectByKey selects the first item, in list order, bound to the canonical
// form of sym. It reports whether such an item exists; on a miss the
// selection is left alone.
func (s *Session) SelectByKey(sym keysym.Keysym) bool {
	canon := keysym.Canonical(sym)
	found := None
	s.list.Each(func(idx int, it *menu.Item) bool {
		if it.HasKey(canon) {
			found = idx
			return false
		}
		return true
	})
	events.Selection.Key(canon.String(), found, found != None)
	if found == None {
		return false
	}
	s.set(found)
	return true
}

// set moves the selection to idx, marking the old and new rows dirty. It is a
// no-op when idx is already selected.
func (s *Session) set(idx int) bool {
	if idx == s.selected {
		return false
	}
	if s.selected != None {
		s.MarkDirty(s.selected)
	}
	s.selected = idx
	if idx != None {
		s.MarkDirty(idx)
	}
	return true
}
