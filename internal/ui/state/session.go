// Package state holds the selection state machine of a running menu. It has
// no terminal dependencies: a render backend feeds it semantic events and
// paints whatever rows it reports dirty.
package state

import (
	"errors"

	"github.com/atomicstack/xitems/internal/menu"
)

// None is the selection value when no item is selected.
const None = -1

// ErrEmptyList is returned when a session is requested for a list with no
// items.
var ErrEmptyList = errors.New("state: empty item list")

// Status is the dispatcher state.
type Status int

const (
	Open Status = iota
	Committed
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Open:
		return "open"
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Outcome describes how the session ended. HasText is false for a commit
// made while nothing was selected.
type Outcome struct {
	Status  Status
	Text    string
	HasText bool
}

// Session bundles everything one run of the menu mutates.
type Session struct {
	list      *menu.List
	selected  int
	rowHeight int
	inBounds  bool
	focused   bool
	deferred  bool
	outcome   Outcome
}

// NewSession creates a session over list with the first item selected.
// Row heights below one are raised to one.
func NewSession(list *menu.List, rowHeight int) (*Session, error) {
	if list.Len() == 0 {
		return nil, ErrEmptyList
	}
	if rowHeight < 1 {
		rowHeight = 1
	}
	return &Session{
		list:      list,
		selected:  list.First(),
		rowHeight: rowHeight,
		focused:   true,
	}, nil
}

func (s *Session) List() *menu.List { return s.list }

// Selected returns the selected index or None.
func (s *Session) Selected() int { return s.selected }

// SelectedItem returns the selected item, or nil.
func (s *Session) SelectedItem() *menu.Item {
	if s.selected == None {
		return nil
	}
	return s.list.Item(s.selected)
}

func (s *Session) RowHeight() int { return s.rowHeight }

// Rows returns the number of rows, one per item.
func (s *Session) Rows() int { return s.list.Len() }

// Height returns the total height of all row bands.
func (s *Session) Height() int { return s.Rows() * s.rowHeight }

// Unselect clears the selection.
func (s *Session) Unselect() {
	if s.selected == None {
		return
	}
	s.MarkDirty(s.selected)
	s.selected = None
}

func (s *Session) InBounds() bool { return s.inBounds }

func (s *Session) Focused() bool { return s.focused }

func (s *Session) Outcome() Outcome { return s.outcome }

// Done reports whether the session reached a terminal state.
func (s *Session) Done() bool { return s.outcome.Status != Open }
