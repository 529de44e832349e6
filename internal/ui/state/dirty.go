package state

import (
	"github.com/atomicstack/xitems/internal/logging/events"
	"github.com/atomicstack/xitems/internal/menu"
)

// Painter draws one row. y is the row's top offset, row*RowHeight.
type Painter interface {
	PaintRow(row, y int, it *menu.Item, selected bool)
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(row, y int, it *menu.Item, selected bool)

func (f PainterFunc) PaintRow(row, y int, it *menu.Item, selected bool) {
	f(row, y, it, selected)
}

// MarkDirty flags the item at idx for the next redraw pass.
func (s *Session) MarkDirty(idx int) {
	if it := s.list.Item(idx); it != nil {
		it.Dirty = true
	}
}

// MarkAll flags every item.
func (s *Session) MarkAll() {
	s.list.Each(func(_ int, it *menu.Item) bool {
		it.Dirty = true
		return true
	})
}

// Damage flags every item whose row band overlaps the half-open span
// [y0, y1) and returns how many bands overlapped.
func (s *Session) Damage(y0, y1 int) int {
	if y1 <= y0 {
		return 0
	}
	marked := 0
	row := 0
	s.list.Each(func(_ int, it *menu.Item) bool {
		top := row * s.rowHeight
		bottom := top + s.rowHeight
		if top < y1 && y0 < bottom {
			it.Dirty = true
			marked++
		}
		row++
		return true
	})
	return marked
}

// NeedsRedraw reports whether any item is dirty.
func (s *Session) NeedsRedraw() bool {
	dirty := false
	s.list.Each(func(_ int, it *menu.Item) bool {
		dirty = it.Dirty
		return !dirty
	})
	return dirty
}

// DirtyRows returns the row numbers of dirty items in list order.
func (s *Session) DirtyRows() []int {
	var rows []int
	row := 0
	s.list.Each(func(_ int, it *menu.Item) bool {
		if it.Dirty {
			rows = append(rows, row)
		}
		row++
		return true
	})
	return rows
}

// Redraw walks the list once, paints the dirty rows and clears their flags.
// Clean rows are neither painted nor touched. It returns the number of rows
// painted.
func (s *Session) Redraw(p Painter) int {
	painted := 0
	row := 0
	s.list.Each(func(idx int, it *menu.Item) bool {
		if it.Dirty {
			p.PaintRow(row, row*s.rowHeight, it, idx == s.selected)
			it.Dirty = false
			painted++
		}
		row++
		return true
	})
	if painted > 0 {
		events.Redraw.Pass(painted, s.Rows())
	}
	return painted
}
