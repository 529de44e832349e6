package menu

// List owns the items of one run. Items are stored in input order and linked
// into a single cycle through explicit next/prev indices.
type List struct {
	items []Item
}

// NewList builds a list holding items in the given order.
func NewList(items ...Item) *List {
	l := &List{items: make([]Item, 0, len(items))}
	for _, it := range items {
		l.Append(it)
	}
	return l
}

// Append links it after the current tail and returns its index.
func (l *List) Append(it Item) int {
	idx := len(l.items)
	if idx == 0 {
		it.prev, it.next = 0, 0
		l.items = append(l.items, it)
		return idx
	}
	first := 0
	last := l.items[first].prev
	it.prev = last
	it.next = first
	l.items = append(l.items, it)
	l.items[last].next = idx
	l.items[first].prev = idx
	return idx
}

// Len returns the number of items.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// First returns the index of the first item, or -1 when empty.
func (l *List) First() int {
	if l.Len() == 0 {
		return -1
	}
	return 0
}

// Last returns the index of the item before First.
func (l *List) Last() int {
	if l.Len() == 0 {
		return -1
	}
	return l.items[0].prev
}

func (l *List) Next(i int) int { return l.items[i].next }

func (l *List) Prev(i int) int { return l.items[i].prev }

// Item returns a pointer into the arena. The pointer stays valid for the
// life of the list since membership is fixed once built.
func (l *List) Item(i int) *Item {
	if i < 0 || i >= l.Len() {
		return nil
	}
	return &l.items[i]
}

// Each walks one full cycle starting at First. Returning false stops the walk.
func (l *List) Each(fn func(idx int, it *Item) bool) {
	if l.Len() == 0 {
		return
	}
	idx := l.First()
	for {
		if !fn(idx, &l.items[idx]) {
			return
		}
		idx = l.items[idx].next
		if idx == l.First() {
			return
		}
	}
}

// MaxWidth returns the widest display width among the items.
func (l *List) MaxWidth() int {
	width := 0
	l.Each(func(_ int, it *Item) bool {
		if it.Width > width {
			width = it.Width
		}
		return true
	})
	return width
}
