package menu

import (
	"sort"

	"github.com/atomicstack/xitems/internal/keysym"
)

// MaxKeySyms bounds the number of quick-select bindings one item may carry.
// Extra bindings are dropped with a warning.
const MaxKeySyms = 8

// Item represents one selectable entry.
type Item struct {
	// Text is written on commit. It never changes after construction.
	Text string
	// Display is Text with terminal control sequences removed.
	Display string
	Length  int
	Width   int
	Dirty   bool

	keys map[keysym.Keysym]struct{}
	prev int
	next int
}

// HasKey reports whether the item is bound to the canonical form of ks.
func (it *Item) HasKey(ks keysym.Keysym) bool {
	if it == nil || it.keys == nil {
		return false
	}
	_, ok := it.keys[keysym.Canonical(ks)]
	return ok
}

// KeyCount returns the number of distinct bindings.
func (it *Item) KeyCount() int {
	if it == nil {
		return 0
	}
	return len(it.keys)
}

// KeySyms returns the bindings in ascending order.
func (it *Item) KeySyms() []keysym.Keysym {
	if it == nil || len(it.keys) == 0 {
		return nil
	}
	out := make([]keysym.Keysym, 0, len(it.keys))
	for ks := range it.keys {
		out = append(out, ks)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// addKey records a canonicalised binding. It returns false when the item is
// already at capacity; a duplicate of an existing binding always succeeds.
func (it *Item) addKey(ks keysym.Keysym) bool {
	ks = keysym.Canonical(ks)
	if it.keys == nil {
		it.keys = make(map[keysym.Keysym]struct{})
	}
	if _, ok := it.keys[ks]; ok {
		return true
	}
	if len(it.keys) >= MaxKeySyms {
		return false
	}
	it.keys[ks] = struct{}{}
	return true
}
