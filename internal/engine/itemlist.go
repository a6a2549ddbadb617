package engine

import "github.com/piwi3910/CartonPack/internal/model"

// ItemList is the ordered queue of items awaiting placement. The packer
// consumes it head-first; the ordering itself is the caller's priority policy.
type ItemList struct {
	items []model.Item
}

// NewItemList builds a queue from the given items, in order.
func NewItemList(items ...model.Item) *ItemList {
	cp := make([]model.Item, len(items))
	copy(cp, items)
	return &ItemList{items: cp}
}

// Count returns the number of items still queued.
func (l *ItemList) Count() int {
	return len(l.items)
}

// Peek returns the head item without consuming it.
func (l *ItemList) Peek() (model.Item, bool) {
	if len(l.items) == 0 {
		return model.Item{}, false
	}
	return l.items[0], true
}

// PeekN returns up to the first n items without consuming them.
func (l *ItemList) PeekN(n int) []model.Item {
	if n > len(l.items) {
		n = len(l.items)
	}
	out := make([]model.Item, n)
	copy(out, l.items[:n])
	return out
}

// Pop removes and returns the head item.
func (l *ItemList) Pop() (model.Item, bool) {
	if len(l.items) == 0 {
		return model.Item{}, false
	}
	head := l.items[0]
	l.items = l.items[1:]
	return head, true
}

// Rest returns a fresh queue holding everything after the head. Lookahead
// simulations peek at it without disturbing the live queue.
func (l *ItemList) Rest() *ItemList {
	if len(l.items) <= 1 {
		return &ItemList{}
	}
	return NewItemList(l.items[1:]...)
}

// Remove deletes the given items from the queue by ID, preserving order.
func (l *ItemList) Remove(items []model.Item) {
	if len(items) == 0 {
		return
	}
	ids := make(map[string]bool, len(items))
	for _, it := range items {
		ids[it.ID] = true
	}
	kept := l.items[:0]
	for _, it := range l.items {
		if !ids[it.ID] {
			kept = append(kept, it)
		}
	}
	l.items = kept
}
