package model

// Orientation is one axis permutation of an item's dimensions, as it would
// sit in a box. The permutation must be consistent with the item's rotation
// policy; the volume is identical across all orientations of an item.
type Orientation struct {
	Item   Item `json:"item"`
	Width  int  `json:"width"`  // mm along the box width axis
	Length int  `json:"length"` // mm along the box length axis
	Depth  int  `json:"depth"`  // mm along the box depth (vertical) axis
}

// Footprint returns the area this orientation occupies on its layer.
func (o Orientation) Footprint() int {
	return o.Width * o.Length
}

// Volume returns the occupied volume in cubic mm.
func (o Orientation) Volume() int {
	return o.Width * o.Length * o.Depth
}

// PlacedItem is an orientation committed at a position inside a box.
// X/Y/Z is the minimum corner.
type PlacedItem struct {
	Orientation
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// MaxX returns the far extent along the width axis.
func (p PlacedItem) MaxX() int { return p.X + p.Width }

// MaxY returns the far extent along the length axis.
func (p PlacedItem) MaxY() int { return p.Y + p.Length }

// MaxZ returns the far extent along the depth axis.
func (p PlacedItem) MaxZ() int { return p.Z + p.Depth }

// Intersects reports whether the axis-aligned bounding boxes of two placed
// items overlap. Touching faces do not count as an intersection.
func (p PlacedItem) Intersects(q PlacedItem) bool {
	return p.X < q.MaxX() && p.MaxX() > q.X &&
		p.Y < q.MaxY() && p.MaxY() > q.Y &&
		p.Z < q.MaxZ() && p.MaxZ() > q.Z
}

// PackedList is the insertion-ordered ledger of items placed into one box.
type PackedList []PlacedItem

// Insert appends a placed item to the ledger.
func (l *PackedList) Insert(p PlacedItem) {
	*l = append(*l, p)
}

// Weight returns the combined weight of all placed items in grams.
func (l PackedList) Weight() int {
	var total int
	for _, p := range l {
		total += p.Item.Weight
	}
	return total
}

// Volume returns the combined volume of all placed items in cubic mm.
func (l PackedList) Volume() int {
	var total int
	for _, p := range l {
		total += p.Volume()
	}
	return total
}

// Items returns the source items in placement order.
func (l PackedList) Items() []Item {
	items := make([]Item, len(l))
	for i, p := range l {
		items[i] = p.Item
	}
	return items
}

// RemoveItems deletes the entries whose source items match the given set by
// identity. Trial simulations use this to roll back their placements.
func (l *PackedList) RemoveItems(items []Item) {
	if len(items) == 0 {
		return
	}
	ids := make(map[string]bool, len(items))
	for _, it := range items {
		ids[it.ID] = true
	}
	kept := (*l)[:0]
	for _, p := range *l {
		if !ids[p.Item.ID] {
			kept = append(kept, p)
		}
	}
	*l = kept
}
