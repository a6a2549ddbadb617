package engine

import "github.com/piwi3910/CartonPack/internal/model"

// packedLayer groups the items sharing one z-band of a box. Its geometry is
// always derived from its members; an empty layer reports zero everywhere.
type packedLayer struct {
	items []model.PlacedItem
}

func (l *packedLayer) insert(p model.PlacedItem) {
	l.items = append(l.items, p)
}

// merge absorbs the other layer's members. No overlap checking or
// repositioning happens here; the caller keeps the result valid.
func (l *packedLayer) merge(other packedLayer) {
	l.items = append(l.items, other.items...)
}

func (l *packedLayer) startX() int { return l.minExtent(func(p model.PlacedItem) int { return p.X }) }
func (l *packedLayer) endX() int   { return l.maxExtent(model.PlacedItem.MaxX) }
func (l *packedLayer) startY() int { return l.minExtent(func(p model.PlacedItem) int { return p.Y }) }
func (l *packedLayer) endY() int   { return l.maxExtent(model.PlacedItem.MaxY) }
func (l *packedLayer) startZ() int { return l.minExtent(func(p model.PlacedItem) int { return p.Z }) }
func (l *packedLayer) endZ() int   { return l.maxExtent(model.PlacedItem.MaxZ) }

func (l *packedLayer) width() int  { return l.endX() - l.startX() }
func (l *packedLayer) length() int { return l.endY() - l.startY() }
func (l *packedLayer) depth() int  { return l.endZ() - l.startZ() }

func (l *packedLayer) footprint() int {
	return l.width() * l.length()
}

func (l *packedLayer) weight() int {
	var total int
	for _, p := range l.items {
		total += p.Item.Weight
	}
	return total
}

func (l *packedLayer) minExtent(f func(model.PlacedItem) int) int {
	if len(l.items) == 0 {
		return 0
	}
	m := f(l.items[0])
	for _, p := range l.items[1:] {
		if v := f(p); v < m {
			m = v
		}
	}
	return m
}

func (l *packedLayer) maxExtent(f func(model.PlacedItem) int) int {
	if len(l.items) == 0 {
		return 0
	}
	m := f(l.items[0])
	for _, p := range l.items[1:] {
		if v := f(p); v > m {
			m = v
		}
	}
	return m
}
