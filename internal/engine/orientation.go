package engine

import "github.com/piwi3910/CartonPack/internal/model"

// orientationsFor enumerates the distinct axis permutations an item's
// rotation policy allows. Items with equal sides produce fewer entries.
func orientationsFor(item model.Item) []model.Orientation {
	var perms [][3]int
	w, l, d := item.Width, item.Length, item.Depth

	switch item.Rotation {
	case model.RotationNone:
		perms = [][3]int{{w, l, d}}
	case model.RotationKeepFlat:
		perms = [][3]int{{w, l, d}, {l, w, d}}
	default:
		perms = [][3]int{
			{w, l, d}, {l, w, d},
			{w, d, l}, {d, w, l},
			{l, d, w}, {d, l, w},
		}
	}

	seen := make(map[[3]int]bool, len(perms))
	out := make([]model.Orientation, 0, len(perms))
	for _, p := range perms {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, model.Orientation{Item: item, Width: p[0], Length: p[1], Depth: p[2]})
	}
	return out
}

// possibleOrientations returns the orientations of item that fit in the free
// space at (x,y,z), respect the box's weight headroom, and pass the item's
// placement constraint if it has one. An empty result is a normal outcome,
// not an error.
func possibleOrientations(box model.Box, item model.Item, widthLeft, lengthLeft, depthLeft, x, y, z int, packed model.PackedList) []model.Orientation {
	if packed.Weight()+item.Weight > box.MaxWeight {
		return nil
	}

	var fits []model.Orientation
	for _, o := range orientationsFor(item) {
		if o.Width > widthLeft || o.Length > lengthLeft || o.Depth > depthLeft {
			continue
		}
		if item.Constraint != nil && !item.Constraint(packed, x, y, z, o.Width, o.Length, o.Depth) {
			continue
		}
		fits = append(fits, o)
	}
	return fits
}
