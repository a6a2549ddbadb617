package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidDimensions is returned when an item or box is constructed with
// non-positive dimensions or a negative weight.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// RotationPolicy restricts which axis permutations of an item may be used
// when placing it.
type RotationPolicy int

const (
	RotationAny      RotationPolicy = iota // All six permutations allowed
	RotationKeepFlat                       // Width and length may swap, depth stays vertical
	RotationNone                           // Place exactly as measured
)

func (r RotationPolicy) String() string {
	switch r {
	case RotationKeepFlat:
		return "KeepFlat"
	case RotationNone:
		return "None"
	default:
		return "Any"
	}
}

// PlacementConstraint lets an item veto a proposed placement for domain
// reasons the engine does not know about (e.g., a per-description count cap).
// It receives the items packed so far, the proposed minimum-corner position,
// and the candidate orientation's dimensions. Returning false rejects the
// placement outright.
type PlacementConstraint func(packed PackedList, x, y, z, width, length, depth int) bool

// Item represents a single article to be packed. Dimensions are inner-pack
// millimetres, weight is grams. Items are treated as immutable once created.
type Item struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Width       int            `json:"width"`  // mm
	Length      int            `json:"length"` // mm
	Depth       int            `json:"depth"`  // mm
	Weight      int            `json:"weight"` // g
	Rotation    RotationPolicy `json:"rotation"`
	Quantity    int            `json:"quantity"`

	// Constraint is consulted for every candidate placement when non-nil.
	Constraint PlacementConstraint `json:"-"`
}

// NewItem creates an Item with a generated ID. Dimensions must be positive
// and weight non-negative.
func NewItem(description string, width, length, depth, weight, quantity int) (Item, error) {
	if width <= 0 || length <= 0 || depth <= 0 {
		return Item{}, fmt.Errorf("item %q: %dx%dx%d mm: %w", description, width, length, depth, ErrInvalidDimensions)
	}
	if weight < 0 {
		return Item{}, fmt.Errorf("item %q: negative weight %d g: %w", description, weight, ErrInvalidDimensions)
	}
	return Item{
		ID:          uuid.New().String()[:8],
		Description: description,
		Width:       width,
		Length:      length,
		Depth:       depth,
		Weight:      weight,
		Rotation:    RotationAny,
		Quantity:    quantity,
	}, nil
}

// Volume returns the item volume in cubic mm. It is invariant under any
// orientation of the item.
func (i Item) Volume() int {
	return i.Width * i.Length * i.Depth
}
