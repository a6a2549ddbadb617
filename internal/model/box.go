package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Box represents an available carton type. Dimensions are usable inner
// millimetres; MaxWeight is the heaviest content load in grams.
type Box struct {
	ID          string `json:"id"`
	Reference   string `json:"reference"`
	InnerWidth  int    `json:"inner_width"`  // mm
	InnerLength int    `json:"inner_length"` // mm
	InnerDepth  int    `json:"inner_depth"`  // mm
	MaxWeight   int    `json:"max_weight"`   // g
	Quantity    int    `json:"quantity"`
}

// NewBox creates a Box with a generated ID. All dimensions and the weight
// limit must be positive.
func NewBox(reference string, innerWidth, innerLength, innerDepth, maxWeight, quantity int) (Box, error) {
	if innerWidth <= 0 || innerLength <= 0 || innerDepth <= 0 {
		return Box{}, fmt.Errorf("box %q: %dx%dx%d mm: %w", reference, innerWidth, innerLength, innerDepth, ErrInvalidDimensions)
	}
	if maxWeight <= 0 {
		return Box{}, fmt.Errorf("box %q: max weight %d g: %w", reference, maxWeight, ErrInvalidDimensions)
	}
	return Box{
		ID:          uuid.New().String()[:8],
		Reference:   reference,
		InnerWidth:  innerWidth,
		InnerLength: innerLength,
		InnerDepth:  innerDepth,
		MaxWeight:   maxWeight,
		Quantity:    quantity,
	}, nil
}

// Volume returns the usable inner volume in cubic mm.
func (b Box) Volume() int {
	return b.InnerWidth * b.InnerLength * b.InnerDepth
}
