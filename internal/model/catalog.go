package model

// BoxPreset is a reusable carton definition kept in the box catalog.
type BoxPreset struct {
	Reference   string `json:"reference"`
	InnerWidth  int    `json:"inner_width"`  // mm
	InnerLength int    `json:"inner_length"` // mm
	InnerDepth  int    `json:"inner_depth"`  // mm
	MaxWeight   int    `json:"max_weight"`   // g
	Notes       string `json:"notes,omitempty"`
}

// ToBox converts a preset to a Box with the given available quantity.
func (p BoxPreset) ToBox(quantity int) (Box, error) {
	return NewBox(p.Reference, p.InnerWidth, p.InnerLength, p.InnerDepth, p.MaxWeight, quantity)
}

// Catalog is the named collection of carton presets a warehouse stocks.
type Catalog struct {
	Presets []BoxPreset `json:"presets"`
}

// DefaultCatalog returns common single-wall carton sizes.
func DefaultCatalog() Catalog {
	return Catalog{
		Presets: []BoxPreset{
			{Reference: "XS Mailer", InnerWidth: 220, InnerLength: 160, InnerDepth: 100, MaxWeight: 5000},
			{Reference: "Small", InnerWidth: 300, InnerLength: 200, InnerDepth: 150, MaxWeight: 10000},
			{Reference: "Medium", InnerWidth: 400, InnerLength: 300, InnerDepth: 250, MaxWeight: 15000},
			{Reference: "Large", InnerWidth: 500, InnerLength: 400, InnerDepth: 300, MaxWeight: 20000},
			{Reference: "XL", InnerWidth: 600, InnerLength: 400, InnerDepth: 400, MaxWeight: 25000},
		},
	}
}

// Find returns the preset with the given reference.
func (c Catalog) Find(reference string) (BoxPreset, bool) {
	for _, p := range c.Presets {
		if p.Reference == reference {
			return p, true
		}
	}
	return BoxPreset{}, false
}

// Add appends a preset, replacing any existing one with the same reference.
func (c *Catalog) Add(p BoxPreset) {
	for i := range c.Presets {
		if c.Presets[i].Reference == p.Reference {
			c.Presets[i] = p
			return
		}
	}
	c.Presets = append(c.Presets, p)
}

// Remove deletes the preset with the given reference.
func (c *Catalog) Remove(reference string) bool {
	for i := range c.Presets {
		if c.Presets[i].Reference == reference {
			c.Presets = append(c.Presets[:i], c.Presets[i+1:]...)
			return true
		}
	}
	return false
}
