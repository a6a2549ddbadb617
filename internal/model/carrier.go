package model

import "fmt"

// CarrierProfile defines how a shipping carrier converts parcel volume into
// billable weight, plus the carrier's hard parcel limits.
type CarrierProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// VolumetricDivisor is the carrier's dimensional weight divisor in
	// cubic cm per kg (e.g., 5000 for most express carriers).
	VolumetricDivisor float64 `json:"volumetric_divisor"`

	MaxParcelWeight int `json:"max_parcel_weight"` // g, 0 = no limit
	MaxLongestSide  int `json:"max_longest_side"`  // mm, 0 = no limit

	IsBuiltIn bool `json:"is_built_in"`
}

// Built-in carrier profiles
var CarrierProfiles = []CarrierProfile{
	{
		Name:              "DHL Express",
		Description:       "DHL Express worldwide volumetric billing",
		VolumetricDivisor: 5000,
		MaxParcelWeight:   70000,
		MaxLongestSide:    1200,
		IsBuiltIn:         true,
	},
	{
		Name:              "UPS",
		Description:       "UPS standard dimensional weight",
		VolumetricDivisor: 5000,
		MaxParcelWeight:   70000,
		MaxLongestSide:    2740,
		IsBuiltIn:         true,
	},
	{
		Name:              "PostNL",
		Description:       "PostNL domestic parcels (actual weight only)",
		VolumetricDivisor: 0,
		MaxParcelWeight:   23000,
		MaxLongestSide:    1760,
		IsBuiltIn:         true,
	},
	{
		Name:              "Generic",
		Description:       "Generic 5000 divisor, no parcel limits",
		VolumetricDivisor: 5000,
		MaxParcelWeight:   0,
		MaxLongestSide:    0,
		IsBuiltIn:         true,
	},
}

// CustomCarriers holds user-defined carrier profiles loaded at startup.
var CustomCarriers []CarrierProfile

// AllCarriers returns the built-in carriers followed by any custom ones.
func AllCarriers() []CarrierProfile {
	all := make([]CarrierProfile, 0, len(CarrierProfiles)+len(CustomCarriers))
	all = append(all, CarrierProfiles...)
	all = append(all, CustomCarriers...)
	return all
}

// GetCarrier returns a carrier profile by name, or the Generic profile if not found.
func GetCarrier(name string) CarrierProfile {
	for _, c := range CustomCarriers {
		if c.Name == name {
			return c
		}
	}
	for _, c := range CarrierProfiles {
		if c.Name == name {
			return c
		}
	}
	return CarrierProfiles[len(CarrierProfiles)-1] // Return Generic (last one)
}

// CarrierNames returns a list of all available carrier names.
func CarrierNames() []string {
	var names []string
	for _, c := range AllCarriers() {
		names = append(names, c.Name)
	}
	return names
}

// NewCustomCarrier returns a custom profile inheriting the Generic defaults.
func NewCustomCarrier(name string) CarrierProfile {
	c := CarrierProfiles[len(CarrierProfiles)-1]
	c.Name = name
	c.Description = ""
	c.IsBuiltIn = false
	return c
}

// AddCustomCarrier adds or updates a custom carrier profile. Names of
// built-in carriers are rejected.
func AddCustomCarrier(c CarrierProfile) error {
	for _, b := range CarrierProfiles {
		if b.Name == c.Name {
			return fmt.Errorf("cannot override built-in carrier %q", c.Name)
		}
	}
	c.IsBuiltIn = false
	for i := range CustomCarriers {
		if CustomCarriers[i].Name == c.Name {
			CustomCarriers[i] = c
			return nil
		}
	}
	CustomCarriers = append(CustomCarriers, c)
	return nil
}

// RemoveCustomCarrier removes a custom carrier by name.
func RemoveCustomCarrier(name string) error {
	for _, b := range CarrierProfiles {
		if b.Name == name {
			return fmt.Errorf("cannot remove built-in carrier %q", name)
		}
	}
	for i := range CustomCarriers {
		if CustomCarriers[i].Name == name {
			CustomCarriers = append(CustomCarriers[:i], CustomCarriers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("carrier %q not found", name)
}
