package model

import "math"

// ShippingEstimate holds the billable-weight calculation for one packed box
// under a particular carrier profile.
type ShippingEstimate struct {
	BoxReference     string  `json:"box_reference"`
	Carrier          string  `json:"carrier"`
	ActualWeight     int     `json:"actual_weight"`     // g, packed contents
	VolumetricWeight int     `json:"volumetric_weight"` // g, from box volume
	BillableWeight   int     `json:"billable_weight"`   // g, max of the two
	LongestSide      int     `json:"longest_side"`      // mm
	OverWeightLimit  bool    `json:"over_weight_limit"`
	OverSizeLimit    bool    `json:"over_size_limit"`
	Utilization      float64 `json:"utilization"` // percent
}

// cm3PerMM3 converts cubic millimetres to cubic centimetres.
const cm3PerMM3 = 1.0 / 1000.0

// EstimateShipping computes the billable weight for a packed box. A carrier
// with a zero volumetric divisor bills actual weight only.
func EstimateShipping(pb PackedBox, carrier CarrierProfile) ShippingEstimate {
	actual := pb.ItemWeight()

	volumetric := 0
	if carrier.VolumetricDivisor > 0 {
		volumeCm3 := float64(pb.Box.Volume()) * cm3PerMM3
		volumetric = int(math.Ceil(volumeCm3 / carrier.VolumetricDivisor * 1000.0))
	}

	billable := actual
	if volumetric > billable {
		billable = volumetric
	}

	longest := pb.Box.InnerWidth
	if pb.Box.InnerLength > longest {
		longest = pb.Box.InnerLength
	}
	if pb.Box.InnerDepth > longest {
		longest = pb.Box.InnerDepth
	}

	return ShippingEstimate{
		BoxReference:     pb.Box.Reference,
		Carrier:          carrier.Name,
		ActualWeight:     actual,
		VolumetricWeight: volumetric,
		BillableWeight:   billable,
		LongestSide:      longest,
		OverWeightLimit:  carrier.MaxParcelWeight > 0 && billable > carrier.MaxParcelWeight,
		OverSizeLimit:    carrier.MaxLongestSide > 0 && longest > carrier.MaxLongestSide,
		Utilization:      pb.VolumeUtilization(),
	}
}

// EstimateShippingAll computes estimates for every box in a pack result.
func EstimateShippingAll(result PackResult, carrier CarrierProfile) []ShippingEstimate {
	estimates := make([]ShippingEstimate, 0, len(result.Boxes))
	for _, pb := range result.Boxes {
		estimates = append(estimates, EstimateShipping(pb, carrier))
	}
	return estimates
}
