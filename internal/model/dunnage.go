package model

import "math"

// DunnageEstimate sums the consumables needed to close one packed box.
type DunnageEstimate struct {
	BoxReference string  `json:"box_reference"`
	VoidVolume   int     `json:"void_volume"`  // cubic mm of unfilled space
	FillBags     int     `json:"fill_bags"`    // air pillows to fill the void
	TapeLength   float64 `json:"tape_length"`  // mm of sealing tape
	VoidPercent  float64 `json:"void_percent"` // share of inner volume unfilled
}

// fillBagVolume is the nominal volume of one 200x100x80 mm air pillow.
const fillBagVolume = 200 * 100 * 80

// EstimateDunnage computes void fill and tape for a packed box. Tape length
// follows the H-seal pattern: one run across the top length plus two runs
// down each end, top and bottom.
func EstimateDunnage(pb PackedBox) DunnageEstimate {
	void := pb.Box.Volume() - pb.UsedVolume()
	if void < 0 {
		void = 0
	}

	bags := int(math.Ceil(float64(void) / float64(fillBagVolume)))

	w := float64(pb.Box.InnerWidth)
	l := float64(pb.Box.InnerLength)
	d := float64(pb.Box.InnerDepth)
	tape := 2*(l+2*d) + 4*(w+2*d)

	pct := 0.0
	if pb.Box.Volume() > 0 {
		pct = float64(void) / float64(pb.Box.Volume()) * 100.0
	}

	return DunnageEstimate{
		BoxReference: pb.Box.Reference,
		VoidVolume:   void,
		FillBags:     bags,
		TapeLength:   tape,
		VoidPercent:  pct,
	}
}

// EstimateDunnageAll computes dunnage for every box in a pack result.
func EstimateDunnageAll(result PackResult) []DunnageEstimate {
	estimates := make([]DunnageEstimate, 0, len(result.Boxes))
	for _, pb := range result.Boxes {
		estimates = append(estimates, EstimateDunnage(pb))
	}
	return estimates
}
