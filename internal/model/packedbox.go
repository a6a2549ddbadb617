package model

// PackedBox holds the outcome of packing one box: the ledger of placed items
// and the items that could not be placed anywhere in it. The content extents
// are the bounding dimensions of everything placed, recorded by the packer
// from its merged layers.
type PackedBox struct {
	Box      Box        `json:"box"`
	Items    PackedList `json:"items"`
	Unpacked []Item     `json:"unpacked,omitempty"`

	ContentWidth  int `json:"content_width,omitempty"`  // mm
	ContentLength int `json:"content_length,omitempty"` // mm
	ContentDepth  int `json:"content_depth,omitempty"`  // mm
}

// ItemWeight returns the total weight of the packed contents in grams.
func (pb PackedBox) ItemWeight() int {
	return pb.Items.Weight()
}

// UsedVolume returns the combined volume of the packed contents in cubic mm.
func (pb PackedBox) UsedVolume() int {
	return pb.Items.Volume()
}

// VolumeUtilization returns the usage percentage of the box's inner volume.
func (pb PackedBox) VolumeUtilization() float64 {
	bv := pb.Box.Volume()
	if bv == 0 {
		return 0
	}
	return (float64(pb.UsedVolume()) / float64(bv)) * 100.0
}

// PackResult holds the full multi-box solution.
type PackResult struct {
	Boxes         []PackedBox `json:"boxes"`
	UnpackedItems []Item      `json:"unpacked_items"`
}

// PackedItemCount returns the number of items placed across all boxes.
func (r PackResult) PackedItemCount() int {
	var total int
	for _, b := range r.Boxes {
		total += len(b.Items)
	}
	return total
}

// TotalWeight returns the combined content weight across all boxes in grams.
func (r PackResult) TotalWeight() int {
	var total int
	for _, b := range r.Boxes {
		total += b.ItemWeight()
	}
	return total
}

// TotalVolumeUtilization returns the overall inner-volume usage percentage.
func (r PackResult) TotalVolumeUtilization() float64 {
	var used, capacity int
	for _, b := range r.Boxes {
		used += b.UsedVolume()
		capacity += b.Box.Volume()
	}
	if capacity == 0 {
		return 0
	}
	return (float64(used) / float64(capacity)) * 100.0
}

// Job ties a named packing problem together for save/load.
type Job struct {
	Name   string      `json:"name"`
	Items  []Item      `json:"items"`
	Boxes  []Box       `json:"boxes"`
	Result *PackResult `json:"result,omitempty"`
}

// NewJob creates an empty named job.
func NewJob() Job {
	return Job{
		Name:  "Untitled",
		Items: []Item{},
		Boxes: []Box{},
	}
}
