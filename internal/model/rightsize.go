package model

import "sort"

// Headroom describes how far a packed box exceeds what its contents need.
// Suggested dimensions are the bounding extents of the placed items.
type Headroom struct {
	BoxReference    string `json:"box_reference"`
	SuggestedWidth  int    `json:"suggested_width"`  // mm
	SuggestedLength int    `json:"suggested_length"` // mm
	SuggestedDepth  int    `json:"suggested_depth"`  // mm
	FreeVolume      int    `json:"free_volume"`      // cubic mm saved by the suggestion
}

// minUsefulHeadroom filters out suggestions that shave less than this volume.
const minUsefulHeadroom = 500 * 500 * 10 // 2.5 litres

// DetectHeadroom finds packed boxes whose contents would fit a smaller carton.
// Results are sorted by free volume, largest saving first. The extents the
// packer recorded are used when present; results assembled by hand fall back
// to scanning the placed items.
func DetectHeadroom(result PackResult) []Headroom {
	var found []Headroom
	for _, pb := range result.Boxes {
		if len(pb.Items) == 0 {
			continue
		}
		maxX, maxY, maxZ := pb.ContentWidth, pb.ContentLength, pb.ContentDepth
		if maxX == 0 || maxY == 0 || maxZ == 0 {
			for _, p := range pb.Items {
				if p.MaxX() > maxX {
					maxX = p.MaxX()
				}
				if p.MaxY() > maxY {
					maxY = p.MaxY()
				}
				if p.MaxZ() > maxZ {
					maxZ = p.MaxZ()
				}
			}
		}
		free := pb.Box.Volume() - maxX*maxY*maxZ
		if free < minUsefulHeadroom {
			continue
		}
		found = append(found, Headroom{
			BoxReference:    pb.Box.Reference,
			SuggestedWidth:  maxX,
			SuggestedLength: maxY,
			SuggestedDepth:  maxZ,
			FreeVolume:      free,
		})
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].FreeVolume > found[j].FreeVolume
	})
	return found
}

// SuggestPreset returns the smallest catalog preset that covers the suggested
// dimensions and content weight, or false when none fits.
func (h Headroom) SuggestPreset(c Catalog, contentWeight int) (BoxPreset, bool) {
	var best BoxPreset
	bestVol := -1
	for _, p := range c.Presets {
		if p.InnerWidth < h.SuggestedWidth || p.InnerLength < h.SuggestedLength || p.InnerDepth < h.SuggestedDepth {
			continue
		}
		if p.MaxWeight > 0 && contentWeight > p.MaxWeight {
			continue
		}
		vol := p.InnerWidth * p.InnerLength * p.InnerDepth
		if bestVol == -1 || vol < bestVol {
			best = p
			bestVol = vol
		}
	}
	return best, bestVol != -1
}
