package engine

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/piwi3910/CartonPack/internal/model"
)

// SortPolicy orders the item queue before packing starts.
type SortPolicy int

const (
	SortVolumeDesc    SortPolicy = iota // Largest volume first, weight breaks ties
	SortWeightDesc                      // Heaviest first, volume breaks ties
	SortFootprintDesc                   // Largest base area first
	SortNone                            // Keep the caller's order
)

func (s SortPolicy) String() string {
	switch s {
	case SortWeightDesc:
		return "Weight desc"
	case SortFootprintDesc:
		return "Footprint desc"
	case SortNone:
		return "As entered"
	default:
		return "Volume desc"
	}
}

// Packer distributes a set of items across a pool of available boxes. Each
// box is filled by a VolumePacker; box types are chosen greedily by trial
// packing every type still in stock and keeping the best outcome.
type Packer struct {
	boxes []model.Box
	items []model.Item
	sort  SortPolicy
	log   *slog.Logger
}

// NewPacker creates a packer over the given box pool and items. Item and box
// quantities are expanded internally.
func NewPacker(boxes []model.Box, items []model.Item) *Packer {
	return &Packer{
		boxes: boxes,
		items: items,
		sort:  SortVolumeDesc,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetSort overrides the default volume-descending item order.
func (p *Packer) SetSort(policy SortPolicy) {
	p.sort = policy
}

// SetLogger installs a trace sink passed down to every box run.
func (p *Packer) SetLogger(log *slog.Logger) {
	if log != nil {
		p.log = log
	}
}

// Pack runs the full multi-box packing and returns one result covering every
// box used plus the items that fit in none of them.
func (p *Packer) Pack() (model.PackResult, error) {
	pending := expandItems(p.items)
	if len(pending) == 0 {
		return model.PackResult{}, nil
	}

	stock := expandBoxes(p.boxes)
	if len(stock) == 0 {
		return model.PackResult{}, fmt.Errorf("no boxes available")
	}

	p.sortPending(pending)

	var result model.PackResult
	for len(pending) > 0 && len(stock) > 0 {
		best := p.selectBestBox(stock, pending)
		if best < 0 {
			break
		}

		box := stock[best]
		stock = append(stock[:best], stock[best+1:]...)

		queue := NewItemList(pending...)
		packer := newVolumePacker(box, queue, ModeFull, newLookaheadCache(), p.log)
		packed := packer.Pack()
		if len(packed.Items) == 0 {
			break
		}

		p.log.Info("box packed",
			"box", box.Reference,
			"items", len(packed.Items),
			"utilization", fmt.Sprintf("%.1f%%", packed.VolumeUtilization()))

		pending = withoutItems(pending, packed.Items.Items())
		packed.Unpacked = nil
		result.Boxes = append(result.Boxes, packed)
	}

	result.UnpackedItems = pending
	return result, nil
}

// selectBestBox trial-packs the pending items into each distinct box type
// still in stock and returns the index of the box that packs the most items,
// breaking ties by volume utilization. Returns -1 when no box accepts
// anything.
func (p *Packer) selectBestBox(stock []model.Box, pending []model.Item) int {
	bestIdx := -1
	bestCount := 0
	bestUtil := 0.0

	tried := make(map[[4]int]bool)
	for i, box := range stock {
		dims := [4]int{box.InnerWidth, box.InnerLength, box.InnerDepth, box.MaxWeight}
		if tried[dims] {
			continue
		}
		tried[dims] = true

		trial := newVolumePacker(box, NewItemList(pending...), ModeFull, newLookaheadCache(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		packed := trial.Pack()
		count := len(packed.Items)
		if count == 0 {
			continue
		}
		util := packed.VolumeUtilization()
		if count > bestCount || (count == bestCount && util > bestUtil) {
			bestIdx = i
			bestCount = count
			bestUtil = util
		}
	}
	return bestIdx
}

func (p *Packer) sortPending(items []model.Item) {
	switch p.sort {
	case SortNone:
		return
	case SortWeightDesc:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Weight != items[j].Weight {
				return items[i].Weight > items[j].Weight
			}
			return items[i].Volume() > items[j].Volume()
		})
	case SortFootprintDesc:
		sort.SliceStable(items, func(i, j int) bool {
			fi := items[i].Width * items[i].Length
			fj := items[j].Width * items[j].Length
			if fi != fj {
				return fi > fj
			}
			return items[i].Depth > items[j].Depth
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Volume() != items[j].Volume() {
				return items[i].Volume() > items[j].Volume()
			}
			return items[i].Weight > items[j].Weight
		})
	}
}

// expandItems flattens quantities into individual units, each with its own
// ID so removal by identity stays unambiguous.
func expandItems(items []model.Item) []model.Item {
	var out []model.Item
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		for n := 0; n < qty; n++ {
			unit := it
			unit.Quantity = 1
			if n > 0 {
				unit.ID = uuid.New().String()[:8]
			}
			out = append(out, unit)
		}
	}
	return out
}

// expandBoxes flattens box quantities into individual usable boxes. A
// quantity below one means the type is out of stock.
func expandBoxes(boxes []model.Box) []model.Box {
	var out []model.Box
	for _, b := range boxes {
		for n := 0; n < b.Quantity; n++ {
			unit := b
			unit.Quantity = 1
			out = append(out, unit)
		}
	}
	return out
}
