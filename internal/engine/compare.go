package engine

import (
	"log/slog"

	"github.com/piwi3910/CartonPack/internal/model"
)

// ComparisonScenario defines a named item ordering to compare.
type ComparisonScenario struct {
	Name string
	Sort SortPolicy
}

// ComparisonResult holds the packing result and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.PackResult
	BoxesUsed     int
	Utilization   float64
	TotalWeight   int
	UnpackedCount int
}

// DefaultScenarios covers the item orderings worth comparing side by side.
func DefaultScenarios() []ComparisonScenario {
	return []ComparisonScenario{
		{Name: "Largest volume first", Sort: SortVolumeDesc},
		{Name: "Heaviest first", Sort: SortWeightDesc},
		{Name: "Largest footprint first", Sort: SortFootprintDesc},
		{Name: "As entered", Sort: SortNone},
	}
}

// CompareScenarios packs the same items and boxes under each scenario and
// returns the results in scenario order. Side-by-side comparison shows how
// sensitive the outcome is to item ordering.
func CompareScenarios(scenarios []ComparisonScenario, boxes []model.Box, items []model.Item, log *slog.Logger) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		packer := NewPacker(boxes, items)
		packer.SetSort(scenario.Sort)
		packer.SetLogger(log)

		result, err := packer.Pack()
		if err != nil {
			return nil, err
		}

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Result:        result,
			BoxesUsed:     len(result.Boxes),
			Utilization:   result.TotalVolumeUtilization(),
			TotalWeight:   result.TotalWeight(),
			UnpackedCount: len(result.UnpackedItems),
		})
	}

	return results, nil
}

// BestScenario picks the winner: fewest unpacked items, then fewest boxes,
// then highest utilization. Returns -1 for an empty slice.
func BestScenario(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if best == -1 {
			best = i
			continue
		}
		b := results[best]
		switch {
		case r.UnpackedCount != b.UnpackedCount:
			if r.UnpackedCount < b.UnpackedCount {
				best = i
			}
		case r.BoxesUsed != b.BoxesUsed:
			if r.BoxesUsed < b.BoxesUsed {
				best = i
			}
		case r.Utilization > b.Utilization:
			best = i
		}
	}
	return best
}
