package engine

import (
	"testing"

	"github.com/piwi3910/CartonPack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacker_SingleBoxSingleItem(t *testing.T) {
	box, err := model.NewBox("Small", 300, 200, 150, 10000, 1)
	require.NoError(t, err)
	item, err := model.NewItem("Widget", 100, 80, 50, 250, 1)
	require.NoError(t, err)

	result, err := NewPacker([]model.Box{box}, []model.Item{item}).Pack()
	require.NoError(t, err)

	require.Len(t, result.Boxes, 1)
	assert.Len(t, result.Boxes[0].Items, 1)
	assert.Empty(t, result.UnpackedItems)
	assert.Equal(t, "Widget", result.Boxes[0].Items[0].Item.Description)
}

func TestPacker_ExpandsQuantities(t *testing.T) {
	box, _ := model.NewBox("Crate", 200, 100, 100, 10000, 1)
	item, _ := model.NewItem("Cube", 100, 100, 100, 500, 2)

	result, err := NewPacker([]model.Box{box}, []model.Item{item}).Pack()
	require.NoError(t, err)

	require.Len(t, result.Boxes, 1)
	assert.Len(t, result.Boxes[0].Items, 2)
	assert.Equal(t, 2, result.PackedItemCount())

	// Each expanded unit must carry its own identity
	assert.NotEqual(t, result.Boxes[0].Items[0].Item.ID, result.Boxes[0].Items[1].Item.ID)
}

func TestPacker_SpillsIntoSecondBox(t *testing.T) {
	box, _ := model.NewBox("Crate", 100, 100, 100, 10000, 2)
	item, _ := model.NewItem("Cube", 100, 100, 100, 500, 2)

	result, err := NewPacker([]model.Box{box}, []model.Item{item}).Pack()
	require.NoError(t, err)

	assert.Len(t, result.Boxes, 2)
	assert.Empty(t, result.UnpackedItems)
}

func TestPacker_SelectsSmallestAdequateBox(t *testing.T) {
	large, _ := model.NewBox("Large", 500, 400, 300, 20000, 5)
	small, _ := model.NewBox("Small", 300, 200, 150, 10000, 5)
	item, _ := model.NewItem("Widget", 250, 180, 120, 800, 1)

	result, err := NewPacker([]model.Box{large, small}, []model.Item{item}).Pack()
	require.NoError(t, err)

	require.Len(t, result.Boxes, 1)
	assert.Equal(t, "Small", result.Boxes[0].Box.Reference,
		"equal item counts should be broken by utilization")
}

func TestPacker_ReportsUnpackableItems(t *testing.T) {
	box, _ := model.NewBox("Small", 100, 100, 100, 10000, 3)
	fits, _ := model.NewItem("Fits", 50, 50, 50, 100, 1)
	oversize, _ := model.NewItem("Oversize", 200, 200, 200, 100, 1)

	result, err := NewPacker([]model.Box{box}, []model.Item{fits, oversize}).Pack()
	require.NoError(t, err)

	assert.Equal(t, 1, result.PackedItemCount())
	require.Len(t, result.UnpackedItems, 1)
	assert.Equal(t, "Oversize", result.UnpackedItems[0].Description)
}

func TestPacker_NoBoxesIsAnError(t *testing.T) {
	item, _ := model.NewItem("Widget", 100, 80, 50, 250, 1)
	_, err := NewPacker(nil, []model.Item{item}).Pack()
	assert.Error(t, err)
}

func TestPacker_NoItemsIsEmptyResult(t *testing.T) {
	box, _ := model.NewBox("Small", 300, 200, 150, 10000, 1)
	result, err := NewPacker([]model.Box{box}, nil).Pack()
	require.NoError(t, err)
	assert.Empty(t, result.Boxes)
	assert.Empty(t, result.UnpackedItems)
}

func TestPacker_RespectsBoxStock(t *testing.T) {
	box, _ := model.NewBox("Crate", 100, 100, 100, 10000, 1)
	item, _ := model.NewItem("Cube", 100, 100, 100, 500, 3)

	result, err := NewPacker([]model.Box{box}, []model.Item{item}).Pack()
	require.NoError(t, err)

	assert.Len(t, result.Boxes, 1)
	assert.Len(t, result.UnpackedItems, 2)
}

func TestPacker_ResultInvariantsHold(t *testing.T) {
	box, _ := model.NewBox("Medium", 400, 300, 250, 5000, 3)
	var items []model.Item
	specs := []struct {
		desc    string
		w, l, d int
		g, qty  int
	}{
		{"Shoe box", 330, 200, 120, 900, 2},
		{"Book", 210, 148, 30, 400, 4},
		{"Mug", 120, 120, 100, 350, 3},
	}
	for _, s := range specs {
		it, err := model.NewItem(s.desc, s.w, s.l, s.d, s.g, s.qty)
		require.NoError(t, err)
		items = append(items, it)
	}

	result, err := NewPacker([]model.Box{box}, items).Pack()
	require.NoError(t, err)

	totalUnits := 2 + 4 + 3
	assert.Equal(t, totalUnits, result.PackedItemCount()+len(result.UnpackedItems))

	for _, pb := range result.Boxes {
		assert.LessOrEqual(t, pb.ItemWeight(), pb.Box.MaxWeight)
		assertNoOverlap(t, pb.Items)
		assertInBounds(t, pb.Box, pb.Items)
	}
}

// ─── Scenario Comparison Tests ─────────────────────────────────────

func TestCompareScenariosRunsEachOrdering(t *testing.T) {
	box, _ := model.NewBox("Medium", 400, 300, 250, 15000, 5)
	a, _ := model.NewItem("Big", 300, 200, 100, 1000, 2)
	b, _ := model.NewItem("Small", 100, 100, 50, 200, 4)

	scenarios := DefaultScenarios()
	results, err := CompareScenarios(scenarios, []model.Box{box}, []model.Item{a, b}, discardLogger())
	require.NoError(t, err)
	require.Len(t, results, len(scenarios))

	for i, r := range results {
		assert.Equal(t, scenarios[i].Name, r.Scenario.Name)
		assert.Equal(t, 6, r.Result.PackedItemCount()+r.UnpackedCount)
	}
}

func TestBestScenarioPrefersFewestUnpacked(t *testing.T) {
	results := []ComparisonResult{
		{BoxesUsed: 1, Utilization: 90, UnpackedCount: 2},
		{BoxesUsed: 3, Utilization: 40, UnpackedCount: 0},
		{BoxesUsed: 2, Utilization: 80, UnpackedCount: 0},
	}
	assert.Equal(t, 2, BestScenario(results))
	assert.Equal(t, -1, BestScenario(nil))
}
