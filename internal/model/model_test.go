package model

import (
	"errors"
	"testing"
)

func TestNewItemValidDimensions(t *testing.T) {
	it, err := NewItem("Widget", 100, 50, 30, 250, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID == "" {
		t.Error("expected generated ID")
	}
	if it.Rotation != RotationAny {
		t.Errorf("expected default rotation Any, got %v", it.Rotation)
	}
	if it.Volume() != 100*50*30 {
		t.Errorf("expected volume %d, got %d", 100*50*30, it.Volume())
	}
}

func TestNewItemRejectsInvalidDimensions(t *testing.T) {
	cases := []struct {
		name       string
		w, l, d, g int
	}{
		{"zero width", 0, 50, 30, 100},
		{"negative length", 100, -5, 30, 100},
		{"zero depth", 100, 50, 0, 100},
		{"negative weight", 100, 50, 30, -1},
	}
	for _, c := range cases {
		_, err := NewItem(c.name, c.w, c.l, c.d, c.g, 1)
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%s: expected ErrInvalidDimensions, got %v", c.name, err)
		}
	}
}

func TestNewItemAllowsZeroWeight(t *testing.T) {
	if _, err := NewItem("Foam insert", 100, 100, 10, 0, 1); err != nil {
		t.Errorf("unexpected error for zero weight: %v", err)
	}
}

func TestNewBoxRejectsInvalidDimensions(t *testing.T) {
	if _, err := NewBox("Bad", 0, 200, 100, 5000, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := NewBox("Bad", 300, 200, 100, 0, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions for zero max weight, got %v", err)
	}
}

func TestPlacedItemIntersects(t *testing.T) {
	a := PlacedItem{Orientation: Orientation{Width: 10, Length: 10, Depth: 10}, X: 0, Y: 0, Z: 0}
	b := PlacedItem{Orientation: Orientation{Width: 10, Length: 10, Depth: 10}, X: 5, Y: 5, Z: 5}
	if !a.Intersects(b) {
		t.Error("overlapping items should intersect")
	}

	// Touching faces do not intersect
	c := PlacedItem{Orientation: Orientation{Width: 10, Length: 10, Depth: 10}, X: 10, Y: 0, Z: 0}
	if a.Intersects(c) {
		t.Error("touching faces should not intersect")
	}
}

func TestPackedListWeightAndVolume(t *testing.T) {
	var l PackedList
	l.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "a", Weight: 100}, Width: 10, Length: 10, Depth: 10}})
	l.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "b", Weight: 250}, Width: 20, Length: 10, Depth: 5}})

	if l.Weight() != 350 {
		t.Errorf("expected weight 350, got %d", l.Weight())
	}
	if l.Volume() != 10*10*10+20*10*5 {
		t.Errorf("expected volume %d, got %d", 10*10*10+20*10*5, l.Volume())
	}
}

func TestPackedListRemoveItems(t *testing.T) {
	var l PackedList
	l.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "a"}}})
	l.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "b"}}})
	l.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "c"}}})

	l.RemoveItems([]Item{{ID: "b"}})
	if len(l) != 2 {
		t.Fatalf("expected 2 entries after removal, got %d", len(l))
	}
	if l[0].Item.ID != "a" || l[1].Item.ID != "c" {
		t.Errorf("expected a,c after removal, got %s,%s", l[0].Item.ID, l[1].Item.ID)
	}
}

func TestVolumeUtilization(t *testing.T) {
	box, _ := NewBox("Test", 100, 100, 100, 10000, 1)
	pb := PackedBox{Box: box}
	pb.Items.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "a"}, Width: 50, Length: 100, Depth: 100}})

	if pb.VolumeUtilization() != 50.0 {
		t.Errorf("expected 50%% utilization, got %.1f", pb.VolumeUtilization())
	}
}

func TestAllCarriersIncludesBuiltInAndCustom(t *testing.T) {
	CustomCarriers = nil

	builtInCount := len(CarrierProfiles)
	all := AllCarriers()
	if len(all) != builtInCount {
		t.Errorf("expected %d carriers with no custom, got %d", builtInCount, len(all))
	}

	CustomCarriers = []CarrierProfile{
		{Name: "Custom1", Description: "Test custom"},
	}
	defer func() { CustomCarriers = nil }()

	all = AllCarriers()
	if len(all) != builtInCount+1 {
		t.Errorf("expected %d carriers with 1 custom, got %d", builtInCount+1, len(all))
	}
}

func TestGetCarrierFindsCustom(t *testing.T) {
	CustomCarriers = []CarrierProfile{
		{Name: "MyCourier", Description: "Custom carrier", VolumetricDivisor: 4000},
	}
	defer func() { CustomCarriers = nil }()

	c := GetCarrier("MyCourier")
	if c.Name != "MyCourier" {
		t.Errorf("expected MyCourier, got %s", c.Name)
	}
}

func TestGetCarrierFallsBackToGeneric(t *testing.T) {
	c := GetCarrier("NonExistent")
	if c.Name != "Generic" {
		t.Errorf("expected Generic fallback, got %s", c.Name)
	}
}

func TestAddCustomCarrierRejectsBuiltInName(t *testing.T) {
	CustomCarriers = nil
	defer func() { CustomCarriers = nil }()

	if err := AddCustomCarrier(CarrierProfile{Name: "UPS"}); err == nil {
		t.Fatal("expected error when adding carrier with built-in name")
	}
}

func TestAddCustomCarrierUpdatesExisting(t *testing.T) {
	CustomCarriers = nil
	defer func() { CustomCarriers = nil }()

	_ = AddCustomCarrier(CarrierProfile{Name: "MyCourier", Description: "Version 1"})
	_ = AddCustomCarrier(CarrierProfile{Name: "MyCourier", Description: "Version 2"})

	if len(CustomCarriers) != 1 {
		t.Fatalf("expected 1 custom carrier after update, got %d", len(CustomCarriers))
	}
	if CustomCarriers[0].Description != "Version 2" {
		t.Errorf("expected updated description, got %s", CustomCarriers[0].Description)
	}
}

func TestRemoveCustomCarrier(t *testing.T) {
	CustomCarriers = []CarrierProfile{
		{Name: "ToRemove"},
	}
	defer func() { CustomCarriers = nil }()

	if err := RemoveCustomCarrier("ToRemove"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(CustomCarriers) != 0 {
		t.Errorf("expected no custom carriers, got %d", len(CustomCarriers))
	}

	if err := RemoveCustomCarrier("UPS"); err == nil {
		t.Error("expected error removing built-in carrier")
	}
}

func TestEstimateShippingBillsVolumetricWhenHeavier(t *testing.T) {
	box, _ := NewBox("Medium", 400, 300, 250, 15000, 1)
	pb := PackedBox{Box: box}
	pb.Items.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "a", Weight: 500}, Width: 100, Length: 100, Depth: 100}})

	est := EstimateShipping(pb, GetCarrier("Generic"))
	// 400*300*250 mm3 = 30000 cm3 / 5000 = 6 kg
	if est.VolumetricWeight != 6000 {
		t.Errorf("expected volumetric 6000 g, got %d", est.VolumetricWeight)
	}
	if est.BillableWeight != 6000 {
		t.Errorf("expected billable 6000 g, got %d", est.BillableWeight)
	}
	if est.ActualWeight != 500 {
		t.Errorf("expected actual 500 g, got %d", est.ActualWeight)
	}
}

func TestEstimateShippingActualOnlyCarrier(t *testing.T) {
	box, _ := NewBox("Medium", 400, 300, 250, 15000, 1)
	pb := PackedBox{Box: box}
	pb.Items.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "a", Weight: 500}, Width: 100, Length: 100, Depth: 100}})

	est := EstimateShipping(pb, GetCarrier("PostNL"))
	if est.VolumetricWeight != 0 {
		t.Errorf("expected no volumetric weight, got %d", est.VolumetricWeight)
	}
	if est.BillableWeight != 500 {
		t.Errorf("expected billable 500 g, got %d", est.BillableWeight)
	}
}

func TestEstimateShippingFlagsLimits(t *testing.T) {
	box, _ := NewBox("Long crate", 1500, 300, 300, 100000, 1)
	pb := PackedBox{Box: box}
	pb.Items.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "a", Weight: 80000}, Width: 1000, Length: 200, Depth: 200}})

	est := EstimateShipping(pb, GetCarrier("DHL Express"))
	if !est.OverWeightLimit {
		t.Error("expected over-weight flag")
	}
	if !est.OverSizeLimit {
		t.Error("expected over-size flag")
	}
}

func TestEstimateDunnage(t *testing.T) {
	box, _ := NewBox("Small", 300, 200, 150, 10000, 1)
	pb := PackedBox{Box: box}
	pb.Items.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "a"}, Width: 300, Length: 200, Depth: 100}})

	est := EstimateDunnage(pb)
	wantVoid := 300*200*150 - 300*200*100
	if est.VoidVolume != wantVoid {
		t.Errorf("expected void %d, got %d", wantVoid, est.VoidVolume)
	}
	if est.FillBags != 2 {
		t.Errorf("expected 2 fill bags, got %d", est.FillBags)
	}
	if est.TapeLength <= 0 {
		t.Error("expected positive tape length")
	}
}

func TestDetectHeadroomSuggestsSmallerCarton(t *testing.T) {
	box, _ := NewBox("Large", 500, 400, 300, 20000, 1)
	pb := PackedBox{Box: box}
	pb.Items.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "a"}, Width: 200, Length: 150, Depth: 100}, X: 0, Y: 0, Z: 0})

	found := DetectHeadroom(PackResult{Boxes: []PackedBox{pb}})
	if len(found) != 1 {
		t.Fatalf("expected 1 headroom suggestion, got %d", len(found))
	}
	h := found[0]
	if h.SuggestedWidth != 200 || h.SuggestedLength != 150 || h.SuggestedDepth != 100 {
		t.Errorf("unexpected suggested dims %dx%dx%d", h.SuggestedWidth, h.SuggestedLength, h.SuggestedDepth)
	}

	preset, ok := h.SuggestPreset(DefaultCatalog(), 500)
	if !ok {
		t.Fatal("expected a catalog preset to fit")
	}
	if preset.Reference != "XS Mailer" {
		t.Errorf("expected XS Mailer, got %s", preset.Reference)
	}
}

func TestDetectHeadroomPrefersRecordedContentExtents(t *testing.T) {
	box, _ := NewBox("Large", 500, 400, 300, 20000, 1)
	pb := PackedBox{Box: box, ContentWidth: 250, ContentLength: 180, ContentDepth: 120}
	pb.Items.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "a"}, Width: 200, Length: 150, Depth: 100}, X: 0, Y: 0, Z: 0})

	found := DetectHeadroom(PackResult{Boxes: []PackedBox{pb}})
	if len(found) != 1 {
		t.Fatalf("expected 1 headroom suggestion, got %d", len(found))
	}
	h := found[0]
	if h.SuggestedWidth != 250 || h.SuggestedLength != 180 || h.SuggestedDepth != 120 {
		t.Errorf("expected recorded extents 250x180x120, got %dx%dx%d",
			h.SuggestedWidth, h.SuggestedLength, h.SuggestedDepth)
	}
}

func TestDetectHeadroomIgnoresSnugBoxes(t *testing.T) {
	box, _ := NewBox("Snug", 300, 200, 150, 10000, 1)
	pb := PackedBox{Box: box}
	pb.Items.Insert(PlacedItem{Orientation: Orientation{Item: Item{ID: "a"}, Width: 300, Length: 200, Depth: 140}, X: 0, Y: 0, Z: 0})

	found := DetectHeadroom(PackResult{Boxes: []PackedBox{pb}})
	if len(found) != 0 {
		t.Errorf("expected no suggestions for snug box, got %d", len(found))
	}
}

func TestCatalogAddFindRemove(t *testing.T) {
	c := DefaultCatalog()
	n := len(c.Presets)

	c.Add(BoxPreset{Reference: "Tube", InnerWidth: 100, InnerLength: 100, InnerDepth: 900, MaxWeight: 3000})
	if len(c.Presets) != n+1 {
		t.Fatalf("expected %d presets, got %d", n+1, len(c.Presets))
	}

	// Add with existing reference replaces
	c.Add(BoxPreset{Reference: "Tube", InnerWidth: 120, InnerLength: 120, InnerDepth: 900, MaxWeight: 3000})
	if len(c.Presets) != n+1 {
		t.Fatalf("expected replace, got %d presets", len(c.Presets))
	}
	p, ok := c.Find("Tube")
	if !ok || p.InnerWidth != 120 {
		t.Errorf("expected updated Tube preset, got %+v ok=%v", p, ok)
	}

	if !c.Remove("Tube") {
		t.Error("expected Remove to succeed")
	}
	if _, ok := c.Find("Tube"); ok {
		t.Error("expected Tube gone after Remove")
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	job := NewJob()
	item, _ := NewItem("Widget", 100, 50, 30, 250, 2)
	box, _ := NewBox("Small", 300, 200, 150, 10000, 5)
	job.Items = append(job.Items, item)
	job.Boxes = append(job.Boxes, box)

	tpl := NewTemplateFromJob(job, "Weekly order", "standing widget order")
	got := tpl.ToJob()

	if got.Name != "Weekly order" {
		t.Errorf("expected job name from template, got %s", got.Name)
	}
	if len(got.Items) != 1 || got.Items[0].Description != "Widget" {
		t.Errorf("expected template items carried over, got %+v", got.Items)
	}
	if got.Result != nil {
		t.Error("instantiated job should have no result")
	}
}
