package main

import (
	"strings"
	"testing"

	"github.com/piwi3910/CartonPack/internal/engine"
	"github.com/piwi3910/CartonPack/internal/model"
)

// ─── Flag Parsing Tests ────────────────────────────────────

func TestParseBoxSpec(t *testing.T) {
	box, err := parseBoxSpec("400x300x250:15000:10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if box.InnerWidth != 400 || box.InnerLength != 300 || box.InnerDepth != 250 {
		t.Errorf("unexpected dimensions: %+v", box)
	}
	if box.MaxWeight != 15000 || box.Quantity != 10 {
		t.Errorf("unexpected weight/quantity: %+v", box)
	}
}

func TestParseBoxSpec_QuantityDefaultsToOne(t *testing.T) {
	box, err := parseBoxSpec("300x200x150:10000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if box.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", box.Quantity)
	}
}

func TestParseBoxSpec_Invalid(t *testing.T) {
	for _, spec := range []string{"400x300", "400x300x250", "WxLxD:100", "400x300x250:heavy"} {
		if _, err := parseBoxSpec(spec); err == nil {
			t.Errorf("expected error for %q", spec)
		}
	}
}

func TestParseDims(t *testing.T) {
	d, err := parseDims("220X160x100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != [3]int{220, 160, 100} {
		t.Errorf("unexpected dims: %v", d)
	}
	if _, err := parseDims("220x160"); err == nil {
		t.Error("expected error for two dimensions")
	}
}

func TestParseSort(t *testing.T) {
	cases := map[string]engine.SortPolicy{
		"":          engine.SortVolumeDesc,
		"volume":    engine.SortVolumeDesc,
		"weight":    engine.SortWeightDesc,
		"footprint": engine.SortFootprintDesc,
		"none":      engine.SortNone,
	}
	for name, want := range cases {
		got, err := parseSort(name)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", name, err)
		}
		if got != want {
			t.Errorf("parseSort(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := parseSort("sideways"); err == nil {
		t.Error("expected error for unknown sort")
	}
}

// ─── Output Helper Tests ───────────────────────────────────

func TestDunnageSummary(t *testing.T) {
	d := model.DunnageEstimate{FillBags: 2, VoidPercent: 40.0, TapeLength: 3400}
	s := dunnageSummary(d)
	if !strings.Contains(s, "2 fill bags") {
		t.Errorf("missing fill bag count: %q", s)
	}
	if !strings.Contains(s, "40% void") {
		t.Errorf("missing void percentage: %q", s)
	}
	if !strings.Contains(s, "3.4 m tape") {
		t.Errorf("missing tape length: %q", s)
	}
}

func TestContentWeightFor(t *testing.T) {
	item, err := model.NewItem("Mug", 100, 100, 100, 350, 1)
	if err != nil {
		t.Fatal(err)
	}
	box, err := model.NewBox("Small", 300, 200, 150, 10000, 1)
	if err != nil {
		t.Fatal(err)
	}
	var packed model.PackedList
	packed.Insert(model.PlacedItem{Orientation: model.Orientation{Item: item, Width: 100, Length: 100, Depth: 100}})

	result := model.PackResult{Boxes: []model.PackedBox{{Box: box, Items: packed}}}
	if got := contentWeightFor(result, "Small"); got != 350 {
		t.Errorf("expected 350 g, got %d", got)
	}
	if got := contentWeightFor(result, "Missing"); got != 0 {
		t.Errorf("expected 0 for unknown reference, got %d", got)
	}
}
