package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CartonPack/internal/model"
	"github.com/xuri/excelize/v2"
)

// buildTestResult creates a realistic pack result for testing.
func buildTestResult() model.PackResult {
	box1 := model.Box{ID: "b1", Reference: "Medium", InnerWidth: 400, InnerLength: 300, InnerDepth: 250, MaxWeight: 15000}
	box2 := model.Box{ID: "b2", Reference: "Small", InnerWidth: 300, InnerLength: 200, InnerDepth: 150, MaxWeight: 10000}

	return model.PackResult{
		Boxes: []model.PackedBox{
			{
				Box: box1,
				Items: model.PackedList{
					{Orientation: model.Orientation{Item: model.Item{ID: "i1", Description: "Shoe box", Weight: 900}, Width: 330, Length: 200, Depth: 120}, X: 0, Y: 0, Z: 0},
					{Orientation: model.Orientation{Item: model.Item{ID: "i2", Description: "Book", Weight: 400}, Width: 210, Length: 148, Depth: 30}, X: 0, Y: 200, Z: 0},
					{Orientation: model.Orientation{Item: model.Item{ID: "i3", Description: "Mug", Weight: 350}, Width: 120, Length: 120, Depth: 100}, X: 0, Y: 0, Z: 120},
				},
			},
			{
				Box: box2,
				Items: model.PackedList{
					{Orientation: model.Orientation{Item: model.Item{ID: "i4", Description: "Charger", Weight: 150}, Width: 80, Length: 60, Depth: 30}, X: 0, Y: 0, Z: 0},
				},
			},
		},
		UnpackedItems: []model.Item{
			{ID: "i5", Description: "Oversize poster tube", Width: 900, Length: 100, Depth: 100, Weight: 600},
		},
	}
}

// ─── PDF Packing List Tests ────────────────────────────────

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "packing.pdf")

	if err := ExportPDF(path, buildTestResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected PDF file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PDF file")
	}
}

func TestExportPDF_EmptyResultIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "packing.pdf")

	if err := ExportPDF(path, model.PackResult{}); err == nil {
		t.Fatal("expected error for empty result")
	}
}

func TestLayersOfGroupsByZ(t *testing.T) {
	result := buildTestResult()
	layers := layersOf(result.Boxes[0])

	if len(layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(layers))
	}
	if layers[0].z != 0 || layers[1].z != 120 {
		t.Errorf("expected layers at z=0 and z=120, got %d and %d", layers[0].z, layers[1].z)
	}
	if len(layers[0].items) != 2 || len(layers[1].items) != 1 {
		t.Errorf("unexpected layer membership: %d, %d", len(layers[0].items), len(layers[1].items))
	}
}

// ─── QR Label Tests ────────────────────────────────────────

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	if err := ExportLabels(path, buildTestResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected labels PDF to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty labels PDF")
	}
}

func TestExportLabels_EmptyResultIsError(t *testing.T) {
	dir := t.TempDir()
	if err := ExportLabels(filepath.Join(dir, "labels.pdf"), model.PackResult{}); err == nil {
		t.Fatal("expected error for empty result")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestResult())

	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}

	first := labels[0]
	if first.BoxIndex != 1 || first.BoxRef != "Medium" {
		t.Errorf("unexpected first label: %+v", first)
	}
	if first.ItemCount != 3 {
		t.Errorf("expected 3 items, got %d", first.ItemCount)
	}
	if first.Weight != 900+400+350 {
		t.Errorf("expected weight %d, got %d", 900+400+350, first.Weight)
	}
	if len(first.Contents) != 3 || first.Contents[0] != "Shoe box" {
		t.Errorf("unexpected contents: %v", first.Contents)
	}

	// Labels must round-trip through JSON for the QR payload
	data, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("label should marshal: %v", err)
	}
	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("label should unmarshal: %v", err)
	}
	if decoded.BoxRef != "Medium" {
		t.Errorf("expected BoxRef to survive round-trip, got %s", decoded.BoxRef)
	}
}

// ─── Excel Manifest Tests ──────────────────────────────────

func TestExportExcel_WritesManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.xlsx")

	if err := ExportExcel(path, buildTestResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Manifest")
	if err != nil {
		t.Fatalf("cannot read Manifest sheet: %v", err)
	}
	// Header plus four placed items
	if len(rows) != 5 {
		t.Fatalf("expected 5 manifest rows, got %d", len(rows))
	}
	if rows[1][2] != "Shoe box" {
		t.Errorf("expected Shoe box in first data row, got %s", rows[1][2])
	}

	boxRows, err := f.GetRows("Boxes")
	if err != nil {
		t.Fatalf("cannot read Boxes sheet: %v", err)
	}
	if len(boxRows) != 3 {
		t.Fatalf("expected 3 box rows, got %d", len(boxRows))
	}

	unpackedRows, err := f.GetRows("Unpacked")
	if err != nil {
		t.Fatalf("cannot read Unpacked sheet: %v", err)
	}
	if len(unpackedRows) != 2 {
		t.Fatalf("expected 2 unpacked rows, got %d", len(unpackedRows))
	}
	if unpackedRows[1][0] != "Oversize poster tube" {
		t.Errorf("unexpected unpacked item: %s", unpackedRows[1][0])
	}
}

func TestExportExcel_EmptyResultIsError(t *testing.T) {
	dir := t.TempDir()
	if err := ExportExcel(filepath.Join(dir, "manifest.xlsx"), model.PackResult{}); err == nil {
		t.Fatal("expected error for empty result")
	}
}
