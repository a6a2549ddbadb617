package export

import (
	"fmt"

	"github.com/piwi3910/CartonPack/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportExcel writes a pack result as an Excel manifest. The workbook holds
// one Manifest sheet listing every placed item with its box, position, and
// orientation, plus a Boxes sheet with per-box totals and an Unpacked sheet
// when items were left over.
func ExportExcel(path string, result model.PackResult) error {
	if len(result.Boxes) == 0 {
		return fmt.Errorf("no boxes to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const manifestSheet = "Manifest"
	if err := f.SetSheetName(f.GetSheetName(0), manifestSheet); err != nil {
		return err
	}

	header := []interface{}{"Box", "Box Ref", "Item", "Width (mm)", "Length (mm)", "Depth (mm)", "Weight (g)", "X", "Y", "Z"}
	if err := setRow(f, manifestSheet, 1, header); err != nil {
		return err
	}

	row := 2
	for boxIdx, pb := range result.Boxes {
		for _, p := range pb.Items {
			values := []interface{}{
				boxIdx + 1, pb.Box.Reference, p.Item.Description,
				p.Width, p.Length, p.Depth, p.Item.Weight,
				p.X, p.Y, p.Z,
			}
			if err := setRow(f, manifestSheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	const boxSheet = "Boxes"
	if _, err := f.NewSheet(boxSheet); err != nil {
		return err
	}
	boxHeader := []interface{}{"Box", "Reference", "Inner W", "Inner L", "Inner D", "Items", "Weight (g)", "Max Weight (g)", "Utilization %"}
	if err := setRow(f, boxSheet, 1, boxHeader); err != nil {
		return err
	}
	for i, pb := range result.Boxes {
		values := []interface{}{
			i + 1, pb.Box.Reference,
			pb.Box.InnerWidth, pb.Box.InnerLength, pb.Box.InnerDepth,
			len(pb.Items), pb.ItemWeight(), pb.Box.MaxWeight,
			fmt.Sprintf("%.1f", pb.VolumeUtilization()),
		}
		if err := setRow(f, boxSheet, i+2, values); err != nil {
			return err
		}
	}

	if len(result.UnpackedItems) > 0 {
		const unpackedSheet = "Unpacked"
		if _, err := f.NewSheet(unpackedSheet); err != nil {
			return err
		}
		if err := setRow(f, unpackedSheet, 1, []interface{}{"Item", "Width (mm)", "Length (mm)", "Depth (mm)", "Weight (g)"}); err != nil {
			return err
		}
		for i, item := range result.UnpackedItems {
			values := []interface{}{item.Description, item.Width, item.Length, item.Depth, item.Weight}
			if err := setRow(f, unpackedSheet, i+2, values); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
