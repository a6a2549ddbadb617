// Package export provides functionality for exporting packing results
// to various file formats.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/CartonPack/internal/model"
)

// itemColor represents an RGB color for a placed item.
type itemColor struct {
	R, G, B int
}

var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	layerGap     = 8.0
)

// ExportPDF generates a PDF packing list for a pack result. Each box is
// rendered on its own page with a top-down diagram per layer, followed by a
// summary page with overall statistics.
func ExportPDF(path string, result model.PackResult) error {
	if len(result.Boxes) == 0 {
		return fmt.Errorf("no boxes to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, box := range result.Boxes {
		pdf.AddPage()
		renderBoxPage(pdf, box, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// boxLayer groups placed items by their starting z for drawing.
type boxLayer struct {
	z     int
	items []model.PlacedItem
}

// layersOf splits a packed box into draw layers, bottom first. Items are
// grouped by their z coordinate; colors stay stable across layers because
// the index into the packed list is carried along.
func layersOf(pb model.PackedBox) []boxLayer {
	byZ := map[int][]model.PlacedItem{}
	for _, p := range pb.Items {
		byZ[p.Z] = append(byZ[p.Z], p)
	}
	zs := make([]int, 0, len(byZ))
	for z := range byZ {
		zs = append(zs, z)
	}
	sort.Ints(zs)

	layers := make([]boxLayer, 0, len(zs))
	for _, z := range zs {
		layers = append(layers, boxLayer{z: z, items: byZ[z]})
	}
	return layers
}

// renderBoxPage draws a single packed box on the current PDF page.
func renderBoxPage(pdf *fpdf.Fpdf, pb model.PackedBox, boxNum int) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Box %d: %s (%d x %d x %d mm)", boxNum, pb.Box.Reference,
		pb.Box.InnerWidth, pb.Box.InnerLength, pb.Box.InnerDepth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Weight: %d / %d g | Utilization: %.1f%%",
		len(pb.Items), pb.ItemWeight(), pb.Box.MaxWeight, pb.VolumeUtilization())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	layers := layersOf(pb)
	if len(layers) == 0 {
		return
	}

	// Color assignment follows packed order so legend and diagrams agree
	colorIdx := map[string]int{}
	for i, p := range pb.Items {
		colorIdx[p.Item.ID] = i % len(itemColors)
	}

	// Fit all layer diagrams side by side
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	totalGap := layerGap * float64(len(layers)-1)
	scaleX := (drawWidth - totalGap) / (float64(pb.Box.InnerWidth) * float64(len(layers)))
	scaleY := (drawHeight - 10) / float64(pb.Box.InnerLength)
	scale := math.Min(scaleX, scaleY)

	canvasW := float64(pb.Box.InnerWidth) * scale
	canvasH := float64(pb.Box.InnerLength) * scale

	usedW := canvasW*float64(len(layers)) + totalGap
	offsetX := marginLeft + (drawWidth-usedW)/2
	offsetY := drawAreaTop

	for li, layer := range layers {
		lx := offsetX + float64(li)*(canvasW+layerGap)

		// Layer caption
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(lx, offsetY)
		pdf.CellFormat(canvasW, 4, fmt.Sprintf("Layer %d (z=%d mm)", li+1, layer.z), "", 0, "C", false, 0, "")

		// Box outline (cardboard color)
		boxY := offsetY + 5
		pdf.SetFillColor(222, 206, 180)
		pdf.SetDrawColor(100, 100, 100)
		pdf.SetLineWidth(0.5)
		pdf.Rect(lx, boxY, canvasW, canvasH, "FD")

		for _, p := range layer.items {
			col := itemColors[colorIdx[p.Item.ID]]
			iw := float64(p.Width) * scale
			il := float64(p.Length) * scale
			ix := lx + float64(p.X)*scale
			iy := boxY + float64(p.Y)*scale

			pdf.SetFillColor(col.R, col.G, col.B)
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.3)
			pdf.Rect(ix, iy, iw, il, "FD")

			// Item label (only if rectangle is large enough)
			if iw > 15 && il > 8 {
				pdf.SetFont("Helvetica", "", labelFontSize(iw, il))
				pdf.SetTextColor(0, 0, 0)

				label := p.Item.Description
				dims := fmt.Sprintf("%dx%dx%d", p.Width, p.Length, p.Depth)

				labelW := pdf.GetStringWidth(label)
				dimsW := pdf.GetStringWidth(dims)

				if labelW < iw-2 {
					pdf.SetXY(ix+(iw-labelW)/2, iy+il/2-4)
					pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
				}
				if il > 14 && dimsW < iw-2 {
					pdf.SetXY(ix+(iw-dimsW)/2, iy+il/2)
					pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
				}
			}
		}

		// Width annotation below the diagram
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(80, 80, 80)
		widthLabel := fmt.Sprintf("%d mm", pb.Box.InnerWidth)
		wLabelW := pdf.GetStringWidth(widthLabel)
		pdf.SetXY(lx+(canvasW-wLabelW)/2, boxY+canvasH+1)
		pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	drawItemLegend(pdf, pb, colorIdx, offsetY+canvasH+12)
}

// drawItemLegend renders a compact legend of packed items at the bottom of the page.
func drawItemLegend(pdf *fpdf.Fpdf, pb model.PackedBox, colorIdx map[string]int, startY float64) {
	if len(pb.Items) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Items packed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for _, p := range pb.Items {
		col := itemColors[colorIdx[p.Item.ID]]
		label := fmt.Sprintf("%s (%dx%dx%d, %d g)", p.Item.Description, p.Width, p.Length, p.Depth, p.Item.Weight)
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Total Boxes Used", fmt.Sprintf("%d", len(result.Boxes))},
		{"Overall Utilization", fmt.Sprintf("%.1f%%", result.TotalVolumeUtilization())},
		{"Total Items Packed", fmt.Sprintf("%d", result.PackedItemCount())},
		{"Total Weight", fmt.Sprintf("%d g", result.TotalWeight())},
		{"Unpacked Items", fmt.Sprintf("%d", len(result.UnpackedItems))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Box Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 55, 50, 25, 45, 35}
	headers := []string{"Box", "Reference", "Dimensions", "Items", "Weight", "Utilization"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, box := range result.Boxes {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			box.Box.Reference,
			fmt.Sprintf("%d x %d x %d mm", box.Box.InnerWidth, box.Box.InnerLength, box.Box.InnerDepth),
			fmt.Sprintf("%d", len(box.Items)),
			fmt.Sprintf("%d / %d g", box.ItemWeight(), box.Box.MaxWeight),
			fmt.Sprintf("%.1f%%", box.VolumeUtilization()),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(result.UnpackedItems) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unpacked Items", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, item := range result.UnpackedItems {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %d x %d x %d mm, %d g", item.Description, item.Width, item.Length, item.Depth, item.Weight)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CartonPack - 3D Carton Packing Optimizer", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
