package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CartonPack/internal/engine"
	"github.com/piwi3910/CartonPack/internal/export"
	"github.com/piwi3910/CartonPack/internal/importer"
	"github.com/piwi3910/CartonPack/internal/model"
	"github.com/piwi3910/CartonPack/internal/project"
)

var (
	packItemsFile    string
	packBoxSpecs     []string
	packPresets      []string
	packTemplateName string
	packSortName     string
	packCarrier      string
	packPDFPath      string
	packLabelPath    string
	packXLSXPath     string
	packSavePath     string
	packSaveTemplate string
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Pack an item list into cartons",
	Long: `Packs an item list into the available cartons and prints the result.

Items are read from a CSV or Excel file with columns for description, width,
length, depth (mm), weight (g), quantity, and rotation policy.

Cartons come from --box flags ("WxLxD:maxweight[:qty]" in mm and grams),
from --preset flags naming catalog entries ("Medium" or "Medium:5"), or from
the whole catalog when neither flag is given. A saved template supplies both
items and boxes via --template; --save-template captures the current inputs
for reuse.

Examples:
  cartonpack pack -i items.csv
  cartonpack pack -i items.xlsx --box 400x300x250:15000:10
  cartonpack pack -i items.csv --preset Medium:5 --pdf packing.pdf
  cartonpack pack -i items.csv --carrier "DHL Express" --xlsx manifest.xlsx
  cartonpack pack --template "Weekly restock"`,
	RunE: runPackCommand,
}

func init() {
	packCmd.Flags().StringVarP(&packItemsFile, "items", "i", "", "Item list file (.csv, .xlsx)")
	packCmd.Flags().StringArrayVar(&packBoxSpecs, "box", nil, "Carton spec WxLxD:maxweight[:qty], repeatable")
	packCmd.Flags().StringArrayVar(&packPresets, "preset", nil, "Catalog preset name[:qty], repeatable")
	packCmd.Flags().StringVar(&packTemplateName, "template", "", "Start from a saved template's items and boxes")
	packCmd.Flags().StringVar(&packSortName, "sort", "", "Item order: volume, weight, footprint, none")
	packCmd.Flags().StringVar(&packCarrier, "carrier", "", "Carrier profile for shipping estimates")
	packCmd.Flags().StringVar(&packPDFPath, "pdf", "", "Write a PDF packing list to this path")
	packCmd.Flags().StringVar(&packLabelPath, "labels", "", "Write QR carton labels PDF to this path")
	packCmd.Flags().StringVar(&packXLSXPath, "xlsx", "", "Write an Excel manifest to this path")
	packCmd.Flags().StringVar(&packSavePath, "save", "", "Save the job and result to this path")
	packCmd.Flags().StringVar(&packSaveTemplate, "save-template", "", "Save the inputs as a named template")

	rootCmd.AddCommand(packCmd)
}

func runPackCommand(cmd *cobra.Command, args []string) error {
	var items []model.Item
	var templateBoxes []model.Box

	if packTemplateName != "" {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return fmt.Errorf("cannot load templates: %w", err)
		}
		tpl, ok := store.Find(packTemplateName)
		if !ok {
			return fmt.Errorf("unknown template %q", packTemplateName)
		}
		job := tpl.ToJob()
		items = job.Items
		templateBoxes = job.Boxes
	}
	if packItemsFile != "" {
		loaded, err := loadItems(packItemsFile)
		if err != nil {
			return err
		}
		items = append(items, loaded...)
	}
	if len(items) == 0 {
		return fmt.Errorf("no items to pack: use --items or --template")
	}

	var boxes []model.Box
	var err error
	if len(packBoxSpecs) == 0 && len(packPresets) == 0 && len(templateBoxes) > 0 {
		boxes = templateBoxes
	} else {
		boxes, err = resolveBoxes(packBoxSpecs, packPresets)
		if err != nil {
			return err
		}
	}

	if packSaveTemplate != "" {
		if err := saveAsTemplate(packSaveTemplate, items, boxes); err != nil {
			return fmt.Errorf("save template: %w", err)
		}
		fmt.Println("Template saved as", packSaveTemplate)
	}

	packer := engine.NewPacker(boxes, items)
	packer.SetLogger(logger)

	sortName := packSortName
	if sortName == "" {
		sortName = appConfig.DefaultSort
	}
	sort, err := parseSort(sortName)
	if err != nil {
		return err
	}
	packer.SetSort(sort)

	result, err := packer.Pack()
	if err != nil {
		return err
	}

	printResult(result)
	printDunnage(result)

	carrierName := packCarrier
	if carrierName == "" {
		carrierName = appConfig.DefaultCarrier
	}
	if carrierName != "" {
		printShippingEstimates(result, model.GetCarrier(carrierName))
	}

	printRightsizing(result)

	if packPDFPath != "" {
		if err := export.ExportPDF(packPDFPath, result); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
		fmt.Println("Packing list written to", packPDFPath)
	}
	if packLabelPath != "" {
		if err := export.ExportLabels(packLabelPath, result); err != nil {
			return fmt.Errorf("label export: %w", err)
		}
		fmt.Println("Labels written to", packLabelPath)
	}
	if packXLSXPath != "" {
		if err := export.ExportExcel(packXLSXPath, result); err != nil {
			return fmt.Errorf("excel export: %w", err)
		}
		fmt.Println("Manifest written to", packXLSXPath)
	}

	if packSavePath != "" {
		job := model.NewJob()
		job.Name = strings.TrimSuffix(filepath.Base(packSavePath), project.JobFileExtension)
		job.Items = items
		job.Boxes = boxes
		job.Result = &result
		if err := project.SaveJob(packSavePath, job); err != nil {
			return fmt.Errorf("save job: %w", err)
		}
		appConfig.AddRecentJob(packSavePath)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), appConfig); err != nil {
			logger.Warn("cannot update config", "error", err)
		}
		fmt.Println("Job saved to", packSavePath)
	}

	if len(result.UnpackedItems) > 0 {
		os.Exit(2)
	}
	return nil
}

// loadItems reads an item list file, choosing the parser by extension.
func loadItems(path string) ([]model.Item, error) {
	var res importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		res = importer.ImportExcel(path)
	default:
		res = importer.ImportCSV(path)
	}

	for _, w := range res.Warnings {
		logger.Info("import", "warning", w)
	}
	if len(res.Errors) > 0 {
		return nil, fmt.Errorf("import failed: %s", strings.Join(res.Errors, "; "))
	}
	if len(res.Items) == 0 {
		return nil, fmt.Errorf("no items found in %s", path)
	}
	return res.Items, nil
}

// resolveBoxes turns --box and --preset flags into a box pool, falling back
// to the full catalog when neither flag was given.
func resolveBoxes(specs, presets []string) ([]model.Box, error) {
	var boxes []model.Box

	for _, spec := range specs {
		box, err := parseBoxSpec(spec)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, box)
	}

	if len(presets) > 0 {
		catalog, _, err := project.LoadOrCreateCatalog()
		if err != nil {
			return nil, fmt.Errorf("cannot load catalog: %w", err)
		}
		for _, ref := range presets {
			name, qty := ref, 1
			if idx := strings.LastIndex(ref, ":"); idx > 0 {
				n, err := strconv.Atoi(ref[idx+1:])
				if err == nil {
					name, qty = ref[:idx], n
				}
			}
			preset, ok := catalog.Find(name)
			if !ok {
				return nil, fmt.Errorf("unknown catalog preset %q", name)
			}
			box, err := preset.ToBox(qty)
			if err != nil {
				return nil, err
			}
			boxes = append(boxes, box)
		}
	}

	if len(boxes) == 0 {
		catalog, _, err := project.LoadOrCreateCatalog()
		if err != nil {
			return nil, fmt.Errorf("cannot load catalog: %w", err)
		}
		for _, preset := range catalog.Presets {
			box, err := preset.ToBox(100)
			if err != nil {
				return nil, err
			}
			boxes = append(boxes, box)
		}
	}

	return boxes, nil
}

// parseBoxSpec parses "WxLxD:maxweight[:qty]" (mm and grams).
func parseBoxSpec(spec string) (model.Box, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return model.Box{}, fmt.Errorf("invalid box spec %q, want WxLxD:maxweight[:qty]", spec)
	}

	d, err := parseDims(parts[0])
	if err != nil {
		return model.Box{}, err
	}

	maxWeight, err := strconv.Atoi(parts[1])
	if err != nil {
		return model.Box{}, fmt.Errorf("invalid max weight %q in %q", parts[1], spec)
	}

	qty := 1
	if len(parts) == 3 {
		qty, err = strconv.Atoi(parts[2])
		if err != nil {
			return model.Box{}, fmt.Errorf("invalid quantity %q in %q", parts[2], spec)
		}
	}

	return model.NewBox(parts[0], d[0], d[1], d[2], maxWeight, qty)
}

// parseDims parses a "WxLxD" dimension triple in mm.
func parseDims(s string) ([3]int, error) {
	fields := strings.Split(strings.ToLower(s), "x")
	if len(fields) != 3 {
		return [3]int{}, fmt.Errorf("invalid dimensions %q, want WxLxD", s)
	}
	var d [3]int
	for i, raw := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return [3]int{}, fmt.Errorf("invalid dimension %q in %q", raw, s)
		}
		d[i] = v
	}
	return d, nil
}

func parseSort(name string) (engine.SortPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "volume":
		return engine.SortVolumeDesc, nil
	case "weight":
		return engine.SortWeightDesc, nil
	case "footprint":
		return engine.SortFootprintDesc, nil
	case "none", "as-entered":
		return engine.SortNone, nil
	default:
		return engine.SortVolumeDesc, fmt.Errorf("unknown sort %q, want volume, weight, footprint, or none", name)
	}
}

func printResult(result model.PackResult) {
	fmt.Printf("Packed %d items into %d boxes (%.1f%% utilization, %d g total)\n\n",
		result.PackedItemCount(), len(result.Boxes), result.TotalVolumeUtilization(), result.TotalWeight())

	for i, pb := range result.Boxes {
		fmt.Printf("Box %d: %s (%d x %d x %d mm) - %d items, %d/%d g, %.1f%% full\n",
			i+1, pb.Box.Reference, pb.Box.InnerWidth, pb.Box.InnerLength, pb.Box.InnerDepth,
			len(pb.Items), pb.ItemWeight(), pb.Box.MaxWeight, pb.VolumeUtilization())
		for _, p := range pb.Items {
			fmt.Printf("  %-24s %4dx%4dx%4d mm at (%d, %d, %d)\n",
				p.Item.Description, p.Width, p.Length, p.Depth, p.X, p.Y, p.Z)
		}
	}

	if len(result.UnpackedItems) > 0 {
		fmt.Printf("\nUnpacked items (%d):\n", len(result.UnpackedItems))
		for _, item := range result.UnpackedItems {
			fmt.Printf("  %-24s %4dx%4dx%4d mm, %d g\n",
				item.Description, item.Width, item.Length, item.Depth, item.Weight)
		}
	}
}

// saveAsTemplate captures the run's inputs in the default template store.
func saveAsTemplate(name string, items []model.Item, boxes []model.Box) error {
	store, err := project.LoadDefaultTemplates()
	if err != nil {
		return err
	}
	job := model.NewJob()
	job.Name = name
	job.Items = items
	job.Boxes = boxes
	store.Add(model.NewTemplateFromJob(job, name, ""))
	return project.SaveDefaultTemplates(store)
}

func printDunnage(result model.PackResult) {
	estimates := model.EstimateDunnageAll(result)
	if len(estimates) == 0 {
		return
	}

	fmt.Println("\nPacking materials:")
	for i, d := range estimates {
		fmt.Printf("  Box %d: %s\n", i+1, dunnageSummary(d))
	}
}

// dunnageSummary formats one box's void fill and tape needs for the console.
func dunnageSummary(d model.DunnageEstimate) string {
	return fmt.Sprintf("%d fill bags (%.0f%% void), %.1f m tape",
		d.FillBags, d.VoidPercent, d.TapeLength/1000.0)
}

func printRightsizing(result model.PackResult) {
	suggestions := model.DetectHeadroom(result)
	if len(suggestions) == 0 {
		return
	}

	catalog, _, err := project.LoadOrCreateCatalog()
	if err != nil {
		catalog = model.DefaultCatalog()
	}

	fmt.Println("\nRight-sizing suggestions:")
	for _, h := range suggestions {
		line := fmt.Sprintf("  %s: contents fit %d x %d x %d mm (%.1f l free)",
			h.BoxReference, h.SuggestedWidth, h.SuggestedLength, h.SuggestedDepth,
			float64(h.FreeVolume)/1e6)
		if preset, ok := h.SuggestPreset(catalog, contentWeightFor(result, h.BoxReference)); ok {
			line += fmt.Sprintf(", consider %q", preset.Reference)
		}
		fmt.Println(line)
	}
}

// contentWeightFor returns the packed weight of the first box with the given
// reference, for checking a smaller preset's weight ceiling.
func contentWeightFor(result model.PackResult, reference string) int {
	for _, pb := range result.Boxes {
		if pb.Box.Reference == reference {
			return pb.ItemWeight()
		}
	}
	return 0
}

func printShippingEstimates(result model.PackResult, carrier model.CarrierProfile) {
	estimates := model.EstimateShippingAll(result, carrier)
	if len(estimates) == 0 {
		return
	}

	fmt.Printf("\nShipping estimates (%s):\n", carrier.Name)
	for i, est := range estimates {
		flags := ""
		if est.OverWeightLimit {
			flags += " OVER WEIGHT LIMIT"
		}
		if est.OverSizeLimit {
			flags += " OVER SIZE LIMIT"
		}
		fmt.Printf("  Box %d: actual %d g, volumetric %d g, billable %d g%s\n",
			i+1, est.ActualWeight, est.VolumetricWeight, est.BillableWeight, flags)
	}
}
