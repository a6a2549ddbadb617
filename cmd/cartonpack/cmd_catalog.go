package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CartonPack/internal/model"
	"github.com/piwi3910/CartonPack/internal/project"
)

var (
	catalogAddDims      string
	catalogAddMaxWeight int
	catalogAddNotes     string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the carton catalog",
	Long:  `Lists, adds, removes, and imports carton presets in ~/.cartonpack/catalog.json.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, _, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		fmt.Printf("%-16s %16s %12s  %s\n", "Reference", "Inner (mm)", "Max (g)", "Notes")
		for _, p := range catalog.Presets {
			dims := fmt.Sprintf("%dx%dx%d", p.InnerWidth, p.InnerLength, p.InnerDepth)
			fmt.Printf("%-16s %16s %12d  %s\n", p.Reference, dims, p.MaxWeight, p.Notes)
		}
		return nil
	},
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <reference>",
	Short: "Add or replace a catalog preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDims(catalogAddDims)
		if err != nil {
			return err
		}
		preset := model.BoxPreset{
			Reference:   args[0],
			InnerWidth:  d[0],
			InnerLength: d[1],
			InnerDepth:  d[2],
			MaxWeight:   catalogAddMaxWeight,
			Notes:       catalogAddNotes,
		}
		// Validate through the same path the packer uses
		if _, err := preset.ToBox(1); err != nil {
			return err
		}

		catalog, path, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		catalog.Add(preset)
		if err := project.SaveCatalog(path, catalog); err != nil {
			return err
		}
		fmt.Println("Preset saved:", preset.Reference)
		return nil
	},
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove <reference>",
	Short: "Remove a catalog preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, path, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		if !catalog.Remove(args[0]) {
			return fmt.Errorf("unknown catalog preset %q", args[0])
		}
		if err := project.SaveCatalog(path, catalog); err != nil {
			return err
		}
		fmt.Println("Preset removed:", args[0])
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge presets from another catalog file",
	Long:  `Merges presets from a catalog JSON file; presets whose reference already exists are skipped.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, path, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		before := len(catalog.Presets)
		merged, err := project.ImportCatalog(args[0], catalog)
		if err != nil {
			return err
		}
		if err := project.SaveCatalog(path, merged); err != nil {
			return err
		}
		fmt.Printf("Imported %d presets (%d total)\n", len(merged.Presets)-before, len(merged.Presets))
		return nil
	},
}

func init() {
	catalogAddCmd.Flags().StringVar(&catalogAddDims, "dims", "", "Inner dimensions WxLxD in mm (required)")
	catalogAddCmd.Flags().IntVar(&catalogAddMaxWeight, "max-weight", 10000, "Maximum content weight in grams")
	catalogAddCmd.Flags().StringVar(&catalogAddNotes, "notes", "", "Free-form note on the preset")
	_ = catalogAddCmd.MarkFlagRequired("dims")

	catalogCmd.AddCommand(catalogListCmd, catalogAddCmd, catalogRemoveCmd, catalogImportCmd)
	rootCmd.AddCommand(catalogCmd)
}
