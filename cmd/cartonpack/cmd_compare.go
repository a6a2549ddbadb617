package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CartonPack/internal/engine"
)

var (
	compareItemsFile string
	compareBoxSpecs  []string
	comparePresets   []string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare item orderings side by side",
	Long: `Packs the same item list under each available item ordering and prints
the results side by side, so you can see whether volume, weight, or footprint
ordering gives the tighter packing for your mix.

Example:
  cartonpack compare -i items.csv --box 400x300x250:15000:10`,
	RunE: runCompareCommand,
}

func init() {
	compareCmd.Flags().StringVarP(&compareItemsFile, "items", "i", "", "Item list file (.csv, .xlsx) (required)")
	compareCmd.Flags().StringArrayVar(&compareBoxSpecs, "box", nil, "Carton spec WxLxD:maxweight[:qty], repeatable")
	compareCmd.Flags().StringArrayVar(&comparePresets, "preset", nil, "Catalog preset name[:qty], repeatable")
	_ = compareCmd.MarkFlagRequired("items")

	rootCmd.AddCommand(compareCmd)
}

func runCompareCommand(cmd *cobra.Command, args []string) error {
	items, err := loadItems(compareItemsFile)
	if err != nil {
		return err
	}
	boxes, err := resolveBoxes(compareBoxSpecs, comparePresets)
	if err != nil {
		return err
	}

	results, err := engine.CompareScenarios(engine.DefaultScenarios(), boxes, items, logger)
	if err != nil {
		return err
	}
	best := engine.BestScenario(results)

	fmt.Printf("%-26s %6s %9s %10s %9s\n", "Scenario", "Boxes", "Unpacked", "Util %", "Weight g")
	for i, r := range results {
		marker := "  "
		if i == best {
			marker = "* "
		}
		fmt.Printf("%s%-24s %6d %9d %10.1f %9d\n",
			marker, r.Scenario.Name, r.BoxesUsed, r.UnpackedCount, r.Utilization, r.TotalWeight)
	}
	if best >= 0 {
		fmt.Printf("\nBest ordering: %s\n", results[best].Scenario.Name)
	}
	return nil
}
