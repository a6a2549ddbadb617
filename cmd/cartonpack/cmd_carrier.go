package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CartonPack/internal/model"
	"github.com/piwi3910/CartonPack/internal/project"
)

var (
	carrierAddDivisor     float64
	carrierAddMaxWeight   int
	carrierAddMaxSide     int
	carrierAddDescription string
)

var carrierCmd = &cobra.Command{
	Use:   "carrier",
	Short: "Manage carrier profiles",
	Long: `Lists the built-in carrier profiles and manages custom ones. Custom
profiles are stored in the user config directory and can be shared as single
JSON files with export and import.`,
}

var carrierListCmd = &cobra.Command{
	Use:   "list",
	Short: "List carrier profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-16s %10s %12s %10s  %s\n", "Name", "Divisor", "Max (g)", "Side (mm)", "Description")
		for _, c := range model.AllCarriers() {
			name := c.Name
			if !c.IsBuiltIn {
				name += " *"
			}
			fmt.Printf("%-16s %10.0f %12d %10d  %s\n",
				name, c.VolumetricDivisor, c.MaxParcelWeight, c.MaxLongestSide, c.Description)
		}
		fmt.Println("\n* custom profile")
		return nil
	},
}

var carrierAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or update a custom carrier profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := model.NewCustomCarrier(args[0])
		c.Description = carrierAddDescription
		if cmd.Flags().Changed("divisor") {
			c.VolumetricDivisor = carrierAddDivisor
		}
		if cmd.Flags().Changed("max-weight") {
			c.MaxParcelWeight = carrierAddMaxWeight
		}
		if cmd.Flags().Changed("max-side") {
			c.MaxLongestSide = carrierAddMaxSide
		}
		if err := model.AddCustomCarrier(c); err != nil {
			return err
		}
		if err := project.SaveCustomCarriersToDefault(model.CustomCarriers); err != nil {
			return err
		}
		fmt.Println("Carrier saved:", c.Name)
		return nil
	},
}

var carrierRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a custom carrier profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := model.RemoveCustomCarrier(args[0]); err != nil {
			return err
		}
		if err := project.SaveCustomCarriersToDefault(model.CustomCarriers); err != nil {
			return err
		}
		fmt.Println("Carrier removed:", args[0])
		return nil
	},
}

var carrierExportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Export a carrier profile to a JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		carrier := model.GetCarrier(args[0])
		if carrier.Name != args[0] {
			return fmt.Errorf("unknown carrier %q", args[0])
		}
		if err := project.ExportCarrier(args[1], carrier); err != nil {
			return err
		}
		fmt.Println("Carrier written to", args[1])
		return nil
	},
}

var carrierImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a carrier profile from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		carrier, err := project.ImportCarrier(args[0])
		if err != nil {
			return err
		}
		if err := model.AddCustomCarrier(carrier); err != nil {
			return err
		}
		if err := project.SaveCustomCarriersToDefault(model.CustomCarriers); err != nil {
			return err
		}
		fmt.Println("Carrier imported:", carrier.Name)
		return nil
	},
}

func init() {
	carrierAddCmd.Flags().Float64Var(&carrierAddDivisor, "divisor", 5000, "Volumetric divisor in cm³/kg, 0 bills actual weight")
	carrierAddCmd.Flags().IntVar(&carrierAddMaxWeight, "max-weight", 0, "Maximum parcel weight in grams, 0 = no limit")
	carrierAddCmd.Flags().IntVar(&carrierAddMaxSide, "max-side", 0, "Maximum longest side in mm, 0 = no limit")
	carrierAddCmd.Flags().StringVar(&carrierAddDescription, "description", "", "Profile description")

	carrierCmd.AddCommand(carrierListCmd, carrierAddCmd, carrierRemoveCmd, carrierExportCmd, carrierImportCmd)
	rootCmd.AddCommand(carrierCmd)
}
