package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CartonPack/internal/model"
	"github.com/piwi3910/CartonPack/internal/project"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import all application data",
	Long: `Bundles the app config, carton catalog, custom carrier profiles, and
job templates into a single JSON file, or restores them from one.`,
}

var backupExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write all application data to a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, _, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		templates, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}

		backup := project.BackupData{
			Config:    appConfig,
			Catalog:   catalog,
			Carriers:  model.CustomCarriers,
			Templates: templates,
		}
		if err := project.ExportAllData(args[0], backup); err != nil {
			return err
		}
		fmt.Println("Backup written to", args[0])
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore all application data from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := project.ImportAllData(args[0])
		if err != nil {
			return err
		}

		if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
			return err
		}
		if err := project.SaveCatalog(project.DefaultCatalogPath(), backup.Catalog); err != nil {
			return err
		}
		if err := project.SaveCustomCarriersToDefault(backup.Carriers); err != nil {
			return err
		}
		if err := project.SaveDefaultTemplates(backup.Templates); err != nil {
			return err
		}
		model.CustomCarriers = backup.Carriers

		fmt.Printf("Restored backup from %s (created %s)\n", args[0], backup.CreatedAt)
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
	rootCmd.AddCommand(backupCmd)
}
