package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CartonPack/internal/project"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage saved job templates",
	Long: `Lists and removes saved job templates. Templates are created with
"pack --save-template" and replayed with "pack --template".`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		if len(store.Templates) == 0 {
			fmt.Println("No templates saved")
			return nil
		}
		fmt.Printf("%-24s %6s %6s %12s  %s\n", "Name", "Items", "Boxes", "Created", "Description")
		for _, t := range store.Templates {
			fmt.Printf("%-24s %6d %6d %12s  %s\n",
				t.Name, len(t.Items), len(t.Boxes), t.CreatedAt.Format("2006-01-02"), t.Description)
		}
		return nil
	},
}

var templateRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a saved template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		if !store.Remove(args[0]) {
			return fmt.Errorf("unknown template %q", args[0])
		}
		if err := project.SaveDefaultTemplates(store); err != nil {
			return err
		}
		fmt.Println("Template removed:", args[0])
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateListCmd, templateRemoveCmd)
	rootCmd.AddCommand(templateCmd)
}
