// CartonPack — 3D Carton Packing Optimizer
//
// A command-line tool for fitting items into shipping cartons. It packs
// item lists into the fewest boxes it can find, prints packing lists, and
// exports PDF, label, and Excel manifests.
//
// Build:
//   go build -o cartonpack ./cmd/cartonpack

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CartonPack/internal/model"
	"github.com/piwi3910/CartonPack/internal/project"
)

var (
	verbose bool
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))

	appConfig model.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "cartonpack",
	Short: "Fit items into shipping cartons",
	Long: `CartonPack packs rectangular items into shipping cartons, layer by layer,
and reports which box each item goes into and where.

Item lists are read from CSV or Excel files. Cartons come from the local
catalog (~/.cartonpack/catalog.json) or from --box flags.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log placement and lookahead decisions to stderr")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}

		config, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			logger.Warn("cannot load config, using defaults", "error", err)
			config = model.DefaultAppConfig()
		}
		appConfig = config

		if carriers, err := project.LoadCustomCarriersFromDefault(); err == nil {
			model.CustomCarriers = carriers
		}
	}
}
