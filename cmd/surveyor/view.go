package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldscan/surveyor/internal/app"
	"github.com/fieldscan/surveyor/internal/conf"
)

var configDir string

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open the interactive inspection viewer",
	Long: `Open an STL surface model in the interactive viewer. Tools for
measuring, annotating, placing datums and condition scoring are switched
with the V/M/N/R/K keys; press H in the viewer for the full key reference.`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVar(&configDir, "config", "", "directory containing surveyor.yaml (default: current directory)")
}

func runView(cmd *cobra.Command, args []string) {
	settings, err := conf.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := app.Run(args[0], settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
