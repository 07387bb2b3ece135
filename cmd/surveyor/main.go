package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldscan/surveyor/version"
)

var rootCmd = &cobra.Command{
	Use:   "surveyor",
	Short: "Interactive 3D surface inspection and measurement tool",
	Long: `surveyor loads a triangulated surface model (STL) and provides
point-based measurements, polygon area measurements, discrepancy annotations
with automatic measurement linking, reference datums and standardized
condition scoring.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
