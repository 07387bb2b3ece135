package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldscan/surveyor/pkg/analysis"
	"github.com/fieldscan/surveyor/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a surface model",
	Long:  "Show dimensions, triangle and vertex counts, surface area and edge statistics of an STL surface model.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	report := analysis.AnalyzeModel(model)

	fmt.Println("Surface Model Information")
	fmt.Println("=========================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", report.TriangleCount)
	fmt.Printf("  Vertices: %d\n", report.VertexCount)
	fmt.Printf("  Edges: %d\n", report.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", report.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(report.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(report.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(report.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", report.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", report.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", report.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", report.BoundingBox.Diagonal())
	fmt.Printf("  Volume: %.6f cubic units\n\n", report.Volume)

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", report.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", report.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", report.AvgEdgeLength)
}
