package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldscan/surveyor/pkg/analysis"
	"github.com/fieldscan/surveyor/pkg/geometry"
	"github.com/fieldscan/surveyor/pkg/stl"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
)

var distanceCmd = &cobra.Command{
	Use:   "distance [file]",
	Short: "Measure distance between two points on a surface model",
	Long: `Measure the straight-line distance between two 3D points, plus the
distance between the model vertices nearest to them.`,
	Args: cobra.ExactArgs(1),
	Run:  runDistance,
}

func init() {
	rootCmd.AddCommand(distanceCmd)

	distanceCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	distanceCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	distanceCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	distanceCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	distanceCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	distanceCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")

	distanceCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runDistance(cmd *cobra.Command, args []string) {
	filename := args[0]

	p1 := geometry.NewVector3(point1X, point1Y, point1Z)
	p2 := geometry.NewVector3(point2X, point2Y, point2Z)

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Point-to-Point Measurement")
	fmt.Println("==========================")

	nearest1, dist1 := analysis.FindNearestVertex(model, p1)
	nearest2, dist2 := analysis.FindNearestVertex(model, p2)

	fmt.Printf("\nPoint 1: %s\n", analysis.FormatVector(p1))
	if dist1 > 0 {
		fmt.Printf("  Nearest vertex: %s (distance: %.6f)\n", analysis.FormatVector(nearest1), dist1)
	}

	fmt.Printf("\nPoint 2: %s\n", analysis.FormatVector(p2))
	if dist2 > 0 {
		fmt.Printf("  Nearest vertex: %s (distance: %.6f)\n", analysis.FormatVector(nearest2), dist2)
	}

	fmt.Printf("\nDirect distance: %.6f units\n", p1.Distance(p2))

	if dist1 > 0 || dist2 > 0 {
		fmt.Printf("Distance between nearest vertices: %.6f units\n", nearest1.Distance(nearest2))
	}
}
