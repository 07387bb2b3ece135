package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldscan/surveyor/pkg/analysis"
	"github.com/fieldscan/surveyor/pkg/geometry"
)

var pointFlags []string

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Compute the area of a polygon from its corner points",
	Long: `Compute area, perimeter and centroid of a closed polygon given its
corner points in order. Each --point takes "x,y,z"; at least three points
are required.

Example:
  surveyor area --point 0,0,0 --point 3,0,0 --point 0,0,4`,
	RunE: runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)
	areaCmd.Flags().StringArrayVar(&pointFlags, "point", nil, `polygon corner as "x,y,z" (repeatable, in order)`)
}

func parsePoint(s string) (geometry.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geometry.Vector3{}, fmt.Errorf("expected \"x,y,z\", got %q", s)
	}
	coords := [3]float64{}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid coordinate %q in %q", part, s)
		}
		coords[i] = v
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

func runArea(cmd *cobra.Command, args []string) error {
	if len(pointFlags) < 3 {
		return fmt.Errorf("a polygon needs at least 3 points, got %d", len(pointFlags))
	}

	points := make([]geometry.Vector3, 0, len(pointFlags))
	for _, flag := range pointFlags {
		p, err := parsePoint(flag)
		if err != nil {
			return err
		}
		points = append(points, p)
	}

	area := geometry.PolygonArea(points)
	perimeter := geometry.PolygonPerimeter(points, true)
	centroid := geometry.PolygonCentroid(points)

	fmt.Println("Polygon Measurement")
	fmt.Println("===================")
	fmt.Printf("Points: %d\n", len(points))
	for i, p := range points {
		fmt.Printf("  %d: %s\n", i+1, analysis.FormatVector(p))
	}
	fmt.Printf("\nArea: %.6f square units\n", area)
	fmt.Printf("Perimeter: %.6f units\n", perimeter)
	fmt.Printf("Centroid: %s\n", analysis.FormatVector(centroid))
	return nil
}
