// Package analysis derives summary statistics from a loaded surface model
package analysis

import (
	"fmt"
	"math"

	"github.com/fieldscan/surveyor/pkg/geometry"
	"github.com/fieldscan/surveyor/pkg/stl"
)

// Report contains the derived statistics of a surface model
type Report struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64 // Bounding box volume
	SurfaceArea   float64
	TriangleCount int
	VertexCount   int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeModel computes the full report for a model
func AnalyzeModel(model *stl.Model) *Report {
	report := &Report{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
		VertexCount:   len(model.Vertices()),
	}
	report.Dimensions = report.BoundingBox.Size()
	report.Volume = report.BoundingBox.Volume()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	edgeCount := 0

	for _, triangle := range model.Triangles {
		edges := [3][2]geometry.Vector3{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		}
		for _, edge := range edges {
			length := edge[0].Distance(edge[1])
			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
			edgeCount++
		}
	}

	report.EdgeCount = edgeCount
	if edgeCount > 0 {
		report.MinEdgeLength = minLength
		report.MaxEdgeLength = maxLength
		report.AvgEdgeLength = totalLength / float64(edgeCount)
	}
	return report
}

// FindNearestVertex returns the model vertex nearest to a point and its
// distance
func FindNearestVertex(model *stl.Model, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearest geometry.Vector3
	minDistance := math.MaxFloat64

	for _, triangle := range model.Triangles {
		for _, vertex := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			if distance := point.Distance(vertex); distance < minDistance {
				minDistance = distance
				nearest = vertex
			}
		}
	}
	return nearest, minDistance
}

// FormatVector formats a 3D position for CLI output
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
