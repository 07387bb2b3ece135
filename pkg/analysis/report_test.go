package analysis

import (
	"math"
	"testing"

	"github.com/fieldscan/surveyor/pkg/geometry"
	"github.com/fieldscan/surveyor/pkg/stl"
)

func testModel() *stl.Model {
	model := stl.NewModel("plate")
	// Unit square in the XZ plane, split into two right triangles
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 0, 0)
	c := geometry.NewVector3(1, 0, 1)
	d := geometry.NewVector3(0, 0, 1)
	model.AddTriangle(geometry.NewTriangle(geometry.NewVector3(0, 1, 0), a, b, c))
	model.AddTriangle(geometry.NewTriangle(geometry.NewVector3(0, 1, 0), a, c, d))
	return model
}

func TestAnalyzeModel(t *testing.T) {
	report := AnalyzeModel(testModel())

	if report.TriangleCount != 2 {
		t.Errorf("TriangleCount = %d, want 2", report.TriangleCount)
	}
	if report.VertexCount != 4 {
		t.Errorf("VertexCount = %d, want 4", report.VertexCount)
	}
	if report.EdgeCount != 6 {
		t.Errorf("EdgeCount = %d, want 6", report.EdgeCount)
	}
	if math.Abs(report.SurfaceArea-1.0) > 1e-10 {
		t.Errorf("SurfaceArea = %f, want 1.0", report.SurfaceArea)
	}
	if math.Abs(report.Dimensions.X-1.0) > 1e-10 || report.Dimensions.Y != 0 || math.Abs(report.Dimensions.Z-1.0) > 1e-10 {
		t.Errorf("Dimensions = %+v, want (1, 0, 1)", report.Dimensions)
	}
	if math.Abs(report.MinEdgeLength-1.0) > 1e-10 {
		t.Errorf("MinEdgeLength = %f, want 1.0", report.MinEdgeLength)
	}
	if math.Abs(report.MaxEdgeLength-math.Sqrt2) > 1e-10 {
		t.Errorf("MaxEdgeLength = %f, want sqrt(2)", report.MaxEdgeLength)
	}
}

func TestAnalyzeEmptyModel(t *testing.T) {
	report := AnalyzeModel(stl.NewModel("empty"))
	if report.EdgeCount != 0 || report.MinEdgeLength != 0 || report.AvgEdgeLength != 0 {
		t.Errorf("empty model edge stats should be zero, got %+v", report)
	}
}

func TestFindNearestVertex(t *testing.T) {
	model := testModel()
	vertex, distance := FindNearestVertex(model, geometry.NewVector3(0.1, 0, 0.1))

	want := geometry.NewVector3(0, 0, 0)
	if vertex != want {
		t.Errorf("nearest vertex = %+v, want %+v", vertex, want)
	}
	if math.Abs(distance-math.Sqrt(0.02)) > 1e-10 {
		t.Errorf("distance = %f", distance)
	}
}
