package geometry

import (
	"math"
	"testing"
)

func TestPolygonAreaRightTriangle(t *testing.T) {
	// Right triangle with legs 3 and 4 in the horizontal plane
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 0, 4),
	}

	area := PolygonArea(points)
	expected := 6.0
	if math.Abs(area-expected) > 1e-6 {
		t.Errorf("PolygonArea failed: expected %v, got %v", expected, area)
	}
}

func TestPolygonAreaUnitSquare(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(1, 0, 1),
		NewVector3(0, 0, 1),
	}

	area := PolygonArea(points)
	expected := 1.0
	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("PolygonArea failed: expected %v, got %v", expected, area)
	}
}

func TestPolygonAreaTooFewPoints(t *testing.T) {
	cases := [][]Vector3{
		nil,
		{NewVector3(1, 2, 3)},
		{NewVector3(0, 0, 0), NewVector3(1, 1, 1)},
	}

	for _, points := range cases {
		if area := PolygonArea(points); area != 0 {
			t.Errorf("PolygonArea with %d points: expected 0, got %v", len(points), area)
		}
	}
}

func TestPolygonCentroid(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(2, 0, 0),
		NewVector3(2, 0, 2),
		NewVector3(0, 0, 2),
	}

	centroid := PolygonCentroid(points)
	expected := NewVector3(1, 0, 1)
	if centroid != expected {
		t.Errorf("PolygonCentroid failed: expected %v, got %v", expected, centroid)
	}
}

func TestPolygonCentroidEmpty(t *testing.T) {
	centroid := PolygonCentroid(nil)
	if centroid != (Vector3{}) {
		t.Errorf("PolygonCentroid of empty sequence: expected zero vector, got %v", centroid)
	}
}

func TestPolygonPerimeterOpen(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(3, 4, 0),
	}

	perimeter := PolygonPerimeter(points, false)
	expected := 7.0
	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("PolygonPerimeter open failed: expected %v, got %v", expected, perimeter)
	}
}

func TestPolygonPerimeterClosed(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(3, 4, 0),
	}

	// Closing edge is the hypotenuse back to the origin
	perimeter := PolygonPerimeter(points, true)
	expected := 12.0
	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("PolygonPerimeter closed failed: expected %v, got %v", expected, perimeter)
	}
}

func TestPolygonPerimeterSinglePoint(t *testing.T) {
	points := []Vector3{NewVector3(1, 2, 3)}
	if p := PolygonPerimeter(points, false); p != 0 {
		t.Errorf("PolygonPerimeter with one point: expected 0, got %v", p)
	}
}

func TestPointInPolygonXZUnitSquare(t *testing.T) {
	square := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(1, 0, 1),
		NewVector3(0, 0, 1),
	}

	if !PointInPolygonXZ(NewVector3(0.5, 0, 0.5), square) {
		t.Error("point (0.5, 0, 0.5) should be inside the unit square")
	}
	if PointInPolygonXZ(NewVector3(1.5, 0, 0.5), square) {
		t.Error("point (1.5, 0, 0.5) should be outside the unit square")
	}
}

func TestPointInPolygonXZIgnoresY(t *testing.T) {
	square := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(1, 0, 1),
		NewVector3(0, 0, 1),
	}

	// Only the horizontal projection matters
	if !PointInPolygonXZ(NewVector3(0.5, 100, 0.5), square) {
		t.Error("point far above the polygon should still test inside on (x,z)")
	}
	if PointInPolygonXZ(NewVector3(1.5, -50, 0.5), square) {
		t.Error("point outside the (x,z) footprint should be outside regardless of y")
	}
}

func TestPointInPolygonXZTooFewVertices(t *testing.T) {
	line := []Vector3{NewVector3(0, 0, 0), NewVector3(1, 0, 0)}
	if PointInPolygonXZ(NewVector3(0.5, 0, 0), line) {
		t.Error("a 2-vertex sequence is not a polygon and should contain nothing")
	}
}

func TestDistancePointToSegmentPerpendicular(t *testing.T) {
	start := NewVector3(0, 0, 0)
	end := NewVector3(10, 0, 0)
	point := NewVector3(5, 3, 0)

	d := DistancePointToSegment(point, start, end)
	if math.Abs(d-3.0) > 1e-10 {
		t.Errorf("DistancePointToSegment failed: expected 3, got %v", d)
	}
}

func TestDistancePointToSegmentClampsToEndpoint(t *testing.T) {
	start := NewVector3(0, 0, 0)
	end := NewVector3(10, 0, 0)
	point := NewVector3(13, 4, 0)

	// Projection falls past the end, so the distance is to the endpoint
	d := DistancePointToSegment(point, start, end)
	if math.Abs(d-5.0) > 1e-10 {
		t.Errorf("DistancePointToSegment failed: expected 5, got %v", d)
	}
}

func TestDistancePointToSegmentDegenerate(t *testing.T) {
	p := NewVector3(3, 4, 0)
	s := NewVector3(0, 0, 0)

	d := DistancePointToSegment(p, s, s)
	if math.Abs(d-5.0) > 1e-10 {
		t.Errorf("DistancePointToSegment degenerate failed: expected 5, got %v", d)
	}
}
