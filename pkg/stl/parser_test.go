package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

const asciiCube = `solid plate
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 0 0
    vertex 1 1 0
  endloop
endfacet
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 1 0
    vertex 0 1 0
  endloop
endfacet
endsolid plate
`

func TestParseASCII(t *testing.T) {
	model, err := parseASCII(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("parseASCII failed: %v", err)
	}

	if model.Name != "plate" {
		t.Errorf("expected name %q, got %q", "plate", model.Name)
	}
	if model.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", model.TriangleCount())
	}

	area := model.SurfaceArea()
	if math.Abs(area-1.0) > 1e-10 {
		t.Errorf("expected surface area 1.0, got %v", area)
	}
}

func TestVerticesDeduplicates(t *testing.T) {
	model, err := parseASCII(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("parseASCII failed: %v", err)
	}

	// 2 triangles share an edge: 6 facet vertices, 4 distinct positions
	vertices := model.Vertices()
	if len(vertices) != 4 {
		t.Errorf("expected 4 distinct vertices, got %d", len(vertices))
	}
}

func TestParseASCIIRejectsShortFacet(t *testing.T) {
	input := `solid bad
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 0 0
  endloop
endfacet
endsolid bad
`
	if _, err := parseASCII(strings.NewReader(input)); err == nil {
		t.Error("expected error for facet with 2 vertices")
	}
}

func TestParseASCIIRejectsBadCoordinate(t *testing.T) {
	input := `solid bad
facet normal 0 0 1
  outer loop
    vertex 0 zero 0
    vertex 1 0 0
    vertex 1 1 0
  endloop
endfacet
endsolid bad
`
	if _, err := parseASCII(strings.NewReader(input)); err == nil {
		t.Error("expected error for non-numeric coordinate")
	}
}

func TestParseBinary(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "scan export")
	buf.Write(header)

	facet := binaryFacet{
		Normal: [3]float32{0, 0, 1},
		Vertices: [3][3]float32{
			{0, 0, 0},
			{2, 0, 0},
			{0, 2, 0},
		},
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(1)); err != nil {
		t.Fatalf("write count: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, facet); err != nil {
		t.Fatalf("write facet: %v", err)
	}

	model, err := parseBinary(&buf)
	if err != nil {
		t.Fatalf("parseBinary failed: %v", err)
	}
	if model.Name != "scan export" {
		t.Errorf("expected name from header, got %q", model.Name)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", model.TriangleCount())
	}
	area := model.SurfaceArea()
	if math.Abs(area-2.0) > 1e-10 {
		t.Errorf("expected surface area 2.0, got %v", area)
	}
}

func TestParseBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	if err := binary.Write(&buf, binary.LittleEndian, uint32(3)); err != nil {
		t.Fatalf("write count: %v", err)
	}
	if _, err := parseBinary(&buf); err == nil {
		t.Error("expected error for truncated facet data")
	}
}

func TestBoundingBox(t *testing.T) {
	model, err := parseASCII(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("parseASCII failed: %v", err)
	}

	bbox := model.BoundingBox()
	if bbox.Min.X != 0 || bbox.Min.Y != 0 || bbox.Max.X != 1 || bbox.Max.Y != 1 {
		t.Errorf("unexpected bounding box: min %v max %v", bbox.Min, bbox.Max)
	}
}
