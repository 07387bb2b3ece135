package inspect

import (
	"time"

	"github.com/fieldscan/surveyor/pkg/geometry"
)

// Measurement is an ordered sequence of surface points forming either an
// open polyline (linear measurement) or, once closed, a polygon (area
// measurement). Perimeter and Area are derived values; every point mutation
// goes through the MeasurementStore, which recomputes them before the entity
// is considered valid again.
type Measurement struct {
	ID        int
	Points    []geometry.Vector3
	Closed    bool
	Locked    bool
	Perimeter float64
	Area      float64
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Segment is one edge of a measurement
type Segment struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// recompute re-derives perimeter and area from the current point sequence.
// A closed measurement that has dropped below 3 points is forced open.
func (m *Measurement) recompute(now time.Time) {
	if m.Closed && len(m.Points) < 3 {
		m.Closed = false
	}

	m.Perimeter = geometry.PolygonPerimeter(m.Points, m.Closed)
	if m.Closed {
		m.Area = geometry.PolygonArea(m.Points)
	} else {
		m.Area = 0
	}
	m.UpdatedAt = now
}

// Segments returns the edges of the measurement in topology order, including
// the closing segment from the last point back to the first when closed.
func (m *Measurement) Segments() []Segment {
	if len(m.Points) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(m.Points))
	for i := 0; i < len(m.Points)-1; i++ {
		segments = append(segments, Segment{Start: m.Points[i], End: m.Points[i+1]})
	}
	if m.Closed {
		segments = append(segments, Segment{
			Start: m.Points[len(m.Points)-1],
			End:   m.Points[0],
		})
	}
	return segments
}

// Centroid returns the vertex centroid of the point sequence, used for
// overlay label placement.
func (m *Measurement) Centroid() geometry.Vector3 {
	return geometry.PolygonCentroid(m.Points)
}
