package inspect

import "github.com/fieldscan/surveyor/pkg/geometry"

// DefaultProximityThreshold is the distance in model units below which a
// point counts as "near" a measurement's edge for linking purposes.
const DefaultProximityThreshold = 0.5

// Linker resolves which measurement, if any, a candidate annotation point
// should be associated with. It only reads measurements, never mutates them.
type Linker struct {
	Threshold float64
}

// NewLinker creates a linker with the default proximity threshold
func NewLinker() *Linker {
	return &Linker{Threshold: DefaultProximityThreshold}
}

// FindLink determines the relationship between a point and the given
// measurements:
//
//  1. Every closed measurement with at least 3 points is tested for
//     containment first. The first one whose polygon encloses the point (on
//     the horizontal projection) wins immediately, with distance 0. Being
//     enclosed always beats being near an edge, and the first closed polygon
//     in iteration order wins when two overlap.
//  2. Only if no polygon encloses the point, the nearest segment over all
//     measurements is found, including closing segments. If that global
//     minimum is below the proximity threshold the result is a near_line
//     link carrying the distance.
//
// Returns nil when the point is neither inside nor near anything.
func (l *Linker) FindLink(point geometry.Vector3, measurements []*Measurement) *LinkedMeasurementRef {
	for _, m := range measurements {
		if !m.Closed || len(m.Points) < 3 {
			continue
		}
		if geometry.PointInPolygonXZ(point, m.Points) {
			return &LinkedMeasurementRef{
				MeasurementID: m.ID,
				Relationship:  RelationshipInside,
				Distance:      0,
			}
		}
	}

	var nearest *Measurement
	nearestDist := 0.0
	for _, m := range measurements {
		for _, seg := range m.Segments() {
			d := geometry.DistancePointToSegment(point, seg.Start, seg.End)
			if nearest == nil || d < nearestDist {
				nearest = m
				nearestDist = d
			}
		}
	}

	if nearest != nil && nearestDist < l.Threshold {
		return &LinkedMeasurementRef{
			MeasurementID: nearest.ID,
			Relationship:  RelationshipNearLine,
			Distance:      nearestDist,
		}
	}
	return nil
}
