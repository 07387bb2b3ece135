package overlay

import (
	"fmt"

	"github.com/fieldscan/surveyor/internal/inspect"
)

// Label colors for the non-measurement anchor kinds. Measurements carry
// their own palette color.
const (
	annotationColor = "#ff4d4d"
	datumColor      = "#4da6ff"
	conditionColor  = "#ffb84d"
)

// SessionAnchors builds the anchor set for every labeled entity in the
// session. Closed measurements are labeled at their centroid with area and
// perimeter, open ones with their total length.
func SessionAnchors(s *inspect.Session) []Anchor {
	var anchors []Anchor

	for _, m := range s.Measurements.All() {
		if len(m.Points) == 0 {
			continue
		}
		label := fmt.Sprintf("#%d length %.2f", m.ID, m.Perimeter)
		world := m.Centroid()
		if m.Closed {
			label = fmt.Sprintf("#%d area %.2f perim %.2f", m.ID, m.Area, m.Perimeter)
		} else if len(m.Points) >= 2 {
			// Open polylines label at the middle of the path, not the
			// vertex centroid
			mid := len(m.Points) / 2
			world = m.Points[mid-1].Midpoint(m.Points[mid])
		}
		anchors = append(anchors, Anchor{
			Kind:  KindMeasurement,
			ID:    m.ID,
			World: world,
			Label: label,
			Color: m.Color,
		})
	}

	for _, a := range s.Annotations.All() {
		label := fmt.Sprintf("%s (%s)", a.Type, a.Severity)
		if a.Link != nil {
			label += fmt.Sprintf(" @m%d", a.Link.MeasurementID)
		}
		anchors = append(anchors, Anchor{
			Kind:  KindAnnotation,
			ID:    a.ID,
			World: a.Position,
			Label: label,
			Color: annotationColor,
		})
	}

	for _, d := range s.Datums.All() {
		anchors = append(anchors, Anchor{
			Kind:  KindDatum,
			ID:    d.ID,
			World: d.Position,
			Label: d.Name,
			Color: datumColor,
		})
	}

	for _, c := range s.Conditions.All() {
		category, score := c.Worst()
		label := "condition unscored"
		if score > 0 {
			label = fmt.Sprintf("%s %d/%d", category, score, inspect.MaxConditionScore)
		}
		anchors = append(anchors, Anchor{
			Kind:  KindCondition,
			ID:    c.ID,
			World: c.Position,
			Label: label,
			Color: conditionColor,
		})
	}

	return anchors
}
