package inspect

import "time"

// Export records are the plain serializable form of the session entities,
// consumed by external report tooling. Fields mirror the live entities at
// the moment of serialization; nothing here is recomputed.

// PointRecord is a serialized 3D coordinate
type PointRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LinkRecord is a serialized measurement link
type LinkRecord struct {
	MeasurementID int     `json:"measurementId"`
	Relationship  string  `json:"relationship"`
	Distance      float64 `json:"distance"`
}

// MeasurementRecord is a serialized measurement
type MeasurementRecord struct {
	ID        int           `json:"id"`
	Points    []PointRecord `json:"points"`
	Perimeter float64       `json:"perimeter"`
	Area      float64       `json:"area"`
	Closed    bool          `json:"closed"`
	Locked    bool          `json:"locked"`
	Color     string        `json:"color"`
	CreatedAt time.Time     `json:"createdAt"`
}

// AnnotationRecord is a serialized annotation
type AnnotationRecord struct {
	ID          int         `json:"id"`
	Position    PointRecord `json:"position"`
	Type        string      `json:"type"`
	Severity    string      `json:"severity"`
	Description string      `json:"description"`
	Flags       FlagsRecord `json:"flags"`
	Link        *LinkRecord `json:"link"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// FlagsRecord is the serialized compliance flags
type FlagsRecord struct {
	RequiresRepair bool `json:"requiresRepair"`
	SafetyCritical bool `json:"safetyCritical"`
	Documented     bool `json:"documented"`
}

// DatumRecord is a serialized reference datum
type DatumRecord struct {
	ID        int         `json:"id"`
	Position  PointRecord `json:"position"`
	Name      string      `json:"name"`
	Kind      string      `json:"kind"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AssessmentRecord is a serialized condition assessment
type AssessmentRecord struct {
	ID        int            `json:"id"`
	Position  PointRecord    `json:"position"`
	Scores    map[string]int `json:"scores"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"createdAt"`
}

// SessionRecord is the full serialized session
type SessionRecord struct {
	Measurements []MeasurementRecord `json:"measurements"`
	Annotations  []AnnotationRecord  `json:"annotations"`
	Datums       []DatumRecord       `json:"datums"`
	Assessments  []AssessmentRecord  `json:"assessments"`
}

// Export snapshots every entity of the session into its serializable form
func (s *Session) Export() SessionRecord {
	record := SessionRecord{
		Measurements: make([]MeasurementRecord, 0, s.Measurements.Count()),
		Annotations:  make([]AnnotationRecord, 0, s.Annotations.Count()),
		Datums:       make([]DatumRecord, 0, s.Datums.Count()),
		Assessments:  make([]AssessmentRecord, 0, s.Conditions.Count()),
	}

	for _, m := range s.Measurements.All() {
		points := make([]PointRecord, len(m.Points))
		for i, p := range m.Points {
			points[i] = PointRecord{X: p.X, Y: p.Y, Z: p.Z}
		}
		record.Measurements = append(record.Measurements, MeasurementRecord{
			ID:        m.ID,
			Points:    points,
			Perimeter: m.Perimeter,
			Area:      m.Area,
			Closed:    m.Closed,
			Locked:    m.Locked,
			Color:     m.Color,
			CreatedAt: m.CreatedAt,
		})
	}

	for _, a := range s.Annotations.All() {
		ar := AnnotationRecord{
			ID:          a.ID,
			Position:    PointRecord{X: a.Position.X, Y: a.Position.Y, Z: a.Position.Z},
			Type:        a.Type,
			Severity:    a.Severity.String(),
			Description: a.Description,
			Flags: FlagsRecord{
				RequiresRepair: a.Flags.RequiresRepair,
				SafetyCritical: a.Flags.SafetyCritical,
				Documented:     a.Flags.Documented,
			},
			CreatedAt: a.CreatedAt,
		}
		if a.Link != nil {
			ar.Link = &LinkRecord{
				MeasurementID: a.Link.MeasurementID,
				Relationship:  string(a.Link.Relationship),
				Distance:      a.Link.Distance,
			}
		}
		record.Annotations = append(record.Annotations, ar)
	}

	for _, d := range s.Datums.All() {
		record.Datums = append(record.Datums, DatumRecord{
			ID:        d.ID,
			Position:  PointRecord{X: d.Position.X, Y: d.Position.Y, Z: d.Position.Z},
			Name:      d.Name,
			Kind:      d.Kind,
			CreatedAt: d.CreatedAt,
		})
	}

	for _, a := range s.Conditions.All() {
		scores := make(map[string]int, len(a.Scores))
		for c, v := range a.Scores {
			scores[string(c)] = v
		}
		record.Assessments = append(record.Assessments, AssessmentRecord{
			ID:        a.ID,
			Position:  PointRecord{X: a.Position.X, Y: a.Position.Y, Z: a.Position.Z},
			Scores:    scores,
			Notes:     a.Notes,
			CreatedAt: a.CreatedAt,
		})
	}

	return record
}
