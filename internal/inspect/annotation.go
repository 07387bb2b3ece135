package inspect

import (
	"time"

	"github.com/fieldscan/surveyor/pkg/geometry"
)

// Severity grades how serious a recorded discrepancy is
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the display name of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	}
	return "unknown"
}

// Discrepancy categories for annotations
const (
	TypeCrack     = "crack"
	TypeCorrosion = "corrosion"
	TypeDent      = "dent"
	TypeCoating   = "coating"
	TypeLeak      = "leak"
	TypeOther     = "other"
)

// AnnotationTypes lists the categories in display order
var AnnotationTypes = []string{
	TypeCrack, TypeCorrosion, TypeDent, TypeCoating, TypeLeak, TypeOther,
}

// ComplianceFlags are the boolean assessment flags carried by an annotation
type ComplianceFlags struct {
	RequiresRepair bool
	SafetyCritical bool
	Documented     bool
}

// Relationship describes how an annotation relates to a linked measurement
type Relationship string

const (
	RelationshipInside   Relationship = "inside"
	RelationshipNearLine Relationship = "near_line"
)

// LinkedMeasurementRef is a non-owning snapshot of the measurement an
// annotation was associated with at save time. It holds an id, never the
// measurement itself, and is not recomputed when the measurement's geometry
// changes later.
type LinkedMeasurementRef struct {
	MeasurementID int
	Relationship  Relationship
	Distance      float64 // Distance to the nearest segment, 0 for inside
}

// Annotation is a single-point discrepancy record placed on the surface,
// optionally linked to an enclosing or nearby measurement.
type Annotation struct {
	ID          int
	Position    geometry.Vector3
	Type        string
	Severity    Severity
	Description string
	Flags       ComplianceFlags
	Link        *LinkedMeasurementRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AnnotationStore owns annotation entities. Link maintenance against deleted
// measurements is coordinated by the Session, which is the only component
// that sees both stores.
type AnnotationStore struct {
	annotations []*Annotation
	nextID      int
	now         func() time.Time
}

// NewAnnotationStore creates an empty store
func NewAnnotationStore() *AnnotationStore {
	return &AnnotationStore{
		nextID: 1,
		now:    time.Now,
	}
}

// Create adds a new annotation at the given position
func (s *AnnotationStore) Create(position geometry.Vector3, annotationType string, severity Severity, description string, flags ComplianceFlags) *Annotation {
	now := s.now()
	a := &Annotation{
		ID:          s.nextID,
		Position:    position,
		Type:        annotationType,
		Severity:    severity,
		Description: description,
		Flags:       flags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.annotations = append(s.annotations, a)
	return a
}

// Get returns the annotation with the given id, or nil
func (s *AnnotationStore) Get(id int) *Annotation {
	for _, a := range s.annotations {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// All returns the annotations in creation order
func (s *AnnotationStore) All() []*Annotation {
	return s.annotations
}

// Count returns the number of annotations
func (s *AnnotationStore) Count() int {
	return len(s.annotations)
}

// Delete removes an annotation
func (s *AnnotationStore) Delete(id int) bool {
	for i, a := range s.annotations {
		if a.ID == id {
			s.annotations = append(s.annotations[:i], s.annotations[i+1:]...)
			return true
		}
	}
	return false
}

// SetLink attaches a link snapshot to an annotation
func (s *AnnotationStore) SetLink(a *Annotation, link *LinkedMeasurementRef) {
	a.Link = link
	a.UpdatedAt = s.now()
}

// ClearLinksTo removes the link from every annotation referencing the given
// measurement and returns how many were cleared. Called when a measurement is
// deleted so no annotation is left dangling.
func (s *AnnotationStore) ClearLinksTo(measurementID int) int {
	cleared := 0
	now := s.now()
	for _, a := range s.annotations {
		if a.Link != nil && a.Link.MeasurementID == measurementID {
			a.Link = nil
			a.UpdatedAt = now
			cleared++
		}
	}
	return cleared
}

// LinkCount returns how many annotations currently link to the measurement
func (s *AnnotationStore) LinkCount(measurementID int) int {
	count := 0
	for _, a := range s.annotations {
		if a.Link != nil && a.Link.MeasurementID == measurementID {
			count++
		}
	}
	return count
}

// FindNearest returns the annotation closest to position within maxDistance.
// Ties keep the annotation created first.
func (s *AnnotationStore) FindNearest(position geometry.Vector3, maxDistance float64) (*Annotation, bool) {
	positions := make([]geometry.Vector3, len(s.annotations))
	for i, a := range s.annotations {
		positions[i] = a.Position
	}
	index, _, ok := nearestPoint(positions, position, maxDistance)
	if !ok {
		return nil, false
	}
	return s.annotations[index], true
}
