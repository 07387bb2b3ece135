package inspect

import "github.com/fieldscan/surveyor/pkg/geometry"

// Session is the top-level inspection state: one store per entity kind, the
// tool mode machine, and the annotation linker. It is the only component
// that coordinates across stores, so cross-entity invariants (no dangling
// links, lock lifecycle) live here.
type Session struct {
	Measurements *MeasurementStore
	Annotations  *AnnotationStore
	Datums       *DatumStore
	Conditions   *ConditionStore
	Modes        *ModeMachine

	linker *Linker
}

// NewSession creates an empty session with the given link proximity
// threshold. A zero or negative threshold falls back to the default.
func NewSession(proximityThreshold float64) *Session {
	linker := NewLinker()
	if proximityThreshold > 0 {
		linker.Threshold = proximityThreshold
	}
	return &Session{
		Measurements: NewMeasurementStore(),
		Annotations:  NewAnnotationStore(),
		Datums:       NewDatumStore(),
		Conditions:   NewConditionStore(),
		Modes:        NewModeMachine(),
		linker:       linker,
	}
}

// FindLink resolves the link candidate for a point against the current
// measurements without saving anything. Used for live preview.
func (s *Session) FindLink(position geometry.Vector3) *LinkedMeasurementRef {
	return s.linker.FindLink(position, s.Measurements.All())
}

// SaveAnnotation creates an annotation and snapshots its measurement link at
// save time. The linked measurement, if any, becomes locked: something now
// depends on its shape. The link is never recomputed afterwards; editing the
// measurement later does not re-validate existing links.
func (s *Session) SaveAnnotation(position geometry.Vector3, annotationType string, severity Severity, description string, flags ComplianceFlags) *Annotation {
	a := s.Annotations.Create(position, annotationType, severity, description, flags)

	if link := s.FindLink(position); link != nil {
		s.Annotations.SetLink(a, link)
		s.Measurements.Lock(link.MeasurementID)
	}
	return a
}

// DeleteAnnotation removes an annotation. If it held the last link to a
// measurement, that measurement is unlocked again.
func (s *Session) DeleteAnnotation(id int) bool {
	a := s.Annotations.Get(id)
	if a == nil {
		return false
	}
	link := a.Link
	if !s.Annotations.Delete(id) {
		return false
	}
	if link != nil && s.Annotations.LinkCount(link.MeasurementID) == 0 {
		s.Measurements.Unlock(link.MeasurementID)
	}
	return true
}

// DeleteMeasurement removes a measurement and clears the link of every
// annotation that referenced it, so no link is ever left dangling.
func (s *Session) DeleteMeasurement(id int) bool {
	if !s.Measurements.Delete(id) {
		return false
	}
	if cleared := s.Annotations.ClearLinksTo(id); cleared > 0 {
		Logf("measurement %d deleted, cleared %d annotation link(s)", id, cleared)
	}
	return true
}
