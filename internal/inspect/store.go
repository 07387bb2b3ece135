package inspect

import (
	"time"

	"github.com/fieldscan/surveyor/pkg/geometry"
)

// DefaultPalette is the display color cycle for new measurements. Colors are
// hex strings so the domain layer stays independent of any renderer; the
// viewer maps them to its own color type.
var DefaultPalette = []string{
	"#e6194b", // red
	"#3cb44b", // green
	"#4363d8", // blue
	"#f58231", // orange
	"#911eb4", // purple
	"#42d4f4", // cyan
	"#f032e6", // magenta
	"#bfef45", // lime
}

// PointRef identifies a single point within a measurement
type PointRef struct {
	Measurement *Measurement
	Index       int
}

// MeasurementStore owns all measurement entities and their points. No other
// component mutates a point in place; everything goes through the store so
// derived perimeter/area stay consistent with the point sequence.
type MeasurementStore struct {
	measurements []*Measurement
	nextID       int
	palette      []string
	currentID    int
	now          func() time.Time
}

// NewMeasurementStore creates an empty store using the default palette
func NewMeasurementStore() *MeasurementStore {
	return &MeasurementStore{
		nextID:  1,
		palette: DefaultPalette,
		now:     time.Now,
	}
}

// SetPalette replaces the color cycle for measurements created afterwards.
// An empty palette keeps the current one.
func (s *MeasurementStore) SetPalette(palette []string) {
	if len(palette) > 0 {
		s.palette = palette
	}
}

// Create appends a new empty measurement, makes it current and assigns the
// next palette color in sequence.
func (s *MeasurementStore) Create() *Measurement {
	now := s.now()
	m := &Measurement{
		ID:        s.nextID,
		Points:    make([]geometry.Vector3, 0),
		Color:     s.palette[len(s.measurements)%len(s.palette)],
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	s.measurements = append(s.measurements, m)
	s.currentID = m.ID
	return m
}

// Current returns the measurement receiving new points, or nil
func (s *MeasurementStore) Current() *Measurement {
	return s.Get(s.currentID)
}

// ClearCurrent detaches the current measurement so the next placed point
// starts a new one
func (s *MeasurementStore) ClearCurrent() {
	s.currentID = 0
}

// SetCurrent makes an existing measurement current
func (s *MeasurementStore) SetCurrent(id int) bool {
	if s.Get(id) == nil {
		return false
	}
	s.currentID = id
	return true
}

// Get returns the measurement with the given id, or nil
func (s *MeasurementStore) Get(id int) *Measurement {
	for _, m := range s.measurements {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// All returns the measurements in creation order. The slice is shared; the
// caller must treat it as read-only.
func (s *MeasurementStore) All() []*Measurement {
	return s.measurements
}

// Count returns the number of measurements
func (s *MeasurementStore) Count() int {
	return len(s.measurements)
}

// AddPoint appends a point to the measurement. A locked measurement rejects
// the mutation with a logged warning and no state change.
func (s *MeasurementStore) AddPoint(m *Measurement, point geometry.Vector3) bool {
	if m.Locked {
		Logf("measurement %d is locked, add point ignored", m.ID)
		return false
	}
	m.Points = append(m.Points, point)
	m.recompute(s.now())
	return true
}

// InsertPoint inserts a point before index, preserving topology order
func (s *MeasurementStore) InsertPoint(m *Measurement, index int, point geometry.Vector3) bool {
	if m.Locked {
		Logf("measurement %d is locked, insert point ignored", m.ID)
		return false
	}
	if index < 0 || index > len(m.Points) {
		Logf("measurement %d: insert index %d out of range", m.ID, index)
		return false
	}
	m.Points = append(m.Points, geometry.Vector3{})
	copy(m.Points[index+1:], m.Points[index:])
	m.Points[index] = point
	m.recompute(s.now())
	return true
}

// DeletePoint removes the point at index. Dropping a closed measurement
// below 3 points forces it open again.
func (s *MeasurementStore) DeletePoint(m *Measurement, index int) bool {
	if m.Locked {
		Logf("measurement %d is locked, delete point ignored", m.ID)
		return false
	}
	if index < 0 || index >= len(m.Points) {
		Logf("measurement %d: delete index %d out of range", m.ID, index)
		return false
	}
	m.Points = append(m.Points[:index], m.Points[index+1:]...)
	m.recompute(s.now())
	return true
}

// MovePoint mutates a point in place. Called continuously while a point is
// dragged, not just on release, so derived metrics track the drag live.
func (s *MeasurementStore) MovePoint(m *Measurement, index int, position geometry.Vector3) bool {
	if m.Locked {
		Logf("measurement %d is locked, move point ignored", m.ID)
		return false
	}
	if index < 0 || index >= len(m.Points) {
		Logf("measurement %d: move index %d out of range", m.ID, index)
		return false
	}
	m.Points[index] = position
	m.recompute(s.now())
	return true
}

// Close turns an open measurement into a polygon. Requires at least 3 points.
func (s *MeasurementStore) Close(m *Measurement) bool {
	if m.Locked {
		Logf("measurement %d is locked, close ignored", m.ID)
		return false
	}
	if len(m.Points) < 3 {
		Logf("measurement %d: need at least 3 points to close, have %d", m.ID, len(m.Points))
		return false
	}
	m.Closed = true
	m.recompute(s.now())
	return true
}

// Delete removes a measurement entirely. The caller (session) is responsible
// for clearing annotation links that reference it.
func (s *MeasurementStore) Delete(id int) bool {
	for i, m := range s.measurements {
		if m.ID == id {
			s.measurements = append(s.measurements[:i], s.measurements[i+1:]...)
			if s.currentID == id {
				s.currentID = 0
			}
			return true
		}
	}
	return false
}

// Lock marks a measurement as externally referenced, freezing its topology
func (s *MeasurementStore) Lock(id int) {
	if m := s.Get(id); m != nil {
		m.Locked = true
	}
}

// Unlock releases the topology freeze
func (s *MeasurementStore) Unlock(id int) {
	if m := s.Get(id); m != nil {
		m.Locked = false
	}
}

// FindNearestPoint scans every point of every measurement and returns the
// globally closest one within maxDistance. Ties resolve to the first point
// encountered in measurement-creation order then point-index order, so
// repeated calls with identical state give identical results.
func (s *MeasurementStore) FindNearestPoint(position geometry.Vector3, maxDistance float64) (PointRef, bool) {
	best := PointRef{Index: -1}
	bestDist := maxDistance
	found := false

	for _, m := range s.measurements {
		for i, p := range m.Points {
			d := position.Distance(p)
			if d > bestDist || (found && d == bestDist) {
				continue
			}
			best = PointRef{Measurement: m, Index: i}
			bestDist = d
			found = true
		}
	}
	return best, found
}

// TotalPerimeter sums the perimeter of all measurements
func (s *MeasurementStore) TotalPerimeter() float64 {
	total := 0.0
	for _, m := range s.measurements {
		total += m.Perimeter
	}
	return total
}

// TotalArea sums the area of all closed measurements
func (s *MeasurementStore) TotalArea() float64 {
	total := 0.0
	for _, m := range s.measurements {
		total += m.Area
	}
	return total
}
