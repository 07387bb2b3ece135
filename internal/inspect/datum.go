package inspect

import (
	"time"

	"github.com/fieldscan/surveyor/pkg/geometry"
)

// Datum kinds, matching the reference features surveyors pin on a surface
const (
	DatumBenchmark  = "benchmark"
	DatumCenterline = "centerline"
	DatumWaterline  = "waterline"
	DatumFrame      = "frame"
)

// ReferenceDatum is a named reference position on the surface. Datums carry
// no geometric derivation beyond their position; they participate in spatial
// search and overlay placement like every other point-anchored entity.
type ReferenceDatum struct {
	ID        int
	Position  geometry.Vector3
	Name      string
	Kind      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DatumStore owns reference datum entities
type DatumStore struct {
	datums []*ReferenceDatum
	nextID int
	now    func() time.Time
}

// NewDatumStore creates an empty store
func NewDatumStore() *DatumStore {
	return &DatumStore{
		nextID: 1,
		now:    time.Now,
	}
}

// Create adds a new datum at the given position
func (s *DatumStore) Create(position geometry.Vector3, name, kind string) *ReferenceDatum {
	now := s.now()
	d := &ReferenceDatum{
		ID:        s.nextID,
		Position:  position,
		Name:      name,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	s.datums = append(s.datums, d)
	return d
}

// Get returns the datum with the given id, or nil
func (s *DatumStore) Get(id int) *ReferenceDatum {
	for _, d := range s.datums {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// All returns the datums in creation order
func (s *DatumStore) All() []*ReferenceDatum {
	return s.datums
}

// Count returns the number of datums
func (s *DatumStore) Count() int {
	return len(s.datums)
}

// Delete removes a datum
func (s *DatumStore) Delete(id int) bool {
	for i, d := range s.datums {
		if d.ID == id {
			s.datums = append(s.datums[:i], s.datums[i+1:]...)
			return true
		}
	}
	return false
}

// FindNearest returns the datum closest to position within maxDistance.
// Ties keep the datum created first.
func (s *DatumStore) FindNearest(position geometry.Vector3, maxDistance float64) (*ReferenceDatum, bool) {
	positions := make([]geometry.Vector3, len(s.datums))
	for i, d := range s.datums {
		positions[i] = d.Position
	}
	index, _, ok := nearestPoint(positions, position, maxDistance)
	if !ok {
		return nil, false
	}
	return s.datums[index], true
}
