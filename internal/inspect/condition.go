package inspect

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/fieldscan/surveyor/pkg/geometry"
)

// ConditionCategory is one of the six standardized condition scoring
// categories. Each is scored 0 (no findings) to 6 (total failure).
type ConditionCategory string

const (
	CategoryCracking    ConditionCategory = "cracking"
	CategoryCorrosion   ConditionCategory = "corrosion"
	CategoryCoating     ConditionCategory = "coating"
	CategoryDeformation ConditionCategory = "deformation"
	CategoryLeakage     ConditionCategory = "leakage"
	CategoryFouling     ConditionCategory = "fouling"
)

// MaxConditionScore is the top of the 0-6 scoring scale
const MaxConditionScore = 6

// ConditionCategories lists the categories in display order
var ConditionCategories = []ConditionCategory{
	CategoryCracking,
	CategoryCorrosion,
	CategoryCoating,
	CategoryDeformation,
	CategoryLeakage,
	CategoryFouling,
}

// ConditionAssessment is a position-anchored record of standardized condition
// scores across the six categories.
type ConditionAssessment struct {
	ID        int
	Position  geometry.Vector3
	Scores    map[ConditionCategory]int
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Worst returns the highest-scored (worst) category of the assessment
func (a *ConditionAssessment) Worst() (ConditionCategory, int) {
	worst := ConditionCategories[0]
	worstScore := a.Scores[worst]
	for _, c := range ConditionCategories[1:] {
		if a.Scores[c] > worstScore {
			worst = c
			worstScore = a.Scores[c]
		}
	}
	return worst, worstScore
}

// ConditionStore owns condition assessment entities
type ConditionStore struct {
	assessments []*ConditionAssessment
	nextID      int
	now         func() time.Time
}

// NewConditionStore creates an empty store
func NewConditionStore() *ConditionStore {
	return &ConditionStore{
		nextID: 1,
		now:    time.Now,
	}
}

// Create adds a new assessment at the given position with all categories
// scored 0
func (s *ConditionStore) Create(position geometry.Vector3) *ConditionAssessment {
	now := s.now()
	scores := make(map[ConditionCategory]int, len(ConditionCategories))
	for _, c := range ConditionCategories {
		scores[c] = 0
	}
	a := &ConditionAssessment{
		ID:        s.nextID,
		Position:  position,
		Scores:    scores,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	s.assessments = append(s.assessments, a)
	return a
}

// SetScore records a category score. Scores outside 0-6 are rejected with a
// logged warning.
func (s *ConditionStore) SetScore(a *ConditionAssessment, category ConditionCategory, score int) bool {
	if score < 0 || score > MaxConditionScore {
		Logf("assessment %d: score %d out of range for %s", a.ID, score, category)
		return false
	}
	if _, ok := a.Scores[category]; !ok {
		Logf("assessment %d: unknown category %q", a.ID, category)
		return false
	}
	a.Scores[category] = score
	a.UpdatedAt = s.now()
	return true
}

// Get returns the assessment with the given id, or nil
func (s *ConditionStore) Get(id int) *ConditionAssessment {
	for _, a := range s.assessments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// All returns the assessments in creation order
func (s *ConditionStore) All() []*ConditionAssessment {
	return s.assessments
}

// Count returns the number of assessments
func (s *ConditionStore) Count() int {
	return len(s.assessments)
}

// Delete removes an assessment
func (s *ConditionStore) Delete(id int) bool {
	for i, a := range s.assessments {
		if a.ID == id {
			s.assessments = append(s.assessments[:i], s.assessments[i+1:]...)
			return true
		}
	}
	return false
}

// FindNearest returns the assessment closest to position within maxDistance.
// Ties keep the assessment created first.
func (s *ConditionStore) FindNearest(position geometry.Vector3, maxDistance float64) (*ConditionAssessment, bool) {
	positions := make([]geometry.Vector3, len(s.assessments))
	for i, a := range s.assessments {
		positions[i] = a.Position
	}
	index, _, ok := nearestPoint(positions, position, maxDistance)
	if !ok {
		return nil, false
	}
	return s.assessments[index], true
}

// CategoryStats summarizes one scoring category across all assessments
type CategoryStats struct {
	Mean   float64
	StdDev float64
	Max    int
}

// ConditionSummary aggregates condition scores across a session
type ConditionSummary struct {
	Count         int
	PerCategory   map[ConditionCategory]CategoryStats
	WorstCategory ConditionCategory
	WorstScore    int
}

// Summarize computes per-category mean, standard deviation and maximum over
// all assessments. Returns a zero-count summary when the store is empty.
func (s *ConditionStore) Summarize() ConditionSummary {
	summary := ConditionSummary{
		Count:       len(s.assessments),
		PerCategory: make(map[ConditionCategory]CategoryStats, len(ConditionCategories)),
	}
	if len(s.assessments) == 0 {
		return summary
	}

	for _, c := range ConditionCategories {
		samples := make([]float64, 0, len(s.assessments))
		max := 0
		for _, a := range s.assessments {
			score := a.Scores[c]
			samples = append(samples, float64(score))
			if score > max {
				max = score
			}
		}

		stats := CategoryStats{
			Mean: stat.Mean(samples, nil),
			Max:  max,
		}
		if len(samples) > 1 {
			stats.StdDev = stat.StdDev(samples, nil)
		}
		summary.PerCategory[c] = stats

		if max > summary.WorstScore || summary.WorstCategory == "" {
			summary.WorstCategory = c
			summary.WorstScore = max
		}
	}
	return summary
}
