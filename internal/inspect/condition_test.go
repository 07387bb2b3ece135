package inspect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscan/surveyor/pkg/geometry"
)

func TestConditionCreateStartsAtZero(t *testing.T) {
	s := NewConditionStore()
	a := s.Create(geometry.NewVector3(1, 2, 3))

	assert.Equal(t, 1, a.ID)
	require.Len(t, a.Scores, len(ConditionCategories))
	for _, c := range ConditionCategories {
		assert.Zero(t, a.Scores[c])
	}
}

func TestSetScoreValidatesRange(t *testing.T) {
	SetLogger(nil)
	defer SetLogger(nil)

	s := NewConditionStore()
	a := s.Create(geometry.Vector3{})

	assert.True(t, s.SetScore(a, CategoryCorrosion, 0))
	assert.True(t, s.SetScore(a, CategoryCorrosion, 6))
	assert.False(t, s.SetScore(a, CategoryCorrosion, 7))
	assert.False(t, s.SetScore(a, CategoryCorrosion, -1))
	assert.False(t, s.SetScore(a, ConditionCategory("paintwork"), 3))

	assert.Equal(t, 6, a.Scores[CategoryCorrosion], "rejected scores leave the value untouched")
}

func TestWorstCategory(t *testing.T) {
	s := NewConditionStore()
	a := s.Create(geometry.Vector3{})
	s.SetScore(a, CategoryCoating, 2)
	s.SetScore(a, CategoryLeakage, 5)
	s.SetScore(a, CategoryFouling, 3)

	category, score := a.Worst()
	assert.Equal(t, CategoryLeakage, category)
	assert.Equal(t, 5, score)
}

func TestSummarize(t *testing.T) {
	s := NewConditionStore()

	a1 := s.Create(geometry.Vector3{})
	s.SetScore(a1, CategoryCorrosion, 2)
	a2 := s.Create(geometry.Vector3{})
	s.SetScore(a2, CategoryCorrosion, 4)

	summary := s.Summarize()
	assert.Equal(t, 2, summary.Count)

	corrosion := summary.PerCategory[CategoryCorrosion]
	assert.InDelta(t, 3.0, corrosion.Mean, 1e-10)
	assert.InDelta(t, math.Sqrt2, corrosion.StdDev, 1e-10)
	assert.Equal(t, 4, corrosion.Max)

	assert.Equal(t, CategoryCorrosion, summary.WorstCategory)
	assert.Equal(t, 4, summary.WorstScore)
}

func TestSummarizeEmptyStore(t *testing.T) {
	s := NewConditionStore()
	summary := s.Summarize()
	assert.Zero(t, summary.Count)
	assert.Empty(t, summary.PerCategory)
}

func TestConditionFindNearest(t *testing.T) {
	s := NewConditionStore()
	near := s.Create(geometry.NewVector3(0, 0, 0))
	s.Create(geometry.NewVector3(10, 0, 0))

	got, ok := s.FindNearest(geometry.NewVector3(1, 0, 0), 5)
	require.True(t, ok)
	assert.Same(t, near, got)

	_, ok = s.FindNearest(geometry.NewVector3(100, 0, 0), 5)
	assert.False(t, ok)
}

func TestConditionDelete(t *testing.T) {
	s := NewConditionStore()
	a := s.Create(geometry.Vector3{})

	require.True(t, s.Delete(a.ID))
	assert.False(t, s.Delete(a.ID))
	assert.Zero(t, s.Count())
}

func TestAnnotationStoreFindNearestAndDelete(t *testing.T) {
	s := NewAnnotationStore()
	near := s.Create(geometry.NewVector3(0, 0, 0), TypeCrack, SeverityLow, "", ComplianceFlags{})
	s.Create(geometry.NewVector3(10, 0, 0), TypeDent, SeverityLow, "", ComplianceFlags{})

	got, ok := s.FindNearest(geometry.NewVector3(0.5, 0, 0), 2)
	require.True(t, ok)
	assert.Same(t, near, got)

	require.True(t, s.Delete(near.ID))
	assert.Equal(t, 1, s.Count())
}

func TestDatumStore(t *testing.T) {
	s := NewDatumStore()
	d := s.Create(geometry.NewVector3(0, 1, 0), "waterline aft", DatumWaterline)

	assert.Equal(t, 1, d.ID)
	assert.Equal(t, "waterline aft", d.Name)

	got, ok := s.FindNearest(geometry.NewVector3(0, 1.1, 0), 1)
	require.True(t, ok)
	assert.Same(t, d, got)

	require.True(t, s.Delete(d.ID))
	assert.Zero(t, s.Count())
}
