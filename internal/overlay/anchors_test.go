package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscan/surveyor/internal/inspect"
	"github.com/fieldscan/surveyor/pkg/geometry"
)

func TestSessionAnchorsClosedMeasurement(t *testing.T) {
	s := inspect.NewSession(0)
	m := s.Measurements.Create()
	s.Measurements.AddPoint(m, geometry.NewVector3(0, 0, 0))
	s.Measurements.AddPoint(m, geometry.NewVector3(2, 0, 0))
	s.Measurements.AddPoint(m, geometry.NewVector3(2, 0, 2))
	s.Measurements.AddPoint(m, geometry.NewVector3(0, 0, 2))
	require.True(t, s.Measurements.Close(m))

	anchors := SessionAnchors(s)
	require.Len(t, anchors, 1)

	a := anchors[0]
	assert.Equal(t, KindMeasurement, a.Kind)
	assert.Equal(t, m.ID, a.ID)
	assert.Equal(t, "#1 area 4.00 perim 8.00", a.Label)
	assert.Equal(t, m.Color, a.Color)
	assert.Equal(t, geometry.NewVector3(1, 0, 1), a.World)
}

func TestSessionAnchorsOpenMeasurementShowsLength(t *testing.T) {
	s := inspect.NewSession(0)
	m := s.Measurements.Create()
	s.Measurements.AddPoint(m, geometry.NewVector3(0, 0, 0))
	s.Measurements.AddPoint(m, geometry.NewVector3(3, 0, 0))

	anchors := SessionAnchors(s)
	require.Len(t, anchors, 1)
	assert.Equal(t, "#1 length 3.00", anchors[0].Label)
	assert.Equal(t, geometry.NewVector3(1.5, 0, 0), anchors[0].World)
}

func TestSessionAnchorsSkipsEmptyMeasurement(t *testing.T) {
	s := inspect.NewSession(0)
	s.Measurements.Create()
	assert.Empty(t, SessionAnchors(s))
}

func TestSessionAnchorsAnnotationWithLink(t *testing.T) {
	s := inspect.NewSession(0)
	m := s.Measurements.Create()
	s.Measurements.AddPoint(m, geometry.NewVector3(0, 0, 0))
	s.Measurements.AddPoint(m, geometry.NewVector3(2, 0, 0))
	s.Measurements.AddPoint(m, geometry.NewVector3(2, 0, 2))
	s.Measurements.AddPoint(m, geometry.NewVector3(0, 0, 2))
	require.True(t, s.Measurements.Close(m))

	s.SaveAnnotation(geometry.NewVector3(1, 0, 1), inspect.TypeCrack, inspect.SeverityHigh, "", inspect.ComplianceFlags{})

	anchors := SessionAnchors(s)
	require.Len(t, anchors, 2)
	assert.Equal(t, KindAnnotation, anchors[1].Kind)
	assert.Equal(t, "crack (high) @m1", anchors[1].Label)
}

func TestSessionAnchorsDatumAndCondition(t *testing.T) {
	s := inspect.NewSession(0)
	s.Datums.Create(geometry.NewVector3(0, 1, 0), "frame 12", inspect.DatumFrame)
	c := s.Conditions.Create(geometry.NewVector3(1, 1, 1))

	anchors := SessionAnchors(s)
	require.Len(t, anchors, 2)
	assert.Equal(t, "frame 12", anchors[0].Label)
	assert.Equal(t, "condition unscored", anchors[1].Label)

	s.Conditions.SetScore(c, inspect.CategoryLeakage, 5)
	anchors = SessionAnchors(s)
	assert.Equal(t, "leakage 5/6", anchors[1].Label)
}
