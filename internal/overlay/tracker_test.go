package overlay

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscan/surveyor/pkg/geometry"
	"github.com/fieldscan/surveyor/pkg/viewer"
)

func testCamera() *viewer.Camera {
	bbox := geometry.BoundingBox{
		Min: geometry.NewVector3(-1, -1, -1),
		Max: geometry.NewVector3(1, 1, 1),
	}
	return viewer.NewCamera(bbox)
}

func TestUpdatePlacesTargetAtViewportCenter(t *testing.T) {
	tracker := NewTracker(0)
	cam := testCamera()

	tracker.Update(Snapshot{
		Camera: cam,
		Width:  800,
		Height: 600,
		Anchors: []Anchor{
			{Kind: KindDatum, ID: 1, World: cam.Target, Label: "origin"},
		},
	})

	placements := tracker.Placements()
	require.Len(t, placements, 1)
	p := placements[0]
	assert.True(t, p.Visible)
	assert.InDelta(t, 400, p.X, 1e-6)
	assert.InDelta(t, 300, p.Y, 1e-6)
	assert.Equal(t, "origin", p.Anchor.Label)
}

func TestUpdateIsIdempotent(t *testing.T) {
	tracker := NewTracker(0)
	snap := Snapshot{
		Camera:  testCamera(),
		Width:   800,
		Height:  600,
		Anchors: []Anchor{{ID: 1, World: geometry.NewVector3(0.5, 0, 0)}},
	}

	tracker.Update(snap)
	first := tracker.Placements()
	tracker.Update(snap)
	second := tracker.Placements()

	assert.Equal(t, first, second)
}

func TestUpdateSortsFarLabelsFirst(t *testing.T) {
	tracker := NewTracker(0)
	cam := testCamera()

	// The camera sits away from the target; an anchor behind the target is
	// farther than one in front of it
	forward := cam.Target.Sub(cam.Position).Normalize()
	near := cam.Target.Sub(forward.Mul(1))
	far := cam.Target.Add(forward.Mul(1))

	tracker.Update(Snapshot{
		Camera: cam,
		Width:  800,
		Height: 600,
		Anchors: []Anchor{
			{ID: 1, World: near, Label: "near"},
			{ID: 2, World: far, Label: "far"},
		},
	})

	placements := tracker.Placements()
	require.Len(t, placements, 2)
	assert.Equal(t, "far", placements[0].Anchor.Label)
	assert.Equal(t, "near", placements[1].Anchor.Label)
	assert.Greater(t, placements[0].Depth, placements[1].Depth)
}

func TestUpdateCullsDistantAnchors(t *testing.T) {
	tracker := NewTracker(10)
	cam := testCamera()

	tracker.Update(Snapshot{
		Camera:  cam,
		Width:   800,
		Height:  600,
		Anchors: []Anchor{{ID: 1, World: geometry.NewVector3(500, 0, 0)}},
	})

	placements := tracker.Placements()
	require.Len(t, placements, 1)
	assert.False(t, placements[0].Visible)
}

func TestUpdateWithoutCameraIsNoOp(t *testing.T) {
	tracker := NewTracker(0)
	tracker.Update(Snapshot{Anchors: []Anchor{{ID: 1}}})
	assert.Empty(t, tracker.Placements())
}

func TestPlacementsReturnsCopy(t *testing.T) {
	tracker := NewTracker(0)
	tracker.Update(Snapshot{
		Camera:  testCamera(),
		Width:   800,
		Height:  600,
		Anchors: []Anchor{{ID: 1, Label: "a"}},
	})

	first := tracker.Placements()
	first[0].Anchor.Label = "mutated"

	assert.Equal(t, "a", tracker.Placements()[0].Anchor.Label)
}

func TestRunFallbackStopsOnCancel(t *testing.T) {
	tracker := NewTracker(0)
	cam := testCamera()

	var calls atomic.Int32
	snapshot := func() Snapshot {
		calls.Add(1)
		return Snapshot{
			Camera:  cam,
			Width:   800,
			Height:  600,
			Anchors: []Anchor{{ID: 1, World: cam.Target}},
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tracker.RunFallback(ctx, time.Millisecond, snapshot)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() > 0 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("fallback goroutine did not stop on cancel")
	}
	assert.NotEmpty(t, tracker.Placements())
}
