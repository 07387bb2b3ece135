// Package overlay keeps 2D screen placements for the 3D-anchored labels of
// the inspection session. The render loop calls Update once per frame; a
// fallback ticker re-syncs placements at a fixed interval so labels cannot
// drift when frames are skipped.
package overlay

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fieldscan/surveyor/pkg/geometry"
	"github.com/fieldscan/surveyor/pkg/viewer"
)

// DefaultMaxLabelDistance is the camera distance beyond which labels are
// hidden instead of drawn
const DefaultMaxLabelDistance = 100.0

// Anchor kinds
const (
	KindMeasurement = "measurement"
	KindAnnotation  = "annotation"
	KindDatum       = "datum"
	KindCondition   = "condition"
)

// Anchor ties a label to a world-space position
type Anchor struct {
	Kind  string
	ID    int
	World geometry.Vector3
	Label string
	Color string
}

// Placement is an anchor resolved to viewport coordinates. Visible is false
// when the anchor is behind the camera or beyond the culling distance.
type Placement struct {
	Anchor  Anchor
	X       float64
	Y       float64
	Depth   float64
	Visible bool
}

// Snapshot is the input of one tracker update: the camera state and the
// anchor set at a single instant.
type Snapshot struct {
	Camera  *viewer.Camera
	Width   float64
	Height  float64
	Anchors []Anchor
}

// Tracker projects anchors into the viewport and holds the latest
// placements. Update may be called from the render loop and from the
// fallback goroutine concurrently; placements are swapped under a mutex.
type Tracker struct {
	MaxDistance float64

	mu         sync.Mutex
	placements []Placement
}

// NewTracker creates a tracker with the given label culling distance. A zero
// or negative distance falls back to the default.
func NewTracker(maxDistance float64) *Tracker {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxLabelDistance
	}
	return &Tracker{MaxDistance: maxDistance}
}

// Update recomputes all placements from the snapshot. Calling it twice with
// the same snapshot yields the same placements.
func (t *Tracker) Update(snap Snapshot) {
	if snap.Camera == nil {
		return
	}

	placements := make([]Placement, 0, len(snap.Anchors))
	for _, a := range snap.Anchors {
		sp := snap.Camera.Project(a.World, snap.Width, snap.Height, t.MaxDistance)
		placements = append(placements, Placement{
			Anchor:  a,
			X:       sp.X,
			Y:       sp.Y,
			Depth:   sp.Depth,
			Visible: sp.Visible,
		})
	}

	// Far labels first so near labels draw on top
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].Depth > placements[j].Depth
	})

	t.mu.Lock()
	t.placements = placements
	t.mu.Unlock()
}

// Placements returns a copy of the latest placements in draw order
func (t *Tracker) Placements() []Placement {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Placement(nil), t.placements...)
}

// RunFallback periodically re-syncs placements from snapshot until the
// context is cancelled. It covers the case where the render loop stalls or
// skips frames; during normal rendering its updates are redundant but
// harmless.
func (t *Tracker) RunFallback(ctx context.Context, interval time.Duration, snapshot func() Snapshot) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Update(snapshot())
		}
	}
}
