package app

import (
	"context"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fieldscan/surveyor/internal/overlay"
)

// overlayState owns the label tracker and the last published snapshot. The
// snapshot is built on the main thread; the fallback goroutine only
// re-projects it, so it never touches the session or the live camera.
type overlayState struct {
	tracker *overlay.Tracker
	cancel  context.CancelFunc

	mu   sync.Mutex
	snap overlay.Snapshot
}

func newOverlayState(maxLabelDistance float64) *overlayState {
	return &overlayState{tracker: overlay.NewTracker(maxLabelDistance)}
}

func (o *overlayState) publish(snap overlay.Snapshot) {
	o.mu.Lock()
	o.snap = snap
	o.mu.Unlock()
}

func (o *overlayState) snapshot() overlay.Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snap
}

// publishOverlay snapshots the camera and anchor set and updates label
// placements for this frame
func (app *App) publishOverlay() {
	camCopy := *app.Camera.cam
	snap := overlay.Snapshot{
		Camera:  &camCopy,
		Width:   float64(rl.GetScreenWidth()),
		Height:  float64(rl.GetScreenHeight()),
		Anchors: overlay.SessionAnchors(app.Session),
	}
	app.Overlay.publish(snap)
	app.Overlay.tracker.Update(snap)
}
