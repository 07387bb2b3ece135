package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fieldscan/surveyor/internal/inspect"
	"github.com/fieldscan/surveyor/internal/overlay"
	"github.com/fieldscan/surveyor/pkg/geometry"
)

// project maps a world position into the current viewport
func (app *App) project(point geometry.Vector3) (x, y float64, visible bool) {
	sp := app.Camera.cam.Project(point,
		float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()),
		app.Settings.Overlay.MaxLabelDistance)
	return sp.X, sp.Y, sp.Visible
}

func screenDistance(x, y float64, mouse rl.Vector2) float64 {
	dx := x - float64(mouse.X)
	dy := y - float64(mouse.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// pickSurfacePoint returns the model vertex whose screen projection is
// nearest the mouse, within the point picking tolerance
func (app *App) pickSurfacePoint(mouse rl.Vector2) (geometry.Vector3, bool) {
	var best geometry.Vector3
	bestDist := app.Settings.Picking.PointTolerancePx
	found := false

	for _, v := range app.Model.vertices {
		x, y, visible := app.project(v)
		if !visible {
			continue
		}
		if d := screenDistance(x, y, mouse); d < bestDist {
			best = v
			bestDist = d
			found = true
		}
	}
	return best, found
}

// pickMeasurementPoint returns the measurement point nearest the mouse in
// screen space, within the point picking tolerance
func (app *App) pickMeasurementPoint(mouse rl.Vector2) (inspect.PointRef, bool) {
	var best inspect.PointRef
	bestDist := app.Settings.Picking.PointTolerancePx
	found := false

	for _, m := range app.Session.Measurements.All() {
		for i, p := range m.Points {
			x, y, visible := app.project(p)
			if !visible {
				continue
			}
			if d := screenDistance(x, y, mouse); d < bestDist {
				best = inspect.PointRef{Measurement: m, Index: i}
				bestDist = d
				found = true
			}
		}
	}
	return best, found
}

// entityRef identifies a point-anchored entity picked on screen
type entityRef struct {
	kind string
	id   int
}

// pickEntity returns the annotation, datum or assessment nearest the mouse
// within the entity picking tolerance
func (app *App) pickEntity(mouse rl.Vector2) (entityRef, bool) {
	var best entityRef
	bestDist := app.Settings.Picking.EntityTolerancePx
	found := false

	consider := func(kind string, id int, world geometry.Vector3) {
		x, y, visible := app.project(world)
		if !visible {
			return
		}
		if d := screenDistance(x, y, mouse); d < bestDist {
			best = entityRef{kind: kind, id: id}
			bestDist = d
			found = true
		}
	}

	for _, a := range app.Session.Annotations.All() {
		consider(overlay.KindAnnotation, a.ID, a.Position)
	}
	for _, d := range app.Session.Datums.All() {
		consider(overlay.KindDatum, d.ID, d.Position)
	}
	for _, c := range app.Session.Conditions.All() {
		consider(overlay.KindCondition, c.ID, c.Position)
	}
	return best, found
}

// updateHoveredSurface refreshes the surface point under the mouse and, in
// annotate mode, the live link candidate for it
func (app *App) updateHoveredSurface() {
	mouse := rl.GetMousePosition()
	point, ok := app.pickSurfacePoint(mouse)
	app.Interaction.hoveredSurface = point
	app.Interaction.hasHoveredSurface = ok

	if ok && app.Session.Modes.Is(inspect.ModeAnnotate) {
		app.Interaction.linkPreview = app.Session.FindLink(point)
	} else {
		app.Interaction.linkPreview = nil
	}
}
