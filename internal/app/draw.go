package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fieldscan/surveyor/internal/inspect"
)

func severityColor(s inspect.Severity) rl.Color {
	switch s {
	case inspect.SeverityLow:
		return rl.NewColor(255, 214, 77, 255)
	case inspect.SeverityMedium:
		return rl.NewColor(255, 150, 50, 255)
	case inspect.SeverityHigh:
		return rl.NewColor(255, 80, 80, 255)
	case inspect.SeverityCritical:
		return rl.NewColor(200, 30, 220, 255)
	}
	return rl.White
}

// drawEntities3D renders all session entities inside the 3D pass
func (app *App) drawEntities3D() {
	markerRadius := float32(app.Model.size * 0.006)
	if markerRadius <= 0 {
		markerRadius = 0.05
	}

	app.drawMeasurements(markerRadius)
	app.drawAnnotations(markerRadius)
	app.drawDatums(markerRadius)
	app.drawConditions(markerRadius)

	if app.Interaction.hasHoveredSurface && !app.Session.Modes.Is(inspect.ModeView) {
		rl.DrawSphereWires(toRaylib(app.Interaction.hoveredSurface), markerRadius*1.4, 8, 8, rl.Yellow)
	}
}

func (app *App) drawMeasurements(markerRadius float32) {
	session := app.Session
	current := session.Measurements.Current()

	for _, m := range session.Measurements.All() {
		color := hexToColor(m.Color)
		if m.Locked {
			color.A = 170
		}

		for _, seg := range m.Segments() {
			rl.DrawLine3D(toRaylib(seg.Start), toRaylib(seg.End), color)
		}
		for _, p := range m.Points {
			rl.DrawSphere(toRaylib(p), markerRadius, color)
		}
	}

	// Rubber-band preview from the open measurement to the hovered vertex
	if session.Modes.Is(inspect.ModeMeasure) && app.Interaction.hasHoveredSurface &&
		current != nil && !current.Closed && len(current.Points) > 0 {
		last := current.Points[len(current.Points)-1]
		rl.DrawLine3D(toRaylib(last), toRaylib(app.Interaction.hoveredSurface), rl.Yellow)
	}
}

func (app *App) drawAnnotations(markerRadius float32) {
	for _, a := range app.Session.Annotations.All() {
		rl.DrawSphere(toRaylib(a.Position), markerRadius*1.2, severityColor(a.Severity))

		// Linked annotations show their association
		if a.Link != nil {
			if m := app.Session.Measurements.Get(a.Link.MeasurementID); m != nil && len(m.Points) > 0 {
				rl.DrawLine3D(toRaylib(a.Position), toRaylib(m.Centroid()), rl.NewColor(255, 255, 255, 90))
			}
		}
	}

	// Live link candidate while placing an annotation
	if preview := app.Interaction.linkPreview; preview != nil && app.Interaction.hasHoveredSurface {
		if m := app.Session.Measurements.Get(preview.MeasurementID); m != nil && len(m.Points) > 0 {
			rl.DrawLine3D(toRaylib(app.Interaction.hoveredSurface), toRaylib(m.Centroid()), rl.Green)
		}
	}
}

func (app *App) drawDatums(markerRadius float32) {
	size := markerRadius * 2
	for _, d := range app.Session.Datums.All() {
		rl.DrawCube(toRaylib(d.Position), size, size, size, rl.NewColor(77, 166, 255, 255))
	}
}

func (app *App) drawConditions(markerRadius float32) {
	for _, c := range app.Session.Conditions.All() {
		color := rl.NewColor(255, 184, 77, 255)
		if c.ID == app.Tool.assessmentID && app.Session.Modes.Is(inspect.ModeCondition) {
			color = rl.White
		}
		rl.DrawSphereWires(toRaylib(c.Position), markerRadius*1.3, 6, 6, color)
	}
}

// drawOverlayLabels renders the tracked screen-space labels, far to near
func (app *App) drawOverlayLabels() {
	const fontSize = 14
	const padding = 3

	for _, p := range app.Overlay.tracker.Placements() {
		if !p.Visible {
			continue
		}

		textSize := rl.MeasureTextEx(app.UI.font, p.Anchor.Label, fontSize, 1)
		x := int32(p.X) - int32(textSize.X)/2
		y := int32(p.Y) - int32(textSize.Y) - 8 // Above the marker

		rl.DrawRectangle(x-padding, y-padding, int32(textSize.X)+padding*2, int32(textSize.Y)+padding*2,
			rl.NewColor(0, 0, 0, 170))
		rl.DrawTextEx(app.UI.font, p.Anchor.Label,
			rl.Vector2{X: float32(x), Y: float32(y)}, fontSize, 1, hexToColor(p.Anchor.Color))
	}
}
