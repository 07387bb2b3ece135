package app

import (
	"encoding/json"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fieldscan/surveyor/internal/inspect"
	"github.com/fieldscan/surveyor/internal/overlay"
)

func autoDatumName(kind string, n int) string {
	return fmt.Sprintf("%s %d", kind, n)
}

var datumKinds = []string{
	inspect.DatumBenchmark,
	inspect.DatumCenterline,
	inspect.DatumWaterline,
	inspect.DatumFrame,
}

// handleInput processes one frame of user input
func (app *App) handleInput() {
	app.handleModeKeys()
	app.handleViewKeys()
	app.handleToolKeys()

	if app.Session.Modes.Is(inspect.ModeView) {
		app.handleCameraKeys()
	} else if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}

	app.handleMouse()

	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		app.updateHoveredSurface()
	}
}

func (app *App) handleModeKeys() {
	modes := app.Session.Modes

	switch {
	case rl.IsKeyPressed(rl.KeyV):
		modes.Activate(inspect.ModeView)
	case rl.IsKeyPressed(rl.KeyM):
		modes.Activate(inspect.ModeMeasure)
	case rl.IsKeyPressed(rl.KeyN):
		modes.Activate(inspect.ModeAnnotate)
	case rl.IsKeyPressed(rl.KeyR):
		modes.Activate(inspect.ModeReference)
	case rl.IsKeyPressed(rl.KeyK):
		modes.Activate(inspect.ModeCondition)
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		app.cancelCurrentAction()
	}
}

// cancelCurrentAction handles Escape: an in-progress drag is abandoned
// first, then an open measurement is detached, then the tool drops back to
// view mode
func (app *App) cancelCurrentAction() {
	modes := app.Session.Modes

	if _, editing := modes.Editing(); editing {
		modes.EndEdit()
		return
	}
	if modes.Is(inspect.ModeMeasure) {
		if current := app.Session.Measurements.Current(); current != nil && !current.Closed {
			app.Session.Measurements.ClearCurrent()
			return
		}
	}
	modes.Reset()
	modes.Activate(inspect.ModeView)
}

func (app *App) handleViewKeys() {
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyO) {
		app.View.showOverlay = !app.View.showOverlay
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyE) {
		app.printSessionExport()
	}
}

// printSessionExport dumps the session's export records to the terminal as
// JSON, for piping into external report tooling
func (app *App) printSessionExport() {
	data, err := json.MarshalIndent(app.Session.Export(), "", "  ")
	if err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func (app *App) handleToolKeys() {
	session := app.Session

	switch session.Modes.Mode() {
	case inspect.ModeMeasure:
		if rl.IsKeyPressed(rl.KeyEnter) {
			if current := session.Measurements.Current(); current != nil {
				session.Measurements.Close(current)
			}
		}
		if rl.IsKeyPressed(rl.KeyBackspace) {
			if current := session.Measurements.Current(); current != nil && len(current.Points) > 0 {
				session.Measurements.DeletePoint(current, len(current.Points)-1)
			}
		}
		if rl.IsKeyPressed(rl.KeyD) {
			if current := session.Measurements.Current(); current != nil {
				session.DeleteMeasurement(current.ID)
			}
		}

	case inspect.ModeAnnotate:
		if rl.IsKeyPressed(rl.KeyTab) {
			app.Tool.annotationType = (app.Tool.annotationType + 1) % len(inspect.AnnotationTypes)
		}
		switch {
		case rl.IsKeyPressed(rl.KeyOne):
			app.Tool.severity = inspect.SeverityLow
		case rl.IsKeyPressed(rl.KeyTwo):
			app.Tool.severity = inspect.SeverityMedium
		case rl.IsKeyPressed(rl.KeyThree):
			app.Tool.severity = inspect.SeverityHigh
		case rl.IsKeyPressed(rl.KeyFour):
			app.Tool.severity = inspect.SeverityCritical
		}
		if rl.IsKeyPressed(rl.KeyJ) {
			app.Tool.flags.RequiresRepair = !app.Tool.flags.RequiresRepair
		}
		if rl.IsKeyPressed(rl.KeyL) {
			app.Tool.flags.SafetyCritical = !app.Tool.flags.SafetyCritical
		}
		if rl.IsKeyPressed(rl.KeyP) {
			app.Tool.flags.Documented = !app.Tool.flags.Documented
		}

	case inspect.ModeReference:
		if rl.IsKeyPressed(rl.KeyTab) {
			app.Tool.datumKind = (app.Tool.datumKind + 1) % len(datumKinds)
		}

	case inspect.ModeCondition:
		if rl.IsKeyPressed(rl.KeyTab) {
			app.Tool.category = (app.Tool.category + 1) % len(inspect.ConditionCategories)
		}
		app.handleScoreKeys()
	}
}

// handleScoreKeys applies 0-6 to the selected category of the selected
// assessment
func (app *App) handleScoreKeys() {
	assessment := app.Session.Conditions.Get(app.Tool.assessmentID)
	if assessment == nil {
		return
	}

	scoreKeys := []int32{rl.KeyZero, rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive, rl.KeySix}
	for score, key := range scoreKeys {
		if rl.IsKeyPressed(key) {
			category := inspect.ConditionCategories[app.Tool.category]
			app.Session.Conditions.SetScore(assessment, category, score)
		}
	}
}

func (app *App) handleMouse() {
	modes := app.Session.Modes

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = rl.GetMousePosition()
		app.Interaction.mouseMoved = false
		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		app.Interaction.isPanning = shiftPressed

		altPressed := rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)
		if altPressed && !shiftPressed && modes.Is(inspect.ModeMeasure) {
			app.beginPointDrag(app.Interaction.mouseDownPos)
		}
	}

	if edit, editing := modes.Editing(); editing {
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			app.dragPoint(edit)
		} else {
			modes.EndEdit()
		}
	} else if (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) ||
		rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			app.Camera.cam.Pan(float64(delta.X), float64(delta.Y))
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) && modes.CameraEnabled() {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			app.Camera.cam.Rotate(float64(-delta.Y)*0.01, float64(delta.X)*0.01)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		currentPos := rl.GetMousePosition()
		dragDistance := rl.Vector2Distance(app.Interaction.mouseDownPos, currentPos)
		if !app.Interaction.mouseMoved && !app.Interaction.isPanning && dragDistance < 5.0 {
			app.handleClick(currentPos)
		}
		app.Interaction.isPanning = false
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Camera.cam.Zoom(float64(-wheel) * 0.03)
	}
}

// beginPointDrag starts editing the measurement point under the mouse
func (app *App) beginPointDrag(mouse rl.Vector2) {
	ref, ok := app.pickMeasurementPoint(mouse)
	if !ok {
		return
	}
	if ref.Measurement.Locked {
		inspect.Logf("measurement %d is locked, point drag ignored", ref.Measurement.ID)
		return
	}
	app.Session.Modes.BeginEdit(ref.Measurement.ID, ref.Index)
}

// dragPoint moves the edited point to the surface vertex under the mouse
func (app *App) dragPoint(edit inspect.PointEdit) {
	m := app.Session.Measurements.Get(edit.MeasurementID)
	if m == nil {
		app.Session.Modes.EndEdit()
		return
	}
	point, ok := app.pickSurfacePoint(rl.GetMousePosition())
	if !ok {
		return
	}
	app.Session.Measurements.MovePoint(m, edit.PointIndex, point)
}

// handleClick dispatches a completed click to the active tool
func (app *App) handleClick(mouse rl.Vector2) {
	session := app.Session
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	switch session.Modes.Mode() {
	case inspect.ModeMeasure:
		if ctrlPressed {
			if ref, ok := app.pickMeasurementPoint(mouse); ok {
				session.Measurements.DeletePoint(ref.Measurement, ref.Index)
			}
			return
		}
		point, ok := app.pickSurfacePoint(mouse)
		if !ok {
			return
		}
		current := session.Measurements.Current()
		if current == nil || current.Closed || current.Locked {
			current = session.Measurements.Create()
		}
		session.Measurements.AddPoint(current, point)

	case inspect.ModeAnnotate:
		if ctrlPressed {
			if ref, ok := app.pickEntity(mouse); ok && ref.kind == overlay.KindAnnotation {
				session.DeleteAnnotation(ref.id)
			}
			return
		}
		if point, ok := app.pickSurfacePoint(mouse); ok {
			annotationType := inspect.AnnotationTypes[app.Tool.annotationType]
			session.SaveAnnotation(point, annotationType, app.Tool.severity, "", app.Tool.flags)
		}

	case inspect.ModeReference:
		if ctrlPressed {
			if ref, ok := app.pickEntity(mouse); ok && ref.kind == overlay.KindDatum {
				session.Datums.Delete(ref.id)
			}
			return
		}
		if point, ok := app.pickSurfacePoint(mouse); ok {
			kind := datumKinds[app.Tool.datumKind]
			name := autoDatumName(kind, session.Datums.Count()+1)
			session.Datums.Create(point, name, kind)
		}

	case inspect.ModeCondition:
		if ctrlPressed {
			if ref, ok := app.pickEntity(mouse); ok && ref.kind == overlay.KindCondition {
				session.Conditions.Delete(ref.id)
				if app.Tool.assessmentID == ref.id {
					app.Tool.assessmentID = 0
				}
			}
			return
		}
		if ref, ok := app.pickEntity(mouse); ok && ref.kind == overlay.KindCondition {
			app.Tool.assessmentID = ref.id
			return
		}
		if point, ok := app.pickSurfacePoint(mouse); ok {
			assessment := session.Conditions.Create(point)
			app.Tool.assessmentID = assessment.ID
		}
	}
}
