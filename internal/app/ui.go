package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fieldscan/surveyor/internal/inspect"
)

// drawUI draws the HUD: mode bar, tool state, session totals and the help
// panel
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)

	session := app.Session
	mode := session.Modes.Mode()

	app.text(10, y, 16, rl.Yellow, "Mode: %s", mode)
	y += lineHeight

	switch mode {
	case inspect.ModeMeasure:
		if current := session.Measurements.Current(); current != nil {
			state := "open"
			if current.Closed {
				state = "closed"
			}
			app.text(10, y, 14, rl.White, "  #%d: %d points, %s", current.ID, len(current.Points), state)
		} else {
			app.text(10, y, 14, rl.Gray, "  click to start a measurement")
		}
		y += lineHeight
	case inspect.ModeAnnotate:
		app.text(10, y, 14, rl.White, "  %s, severity %s%s",
			inspect.AnnotationTypes[app.Tool.annotationType], app.Tool.severity, flagSuffix(app.Tool.flags))
		y += lineHeight
	case inspect.ModeReference:
		app.text(10, y, 14, rl.White, "  kind: %s", datumKinds[app.Tool.datumKind])
		y += lineHeight
	case inspect.ModeCondition:
		category := inspect.ConditionCategories[app.Tool.category]
		if a := session.Conditions.Get(app.Tool.assessmentID); a != nil {
			app.text(10, y, 14, rl.White, "  assessment %d, scoring %s (%d)", a.ID, category, a.Scores[category])
		} else {
			app.text(10, y, 14, rl.Gray, "  scoring %s, click to place an assessment", category)
		}
		y += lineHeight
	}
	y += lineHeight

	app.text(10, y, 16, rl.Yellow, "Session:")
	y += lineHeight
	app.text(10, y, 14, rl.White, "  measurements: %d  (perimeter %.2f, area %.2f)",
		session.Measurements.Count(), session.Measurements.TotalPerimeter(), session.Measurements.TotalArea())
	y += lineHeight
	app.text(10, y, 14, rl.White, "  annotations: %d  datums: %d  assessments: %d",
		session.Annotations.Count(), session.Datums.Count(), session.Conditions.Count())
	y += lineHeight

	if summary := session.Conditions.Summarize(); summary.Count > 0 && summary.WorstScore > 0 {
		app.text(10, y, 14, severityTextColor(summary.WorstScore), "  worst condition: %s %d/%d",
			summary.WorstCategory, summary.WorstScore, inspect.MaxConditionScore)
		y += lineHeight
	}

	app.drawMeasurePreview()
	app.drawLoadingIndicator()

	if app.View.showHelp {
		app.drawHelp()
	} else {
		screenHeight := float32(rl.GetScreenHeight())
		app.text(10, screenHeight-24, 12, rl.Gray, "H: help")
	}
}

func flagSuffix(flags inspect.ComplianceFlags) string {
	s := ""
	if flags.RequiresRepair {
		s += " [repair]"
	}
	if flags.SafetyCritical {
		s += " [safety]"
	}
	if flags.Documented {
		s += " [documented]"
	}
	return s
}

func severityTextColor(score int) rl.Color {
	if score >= 5 {
		return rl.NewColor(255, 80, 80, 255)
	}
	if score >= 3 {
		return rl.NewColor(255, 150, 50, 255)
	}
	return rl.White
}

// drawMeasurePreview shows the live distance from the last placed point to
// the hovered vertex in the bottom-right corner
func (app *App) drawMeasurePreview() {
	if !app.Session.Modes.Is(inspect.ModeMeasure) || !app.Interaction.hasHoveredSurface {
		return
	}
	current := app.Session.Measurements.Current()
	if current == nil || current.Closed || len(current.Points) == 0 {
		return
	}

	last := current.Points[len(current.Points)-1]
	previewText := fmt.Sprintf("%.2f", last.Distance(app.Interaction.hoveredSurface))

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())
	padding := float32(10)
	textSize := rl.MeasureTextEx(app.UI.font, previewText, 16, 1)
	boxWidth := textSize.X + padding*2
	boxHeight := textSize.Y + padding*2
	boxX := screenWidth - boxWidth - 20
	boxY := screenHeight - boxHeight - 20

	rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(0, 0, 0, 200))
	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.Yellow)
	rl.DrawTextEx(app.UI.font, previewText, rl.Vector2{X: boxX + padding, Y: boxY + padding}, 16, 1, rl.Yellow)
}

func (app *App) drawLoadingIndicator() {
	if !app.FileWatch.isLoading {
		return
	}

	elapsed := time.Since(app.FileWatch.loadingStartTime).Seconds()
	loadingText := fmt.Sprintf("Reloading... (%.1fs)", elapsed)

	screenWidth := float32(rl.GetScreenWidth())
	boxWidth := float32(230)
	boxHeight := float32(36)
	boxX := screenWidth - boxWidth - 20
	boxY := float32(20)

	rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.Yellow)
	textSize := rl.MeasureTextEx(app.UI.font, loadingText, 16, 1)
	rl.DrawTextEx(app.UI.font, loadingText,
		rl.Vector2{X: boxX + (boxWidth-textSize.X)/2, Y: boxY + (boxHeight-textSize.Y)/2}, 16, 1, rl.Yellow)
}

var helpLines = []string{
	"V/M/N/R/K    view / measure / annotate / reference / condition",
	"click        place point or entity (active tool)",
	"Ctrl+click   delete point or entity under cursor",
	"Alt+drag     move measurement point (measure)",
	"Enter        close current measurement into a polygon",
	"Backspace    remove last point of current measurement",
	"D            delete current measurement",
	"Tab          cycle type / datum kind / score category",
	"1-4          annotation severity   0-6  condition score",
	"J/L/P        toggle repair / safety / documented flags",
	"Esc          cancel drag, detach open measurement",
	"W/F/O        wireframe / fill / labels   Home  reset view",
	"E            print session export JSON to the terminal",
	"T/B/1-4      view presets (view mode)",
}

func (app *App) drawHelp() {
	lineHeight := float32(18)
	padding := float32(12)
	boxWidth := float32(520)
	boxHeight := float32(len(helpLines))*lineHeight + padding*2

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())
	boxX := (screenWidth - boxWidth) / 2
	boxY := (screenHeight - boxHeight) / 2

	rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(0, 0, 0, 220))
	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.Gray)

	y := boxY + padding
	for _, line := range helpLines {
		rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: boxX + padding, Y: y}, 14, 1, rl.White)
		y += lineHeight
	}
}

// text draws a formatted HUD line
func (app *App) text(x, y, size float32, color rl.Color, format string, args ...interface{}) {
	rl.DrawTextEx(app.UI.font, fmt.Sprintf(format, args...), rl.Vector2{X: x, Y: y}, size, 1, color)
}
