package app

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fieldscan/surveyor/internal/conf"
	"github.com/fieldscan/surveyor/internal/inspect"
	"github.com/fieldscan/surveyor/pkg/stl"
	"github.com/fieldscan/surveyor/pkg/viewer"
)

// Run opens the viewer window on the given STL file and blocks until the
// window is closed.
func Run(sourceFile string, settings *conf.Settings) error {
	model, err := loadModel(sourceFile)
	if err != nil {
		return fmt.Errorf("loading model: %w", err)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(settings.Window.Width), int32(settings.Window.Height), settings.Window.Title)
	rl.SetTargetFPS(int32(settings.Window.FPS))
	rl.SetExitKey(0) // Escape cancels tool actions instead of closing the window

	session := inspect.NewSession(settings.Linking.ProximityThreshold)
	session.Measurements.SetPalette(settings.Palette)

	app := &App{
		Settings: settings,
		Session:  session,
		Overlay:  newOverlayState(settings.Overlay.MaxLabelDistance),
		View: ViewSettings{
			showWireframe: true,
			showFilled:    true,
			showOverlay:   true,
		},
		Tool: ToolState{severity: inspect.SeverityLow},
		FileWatch: FileWatchState{
			sourceFile: sourceFile,
		},
	}
	app.UI.font = rl.GetFontDefault()

	app.installModel(model)

	if settings.Watch {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: file watching unavailable: %v\n", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	// Fallback label sync keeps the overlay consistent when frames are
	// skipped (window hidden, long reload)
	ctx, cancel := context.WithCancel(context.Background())
	app.Overlay.cancel = cancel
	go app.Overlay.tracker.RunFallback(ctx, settings.Overlay.FallbackInterval, app.Overlay.snapshot)
	defer cancel()

	for !rl.WindowShouldClose() {
		if app.FileWatch.needsReload && !app.FileWatch.isLoading {
			app.FileWatch.needsReload = false
			app.reloadModel()
		}
		app.applyLoadedModel()

		app.handleInput()
		app.syncCamera()
		app.publishOverlay()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.rlCam)
		if app.View.showFilled {
			rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		app.drawEntities3D()
		rl.EndMode3D()

		if app.View.showOverlay {
			app.drawOverlayLabels()
		}
		app.drawUI()

		rl.EndDrawing()
	}

	rl.UnloadMesh(&app.Model.mesh)
	rl.CloseWindow()
	return nil
}

// installModel swaps in a freshly loaded model and points the camera at it
func (app *App) installModel(model *stl.Model) {
	bbox := model.BoundingBox()
	size := bbox.Size()

	app.Model.model = model
	app.Model.mesh = modelToMesh(model)
	app.Model.material = rl.LoadMaterialDefault()
	app.Model.center = bbox.Center()
	app.Model.size = maxDimension(size)
	app.Model.vertices = model.Vertices()

	cam := viewer.NewCamera(bbox)
	app.Camera.cam = cam
	app.Camera.defaultDistance = cam.Distance
	app.Camera.defaultRotationX = cam.RotationX
	app.Camera.defaultRotationY = cam.RotationY
	app.syncCamera()
}
