package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fieldscan/surveyor/pkg/stl"
	"github.com/fieldscan/surveyor/pkg/watcher"
)

// loadModel parses an STL surface model from disk
func loadModel(filePath string) (*stl.Model, error) {
	if ext := strings.ToLower(filepath.Ext(filePath)); ext != ".stl" {
		return nil, fmt.Errorf("unsupported file type %q (expected .stl)", ext)
	}
	model, err := stl.Parse(filePath)
	if err != nil {
		return nil, fmt.Errorf("parsing STL file: %w", err)
	}
	return model, nil
}

// setupFileWatcher watches the source file so edits on disk reload the model
// without losing the inspection session
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}

	callback := func(changedFile string) {
		fmt.Printf("File changed: %s\n", changedFile)
		app.FileWatch.needsReload = true
	}
	if err := fw.Watch([]string{app.FileWatch.sourceFile}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("watching %s: %w", app.FileWatch.sourceFile, err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	fmt.Printf("Watching file for changes: %s\n", app.FileWatch.sourceFile)
	return nil
}

// reloadModel parses the changed file in the background. Mesh upload must
// happen on the main thread, so the parsed model is handed over through
// FileWatch and applied by applyLoadedModel.
func (app *App) reloadModel() {
	if app.FileWatch.isLoading {
		return
	}
	app.FileWatch.isLoading = true
	app.FileWatch.loadingStartTime = time.Now()
	fmt.Println("Reloading model...")

	go func() {
		model, err := loadModel(app.FileWatch.sourceFile)
		if err != nil {
			fmt.Printf("Error reloading model: %v\n", err)
			app.FileWatch.isLoading = false
			return
		}
		app.FileWatch.loadedModel = model
	}()
}

// applyLoadedModel swaps in a background-loaded model on the main thread.
// Camera orientation and the whole inspection session survive the swap; the
// camera target shifts with the model center.
func (app *App) applyLoadedModel() {
	model := app.FileWatch.loadedModel
	if model == nil {
		return
	}

	cam := app.Camera.cam
	savedDistance := cam.Distance
	savedRotX := cam.RotationX
	savedRotY := cam.RotationY
	savedTarget := cam.Target

	bbox := model.BoundingBox()
	newCenter := bbox.Center()
	centerDelta := newCenter.Sub(app.Model.center)

	oldMesh := app.Model.mesh
	app.Model.model = model
	app.Model.mesh = modelToMesh(model)
	app.Model.center = newCenter
	app.Model.size = maxDimension(bbox.Size())
	app.Model.vertices = model.Vertices()

	cam.Distance = savedDistance
	cam.RotationX = savedRotX
	cam.RotationY = savedRotY
	cam.Target = savedTarget.Add(centerDelta)
	cam.UpdatePosition()

	rl.UnloadMesh(&oldMesh)

	fmt.Printf("Model reloaded in %.2fs\n", time.Since(app.FileWatch.loadingStartTime).Seconds())
	app.FileWatch.loadedModel = nil
	app.FileWatch.isLoading = false
}
