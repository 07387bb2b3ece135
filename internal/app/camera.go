package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// syncCamera mirrors the viewer camera into the raylib camera used by
// BeginMode3D
func (app *App) syncCamera() {
	cam := app.Camera.cam
	app.Camera.rlCam = rl.Camera3D{
		Position:   toRaylib(cam.Position),
		Target:     toRaylib(cam.Target),
		Up:         toRaylib(cam.Up),
		Fovy:       float32(cam.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}

// resetCameraView restores the initial framing of the model
func (app *App) resetCameraView() {
	cam := app.Camera.cam
	cam.Distance = app.Camera.defaultDistance
	cam.RotationX = app.Camera.defaultRotationX
	cam.RotationY = app.Camera.defaultRotationY
	cam.Target = app.Model.center
	cam.UpdatePosition()
}

// setCameraView points the camera at the model center from a preset
// orientation
func (app *App) setCameraView(rotationX, rotationY float64) {
	cam := app.Camera.cam
	cam.RotationX = rotationX
	cam.RotationY = rotationY
	cam.Target = app.Model.center
	cam.UpdatePosition()
}

func (app *App) handleCameraKeys() {
	const straightDown = math.Pi/2 - 0.11 // Inside the gimbal clamp

	switch {
	case rl.IsKeyPressed(rl.KeyHome):
		app.resetCameraView()
	case rl.IsKeyPressed(rl.KeyT):
		app.setCameraView(straightDown, 0)
	case rl.IsKeyPressed(rl.KeyB):
		app.setCameraView(-straightDown, 0)
	case rl.IsKeyPressed(rl.KeyOne):
		app.setCameraView(0, 0)
	case rl.IsKeyPressed(rl.KeyTwo):
		app.setCameraView(0, math.Pi)
	case rl.IsKeyPressed(rl.KeyThree):
		app.setCameraView(0, -math.Pi/2)
	case rl.IsKeyPressed(rl.KeyFour):
		app.setCameraView(0, math.Pi/2)
	}
}
