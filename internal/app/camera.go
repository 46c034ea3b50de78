package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Scene.center
}

// updateCamera recomputes the camera position from the orbit angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// doPan moves the camera target across the view plane
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	panSpeed := app.Camera.distance * 0.001

	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	app.Camera.target = rl.Vector3Add(app.Camera.target, rightMove)
	app.Camera.target = rl.Vector3Add(app.Camera.target, upMove)
}

// handleCameraInput applies orbit, pan and zoom from the mouse. Input
// over the control panel is ignored so slider drags never move the
// camera.
func (app *App) handleCameraInput() {
	mousePos := rl.GetMousePosition()
	overPanel := rl.CheckCollisionPointRec(mousePos, app.Panel.bounds)

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 && !overPanel {
		app.Camera.distance -= wheel * app.Camera.distance * 0.1
		if app.Camera.distance < app.Scene.maxDim*0.1 {
			app.Camera.distance = app.Scene.maxDim * 0.1
		}
	}

	if rl.IsMouseButtonDown(rl.MouseMiddleButton) ||
		(rl.IsMouseButtonDown(rl.MouseLeftButton) && rl.IsKeyDown(rl.KeyLeftShift)) {
		if !app.Interaction.isPanning {
			app.Interaction.isPanning = true
			app.Interaction.lastMousePos = mousePos
		}
		delta := rl.Vector2{
			X: mousePos.X - app.Interaction.lastMousePos.X,
			Y: mousePos.Y - app.Interaction.lastMousePos.Y,
		}
		app.doPan(delta)
		app.Interaction.lastMousePos = mousePos
		return
	}
	app.Interaction.isPanning = false

	if rl.IsMouseButtonDown(rl.MouseRightButton) ||
		(rl.IsMouseButtonDown(rl.MouseLeftButton) && !overPanel && !app.Panel.isDragging) {
		delta := rl.GetMouseDelta()
		app.Camera.angleY -= delta.X * 0.01
		app.Camera.angleX += delta.Y * 0.01

		// Clamp pitch short of the poles
		limit := float32(math.Pi/2 - 0.01)
		if app.Camera.angleX > limit {
			app.Camera.angleX = limit
		}
		if app.Camera.angleX < -limit {
			app.Camera.angleX = -limit
		}
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
}
