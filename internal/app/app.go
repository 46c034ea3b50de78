// Package app hosts the interactive 3D workstation: anatomy structures
// with plane-based clipping and volume slice planes, rendered with
// raylib.
package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goanatomy/internal/clipping"
	"github.com/philipparndt/goanatomy/internal/mpr"
	"github.com/philipparndt/goanatomy/internal/render"
	"github.com/philipparndt/goanatomy/pkg/config"
	"github.com/philipparndt/goanatomy/pkg/geometry"
	"github.com/philipparndt/goanatomy/pkg/volume"
)

// planeColors resolves the configured per-axis colors, falling back to
// the defaults when a color string does not parse
func (app *App) planeColors() [3]render.Color {
	defaults := config.DefaultConfig()
	hex := [3]string{app.Config.Colors.X, app.Config.Colors.Y, app.Config.Colors.Z}
	fallback := [3]string{defaults.Colors.X, defaults.Colors.Y, defaults.Colors.Z}

	var colors [3]render.Color
	for i := range hex {
		c, err := render.ParseHexColor(hex[i])
		if err != nil {
			fmt.Printf("Warning: %v, using default\n", err)
			c, _ = render.ParseHexColor(fallback[i])
		}
		colors[i] = c
	}
	return colors
}

// Run opens the workstation window and blocks until it is closed. The
// volume backs the slice planes; structures come from the STL files.
func Run(cfg *config.Config, structureFiles []string, vol *volume.Volume) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "GoAnatomy")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))
	rl.SetExitKey(0)

	app := &App{
		Config:         cfg,
		structureFiles: structureFiles,
	}
	app.UI.font = rl.GetFontDefault()
	app.Panel.hoveredSlider = -1
	app.Panel.activeSlider = -1

	structures := loadStructures(structureFiles)
	if len(structures) == 0 {
		return fmt.Errorf("no structures could be loaded")
	}

	scene := NewRaylibScene()
	defer scene.Close()

	app.Scene.scene = scene
	app.Scene.volume = vol
	app.Scene.bounds = clipping.NewBoundsCache(structures)
	app.Scene.engine = clipping.NewMeshClipEngine(scene, structures)
	app.Scene.visual = clipping.NewPlaneVisualizer(scene, app.planeColors(),
		cfg.Clipping.PlaneMargin, cfg.Clipping.PlaneOpacity)
	app.Scene.planes = clipping.NewPlaneManager(app.Scene.bounds, app.Scene.engine,
		app.Scene.visual, cfg.Clipping.DefaultPercent)
	app.Scene.mpr = mpr.NewPlaneRenderer(scene, vol, cfg.MPR.DefaultPercent)

	if err := app.setupFileWatcher(); err != nil {
		fmt.Printf("Warning: failed to set up file watching: %v\n", err)
		fmt.Println("Auto-reload will not be available")
	} else {
		defer app.FileWatch.meshWatcher.Close()
	}

	app.setupCamera()

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Reloads are flagged from the watcher goroutine and applied
		// here on the main thread
		if app.FileWatch.needsReload {
			app.FileWatch.needsReload = false
			app.reloadStructures()
		}

		app.handlePanelInput()
		app.handleCameraInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		scene.Draw()
		rl.EndMode3D()

		app.drawPanel()
		app.drawStatus()

		rl.EndDrawing()
	}

	return nil
}

// setupCamera frames the anatomy bounds with the default orbit view
func (app *App) setupCamera() {
	bounds := app.Scene.bounds.Bounds()
	var center geometry.Vector3
	maxDim := 100.0
	if !bounds.IsEmpty() {
		center = bounds.Center()
		size := bounds.Size()
		maxDim = math.Max(size.X, math.Max(size.Y, size.Z))
	}

	app.Scene.center = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.Scene.maxDim = float32(maxDim)

	app.Camera.target = app.Scene.center
	app.Camera.distance = float32(maxDim * 2.0)
	app.Camera.angleX = 0.3
	app.Camera.angleY = 0.3

	app.Camera.defaultDist = app.Camera.distance
	app.Camera.defaultAngleX = app.Camera.angleX
	app.Camera.defaultAngleY = app.Camera.angleY

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: app.Camera.distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// drawStatus lists the loaded structures in the top-left corner
func (app *App) drawStatus() {
	y := float32(10)
	lineHeight := float32(18)

	rl.DrawTextEx(app.UI.font, "Structures:", rl.Vector2{X: 10, Y: y}, 16, 1, rl.Yellow)
	y += lineHeight

	for _, structure := range app.Scene.engine.Structures() {
		text := fmt.Sprintf("  %s (%d triangles)", structure.Name, structure.Mesh.TriangleCount())
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: 10, Y: y}, 13, 1, rl.White)
		y += lineHeight
	}

	y += lineHeight / 2
	vol := app.Scene.volume
	volText := fmt.Sprintf("Volume: %dx%dx%d voxels", vol.Nx, vol.Ny, vol.Nz)
	rl.DrawTextEx(app.UI.font, volText, rl.Vector2{X: 10, Y: y}, 13, 1, rl.NewColor(100, 200, 255, 255))
}
