package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goanatomy/pkg/geometry"
)

const (
	panelWidth         = 280
	panelPadding       = 12
	sliderWidth        = 150
	sliderHeight       = 6
	sliderHandleRadius = 7
	rowHeight          = 28
	checkboxSize       = 14
)

// axisColor returns the configured color of an axis as a raylib color
func (app *App) axisColor(axis geometry.Axis) rl.Color {
	c := app.planeColors()[axis]
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// drawPanel draws the clipping and reconstruction control panel in the
// top-right corner and records the widget bounds for hit testing
func (app *App) drawPanel() {
	screenWidth := float32(rl.GetScreenWidth())
	panelX := screenWidth - panelWidth - 15
	panelY := float32(15)

	if app.Panel.collapsed {
		app.Panel.bounds = rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: 32}
		rl.DrawRectangleRounded(app.Panel.bounds, 0.15, 8, rl.NewColor(25, 30, 40, 230))
		rl.DrawRectangleRoundedLines(app.Panel.bounds, 0.15, 8, rl.NewColor(60, 80, 120, 255))
		rl.DrawTextEx(app.UI.font, "Planes [click to expand]",
			rl.Vector2{X: panelX + panelPadding, Y: panelY + 8}, 14, 1, rl.LightGray)
		return
	}

	panelHeight := float32(panelPadding*2 + rowHeight*9 + 20)
	app.Panel.bounds = rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: panelHeight}
	rl.DrawRectangleRounded(app.Panel.bounds, 0.1, 8, rl.NewColor(25, 30, 40, 230))
	rl.DrawRectangleRoundedLines(app.Panel.bounds, 0.1, 8, rl.NewColor(60, 80, 120, 255))

	y := panelY + panelPadding
	rl.DrawTextEx(app.UI.font, "Clipping", rl.Vector2{X: panelX + panelPadding, Y: y}, 16, 1, rl.Yellow)
	y += rowHeight

	for _, axis := range geometry.Axes {
		app.drawClipRow(axis, panelX+panelPadding, y)
		y += rowHeight
	}

	y += 10
	rl.DrawTextEx(app.UI.font, "Slice Planes", rl.Vector2{X: panelX + panelPadding, Y: y}, 16, 1, rl.Yellow)
	mprLabel := "off"
	mprColor := rl.Gray
	if app.Scene.mpr.Enabled() {
		mprLabel = "on"
		mprColor = rl.Green
	}
	rl.DrawTextEx(app.UI.font, mprLabel, rl.Vector2{X: panelX + panelWidth - panelPadding - 25, Y: y}, 14, 1, mprColor)
	y += rowHeight

	for _, axis := range geometry.Axes {
		app.drawMPRRow(axis, panelX+panelPadding, y)
		y += rowHeight
	}

	y += 4
	hint := "C: panel  M: slices  P: plane visuals  R: reset"
	rl.DrawTextEx(app.UI.font, hint, rl.Vector2{X: panelX + panelPadding, Y: y}, 10, 1, rl.Gray)
}

// drawClipRow draws one axis row: enable checkbox, axis label and the
// position slider
func (app *App) drawClipRow(axis geometry.Axis, x, y float32) {
	enabled := app.Scene.planes.Enabled(axis)

	boxBounds := rl.Rectangle{X: x, Y: y, Width: checkboxSize, Height: checkboxSize}
	border := app.axisColor(axis)
	rl.DrawRectangleLinesEx(boxBounds, 1, border)
	if enabled {
		inner := rl.Rectangle{X: x + 3, Y: y + 3, Width: checkboxSize - 6, Height: checkboxSize - 6}
		rl.DrawRectangleRec(inner, border)
	}

	label := axis.String()
	rl.DrawTextEx(app.UI.font, label, rl.Vector2{X: x + checkboxSize + 8, Y: y}, 13, 1, rl.LightGray)

	value := float32(app.Scene.planes.Position(axis))
	app.drawSlider(rl.Vector2{X: x + checkboxSize + 25, Y: y + 4}, value, int(axis), app.axisColor(axis), enabled)
}

// drawMPRRow draws one reconstruction plane row
func (app *App) drawMPRRow(axis geometry.Axis, x, y float32) {
	rl.DrawTextEx(app.UI.font, axis.AnatomicalName(),
		rl.Vector2{X: x, Y: y}, 11, 1, rl.LightGray)

	value := float32(app.Scene.mpr.Position(axis))
	app.drawSlider(rl.Vector2{X: x + checkboxSize + 25, Y: y + 4}, value, sliderMPRX+int(axis),
		app.axisColor(axis), app.Scene.mpr.Enabled())
}

// drawSlider renders a single 0..100 slider and records its hit bounds
func (app *App) drawSlider(pos rl.Vector2, value float32, sliderIndex int, color rl.Color, active bool) {
	trackX := pos.X + 20
	trackY := pos.Y + 2
	trackBounds := rl.Rectangle{X: trackX, Y: trackY, Width: sliderWidth, Height: sliderHeight}

	app.Panel.sliderBounds[sliderIndex] = rl.Rectangle{
		X:      trackX - sliderHandleRadius,
		Y:      trackY - sliderHandleRadius,
		Width:  sliderWidth + sliderHandleRadius*2,
		Height: sliderHeight + sliderHandleRadius*2,
	}

	trackBg := rl.NewColor(40, 45, 55, 255)
	if app.Panel.hoveredSlider == sliderIndex {
		trackBg = rl.NewColor(50, 55, 65, 255)
	}
	rl.DrawRectangleRounded(trackBounds, 0.5, 8, trackBg)

	if !active {
		color = rl.NewColor(90, 95, 105, 255)
	}

	handleX := trackX + value/100*sliderWidth

	fillColor := color
	fillColor.A = 100
	fillBounds := rl.Rectangle{X: trackX, Y: trackY, Width: handleX - trackX, Height: sliderHeight}
	rl.DrawRectangleRounded(fillBounds, 0.5, 8, fillColor)

	handleColor := color
	if app.Panel.activeSlider == sliderIndex && app.Panel.isDragging {
		handleColor = rl.White
	} else if app.Panel.hoveredSlider == sliderIndex {
		handleColor.R = uint8(math.Min(float64(handleColor.R)+30, 255))
		handleColor.G = uint8(math.Min(float64(handleColor.G)+30, 255))
		handleColor.B = uint8(math.Min(float64(handleColor.B)+30, 255))
	}

	handleY := trackY + sliderHeight/2
	rl.DrawCircleV(rl.Vector2{X: handleX, Y: handleY}, sliderHandleRadius, handleColor)
	rl.DrawCircleLines(int32(handleX), int32(handleY), sliderHandleRadius, rl.NewColor(255, 255, 255, 150))

	valueText := fmt.Sprintf("%.0f", value)
	rl.DrawTextEx(app.UI.font, valueText, rl.Vector2{X: trackX + sliderWidth + 10, Y: pos.Y - 2}, 11, 1, rl.LightGray)
}

// handlePanelInput handles clicks and drags on the control panel plus
// the keyboard shortcuts
func (app *App) handlePanelInput() {
	// Keyboard shortcuts work regardless of mouse position. Ctrl is
	// reserved for window shortcuts like Ctrl+C.
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if !ctrl {
		if rl.IsKeyPressed(rl.KeyM) {
			app.Scene.mpr.Toggle()
		}
		if rl.IsKeyPressed(rl.KeyP) {
			app.Scene.visual.SetVisible(!app.Scene.visual.Visible())
		}
		if rl.IsKeyPressed(rl.KeyR) {
			app.Scene.planes.Reset()
		}
		if rl.IsKeyPressed(rl.KeyC) {
			app.Panel.collapsed = !app.Panel.collapsed
		}
	}

	mousePos := rl.GetMousePosition()

	if app.Panel.collapsed {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) &&
			rl.CheckCollisionPointRec(mousePos, app.Panel.bounds) {
			app.Panel.collapsed = false
		}
		return
	}

	// Checkbox clicks toggle clipping per axis
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		panelX := app.Panel.bounds.X + panelPadding
		y := app.Panel.bounds.Y + panelPadding + rowHeight
		for _, axis := range geometry.Axes {
			boxBounds := rl.Rectangle{X: panelX, Y: y, Width: checkboxSize + 20, Height: checkboxSize}
			if rl.CheckCollisionPointRec(mousePos, boxBounds) {
				if app.Scene.planes.Enabled(axis) {
					app.Scene.planes.Disable(axis)
				} else {
					app.Scene.planes.Enable(axis)
				}
			}
			y += rowHeight
		}
	}

	// Hover tracking
	app.Panel.hoveredSlider = -1
	for i := 0; i < sliderCount; i++ {
		if rl.CheckCollisionPointRec(mousePos, app.Panel.sliderBounds[i]) {
			app.Panel.hoveredSlider = i
			break
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && app.Panel.hoveredSlider != -1 {
		app.Panel.activeSlider = app.Panel.hoveredSlider
		app.Panel.isDragging = true
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Panel.isDragging = false
		app.Panel.activeSlider = -1
	}

	if app.Panel.isDragging && app.Panel.activeSlider != -1 {
		bounds := app.Panel.sliderBounds[app.Panel.activeSlider]
		trackX := bounds.X + sliderHandleRadius
		trackWidth := bounds.Width - sliderHandleRadius*2
		normalized := (mousePos.X - trackX) / trackWidth
		normalized = float32(math.Max(0, math.Min(1, float64(normalized))))
		percent := float64(normalized * 100)

		switch idx := app.Panel.activeSlider; {
		case idx >= sliderClipX && idx <= sliderClipZ:
			app.Scene.planes.SetPosition(geometry.Axis(idx-sliderClipX), percent)
		case idx >= sliderMPRX && idx <= sliderMPRZ:
			app.Scene.mpr.SetPosition(geometry.Axis(idx-sliderMPRX), percent)
		}
	}
}
