package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"

	"github.com/philipparndt/golidar/pkg/viewer"
)

// handleInput processes one frame of mouse and keyboard input
func (app *App) handleInput() {
	app.Interaction.lastMousePos = rl.GetMousePosition()

	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.renderer.Camera.Reset()
		app.renderer.Camera.FrameBox(app.renderer.Cloud().Bounds())
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.renderer.Camera.SetTopView()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.renderer.Camera.SetFrontView()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		app.renderer.Camera.SetSideView()
	}
	if rl.IsKeyPressed(rl.KeyI) {
		app.renderer.Camera.SetIsometricView()
	}

	// Display toggles
	if rl.IsKeyPressed(rl.KeyG) {
		app.renderer.ToggleGrid()
	}
	if rl.IsKeyPressed(rl.KeyL) {
		app.renderer.ToggleLabels()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		app.renderer.TogglePolicy()
		glog.Infof("label policy: %s", app.renderer.Grid().Policy)
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		app.UI.showPanel = !app.UI.showPanel
	}

	// Color modes
	if rl.IsKeyPressed(rl.KeyOne) {
		app.renderer.SetColorMode(viewer.ColorRGB)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.renderer.SetColorMode(viewer.ColorHeight)
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.renderer.SetColorMode(viewer.ColorIntensity)
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		app.renderer.SetColorMode(viewer.ColorUniform)
	}

	// Point size and grid spacing
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		app.renderer.SetPointSize(app.renderer.PointSize() + 0.5)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		app.renderer.SetPointSize(app.renderer.PointSize() - 0.5)
	}
	if rl.IsKeyPressed(rl.KeyLeftBracket) {
		app.renderer.SetGridSpacing(app.renderer.Grid().Spacing - 0.5)
	}
	if rl.IsKeyPressed(rl.KeyRightBracket) {
		app.renderer.SetGridSpacing(app.renderer.Grid().Spacing + 0.5)
	}

	// Cloud lifecycle
	if rl.IsKeyPressed(rl.KeyN) {
		app.Scene.seed++
		app.regenerate()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		app.clearCloud()
	}

	// Pan with Shift + left drag, right drag, or middle drag
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		app.Interaction.isPanning = shiftPressed
	}

	panning := (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) ||
		rl.IsMouseButtonDown(rl.MouseRightButton) ||
		rl.IsMouseButtonDown(rl.MouseMiddleButton)

	if panning {
		delta := rl.GetMouseDelta()
		app.renderer.Camera.Pan(float64(delta.X), float64(delta.Y))
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		app.renderer.Camera.Orbit(float64(delta.X)*0.5, -float64(delta.Y)*0.5)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.renderer.Camera.Zoom(float64(wheel))
	}
}
