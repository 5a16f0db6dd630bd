package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/golidar/version"
)

// drawPanel draws the info overlay in the top-left corner
func (app *App) drawPanel() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)

	text := func(s string, size float32, col rl.Color) {
		rl.DrawTextEx(app.UI.font, s, rl.Vector2{X: 10, Y: y}, size, 1, col)
		y += lineHeight
	}

	cam := app.renderer.Camera
	grid := app.renderer.Grid()
	sum := app.Scene.summary

	text(fmt.Sprintf("golidar %s  %d fps", version.Version, rl.GetFPS()), fontSize16, rl.Yellow)

	text("Cloud:", fontSize16, rl.Yellow)
	text(fmt.Sprintf("  Points: %d", sum.Count), fontSize14, rl.White)
	if sum.Count > 0 {
		size := sum.Bounds.Size()
		text(fmt.Sprintf("  Size: %.1f x %.1f x %.1f", size.X, size.Y, size.Z), fontSize14, rl.White)
		text(fmt.Sprintf("  Centroid: (%.2f, %.2f, %.2f)",
			sum.Centroid.X, sum.Centroid.Y, sum.Centroid.Z), fontSize14, rl.White)
		text(fmt.Sprintf("  Intensity: %.3f +/- %.3f",
			sum.MeanIntensity, sum.StdDevIntensity), fontSize14, rl.White)
	}

	text("Camera:", fontSize16, rl.Yellow)
	text(fmt.Sprintf("  Yaw %.1f  Pitch %.1f  Dist %.1f",
		cam.Yaw, cam.Pitch, cam.Distance), fontSize14, rl.White)

	text("Display:", fontSize16, rl.Yellow)
	text(fmt.Sprintf("  Color: %s", app.renderer.ColorMode()), fontSize14, rl.White)
	text(fmt.Sprintf("  Point size: %.1f", app.renderer.PointSize()), fontSize14, rl.White)
	text(fmt.Sprintf("  Grid: %v  Spacing: %.1f", grid.Show, grid.Spacing), fontSize14, rl.White)
	text(fmt.Sprintf("  Labels: %v  Policy: %s", grid.ShowLabels, grid.Policy), fontSize14, rl.White)

	y += lineHeight / 2
	text("Drag: orbit  Shift/right-drag: pan  Wheel: zoom", fontSize14, rl.Gray)
	text("T/F/S/I: views  Home: reset  1-4: color  G/L/P: grid", fontSize14, rl.Gray)
	text("N: new cloud  C: clear  +/-: size  [/]: spacing  Tab: panel", fontSize14, rl.Gray)
}
