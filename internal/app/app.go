// Package app is the raylib front end: it owns the window, routes
// mouse and keyboard input to the camera, and draws each frame through
// the shared renderer.
package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"

	"github.com/philipparndt/golidar/pkg/cloud"
	"github.com/philipparndt/golidar/pkg/viewer"
)

// Options configures the viewer session
type Options struct {
	Points      int
	Seed        int64
	GridSpacing float64
	PointSize   float64
	LabelPolicy viewer.LabelPolicy
}

type App struct {
	renderer *viewer.Renderer

	Scene       SceneState
	Interaction InteractionState
	UI          UIState
}

// Run opens the window and drives the frame loop until close
func Run(opts Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(1600, 900, "golidar")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := &App{
		renderer: viewer.NewRenderer(),
		Scene: SceneState{
			numPoints: opts.Points,
			seed:      opts.Seed,
		},
		UI: UIState{
			showPanel: true,
			font:      rl.GetFontDefault(),
		},
	}
	app.renderer.SetGridSpacing(opts.GridSpacing)
	app.renderer.SetPointSize(opts.PointSize)

	grid := app.renderer.Grid()
	grid.Policy = opts.LabelPolicy
	app.renderer.SetGrid(grid)

	app.regenerate()

	bg := toRaylib(viewer.Background())

	for !rl.WindowShouldClose() {
		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(bg)

		width := rl.GetScreenWidth()
		height := rl.GetScreenHeight()

		canvas := &rlCanvas{font: app.UI.font}
		app.renderer.Render(canvas, width, height)
		app.renderer.RenderAxisLabels(canvas, width, height)

		if app.UI.showPanel {
			app.drawPanel()
		}

		rl.EndDrawing()
	}
}

// regenerate rebuilds the sample cloud, reframes the camera and
// refreshes the stats shown in the panel
func (app *App) regenerate() {
	points := cloud.SampleScene(app.Scene.numPoints, app.Scene.seed)
	app.renderer.SetPointCloud(points)
	app.Scene.summary = cloud.Summarize(app.renderer.Cloud())

	glog.Infof("generated %d points (seed %d), bounds %v",
		app.Scene.summary.Count, app.Scene.seed, app.Scene.summary.Bounds)
}

func (app *App) clearCloud() {
	app.renderer.ClearPointCloud()
	app.Scene.summary = cloud.Summarize(app.renderer.Cloud())
	glog.Info("point cloud cleared")
}
