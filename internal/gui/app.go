// Package gui is the Fyne front end: a cloud view widget next to a
// control panel with display settings and cloud statistics.
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
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
	window   fyne.Window
	renderer *viewer.Renderer
	view     *CloudView

	seed       int64
	numPoints  int
	statsLabel *widget.Label
}

// Run opens the window and blocks until it is closed
func Run(opts Options) {
	a := fyneapp.New()
	w := a.NewWindow("golidar")

	renderer := viewer.NewRenderer()
	renderer.SetGridSpacing(opts.GridSpacing)
	renderer.SetPointSize(opts.PointSize)

	grid := renderer.Grid()
	grid.Policy = opts.LabelPolicy
	renderer.SetGrid(grid)

	appInstance := &App{
		window:     w,
		renderer:   renderer,
		seed:       opts.Seed,
		numPoints:  opts.Points,
		statsLabel: widget.NewLabel(""),
	}
	appInstance.view = NewCloudView(renderer)
	appInstance.regenerate()

	content := container.NewBorder(
		nil, // top
		nil, // bottom
		nil, // left
		appInstance.buildControlPanel(),
		appInstance.view,
	)
	w.SetContent(content)

	w.Resize(fyne.NewSize(1400, 900))
	w.ShowAndRun()
}

func (a *App) regenerate() {
	points := cloud.SampleScene(a.numPoints, a.seed)
	a.renderer.SetPointCloud(points)
	a.updateStats()
	a.view.Redraw()

	glog.Infof("generated %d points (seed %d)", len(points), a.seed)
}

func (a *App) updateStats() {
	sum := cloud.Summarize(a.renderer.Cloud())
	if sum.Count == 0 {
		a.statsLabel.SetText("Points: 0")
		return
	}

	size := sum.Bounds.Size()
	a.statsLabel.SetText(fmt.Sprintf(
		"Points: %d\nSize: %.1f x %.1f x %.1f\nCentroid: (%.2f, %.2f, %.2f)\nIntensity: %.3f +/- %.3f",
		sum.Count,
		size.X, size.Y, size.Z,
		sum.Centroid.X, sum.Centroid.Y, sum.Centroid.Z,
		sum.MeanIntensity, sum.StdDevIntensity,
	))
}

func (a *App) buildControlPanel() fyne.CanvasObject {
	grid := a.renderer.Grid()

	pointSizeSlider := widget.NewSlider(0.5, 10)
	pointSizeSlider.Step = 0.5
	pointSizeSlider.Value = a.renderer.PointSize()
	pointSizeSlider.OnChanged = func(v float64) {
		a.renderer.SetPointSize(v)
		a.view.Redraw()
	}

	spacingSlider := widget.NewSlider(0.5, 5)
	spacingSlider.Step = 0.5
	spacingSlider.Value = grid.Spacing
	spacingSlider.OnChanged = func(v float64) {
		a.renderer.SetGridSpacing(v)
		a.view.Redraw()
	}

	gridCheck := widget.NewCheck("Show Grid", func(checked bool) {
		cfg := a.renderer.Grid()
		cfg.Show = checked
		a.renderer.SetGrid(cfg)
		a.view.Redraw()
	})
	gridCheck.SetChecked(grid.Show)

	labelsCheck := widget.NewCheck("Show Axis Labels", func(checked bool) {
		cfg := a.renderer.Grid()
		cfg.ShowLabels = checked
		a.renderer.SetGrid(cfg)
		a.view.Redraw()
	})
	labelsCheck.SetChecked(grid.ShowLabels)

	colorSelect := widget.NewSelect(viewer.ColorModeNames, func(name string) {
		for i, n := range viewer.ColorModeNames {
			if n == name {
				a.renderer.SetColorMode(viewer.ColorMode(i))
			}
		}
		a.view.Redraw()
	})
	colorSelect.SetSelected(a.renderer.ColorMode().String())

	policySelect := widget.NewSelect(viewer.LabelPolicyNames, func(name string) {
		for i, n := range viewer.LabelPolicyNames {
			if n == name {
				cfg := a.renderer.Grid()
				cfg.Policy = viewer.LabelPolicy(i)
				a.renderer.SetGrid(cfg)
			}
		}
		a.view.Redraw()
	})
	policySelect.SetSelected(grid.Policy.String())

	generateButton := widget.NewButton("Generate New Cloud", func() {
		a.seed++
		a.regenerate()
	})

	clearButton := widget.NewButton("Clear Cloud", func() {
		a.renderer.ClearPointCloud()
		a.updateStats()
		a.view.Redraw()
	})

	resetButton := widget.NewButton("Reset View", func() {
		a.renderer.Camera.Reset()
		a.renderer.Camera.FrameBox(a.renderer.Cloud().Bounds())
		a.view.Redraw()
	})

	preset := func(name string, apply func()) *widget.Button {
		return widget.NewButton(name, func() {
			apply()
			a.view.Redraw()
		})
	}

	presets := container.NewGridWithColumns(2,
		preset("Top", a.renderer.Camera.SetTopView),
		preset("Front", a.renderer.Camera.SetFrontView),
		preset("Side", a.renderer.Camera.SetSideView),
		preset("Isometric", a.renderer.Camera.SetIsometricView),
	)

	instructions := widget.NewLabel(
		"Drag to orbit the view\n" +
			"Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		widget.NewLabel("Cloud Statistics:"),
		widget.NewSeparator(),
		a.statsLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		widget.NewLabel("Point Size"),
		pointSizeSlider,
		widget.NewLabel("Grid Spacing"),
		spacingSlider,
		gridCheck,
		labelsCheck,
		widget.NewLabel("Color Mode"),
		colorSelect,
		widget.NewLabel("Label Placement"),
		policySelect,
		widget.NewSeparator(),
		widget.NewLabel("Camera:"),
		presets,
		resetButton,
		widget.NewSeparator(),
		generateButton,
		clearButton,
		widget.NewSeparator(),
		instructions,
	)

	scroll := container.NewVScroll(panel)
	scroll.SetMinSize(fyne.NewSize(280, 0))
	return scroll
}
