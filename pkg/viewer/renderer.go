package viewer

import (
	"image/color"
	"sort"

	"github.com/philipparndt/golidar/pkg/cloud"
)

// Canvas is the drawing surface a front end hands to the renderer.
// All coordinates are in pixels with the origin at the top left.
type Canvas interface {
	Line(x1, y1, x2, y2, width float64, col color.RGBA)
	FillRect(x, y, w, h float64, col color.RGBA)
	Text(s string, x, y float64, col color.RGBA)
	MeasureText(s string) (w, h float64)
	Point(x, y, size float64, col color.RGBA)
}

// GridConfig controls the reference grid and its axis labels. Size is
// a nominal extent carried in the config; layout derives the actual
// grid span from the cloud bounds.
type GridConfig struct {
	Show       bool
	Spacing    float64
	Size       int
	ShowLabels bool
	Policy     LabelPolicy
}

var sceneBackground = color.RGBA{R: 26, G: 26, B: 38, A: 255}

// Background returns the scene clear color shared by all front ends
func Background() color.RGBA {
	return sceneBackground
}

// Renderer projects a point cloud and its reference grid through a
// single camera onto a Canvas
type Renderer struct {
	Camera *Camera

	cloud     *cloud.Cloud
	pointSize float64
	colorMode ColorMode
	grid      GridConfig
}

func NewRenderer() *Renderer {
	return &Renderer{
		Camera:    NewCamera(),
		cloud:     cloud.New(),
		pointSize: 2,
		colorMode: ColorRGB,
		grid: GridConfig{
			Show:       true,
			Spacing:    1,
			Size:       10,
			ShowLabels: true,
			Policy:     ProjectedAnchors,
		},
	}
}

// SetPointCloud replaces the cloud and frames the camera on it
func (r *Renderer) SetPointCloud(points []cloud.Point) {
	r.cloud.SetPoints(points)
	r.Camera.FrameBox(r.cloud.Bounds())
}

// ClearPointCloud drops all points. The camera stays where it is.
func (r *Renderer) ClearPointCloud() {
	r.cloud.Clear()
}

func (r *Renderer) Cloud() *cloud.Cloud {
	return r.cloud
}

func (r *Renderer) PointSize() float64 {
	return r.pointSize
}

// SetPointSize clamps the size to a drawable minimum
func (r *Renderer) SetPointSize(size float64) {
	if size < 0.1 {
		size = 0.1
	}
	r.pointSize = size
}

func (r *Renderer) ColorMode() ColorMode {
	return r.colorMode
}

func (r *Renderer) SetColorMode(mode ColorMode) {
	r.colorMode = mode
}

func (r *Renderer) Grid() GridConfig {
	return r.grid
}

func (r *Renderer) SetGrid(cfg GridConfig) {
	r.grid = cfg
}

func (r *Renderer) ToggleGrid() {
	r.grid.Show = !r.grid.Show
}

func (r *Renderer) ToggleLabels() {
	r.grid.ShowLabels = !r.grid.ShowLabels
}

func (r *Renderer) TogglePolicy() {
	if r.grid.Policy == ProjectedAnchors {
		r.grid.Policy = FixedEdgeStrip
	} else {
		r.grid.Policy = ProjectedAnchors
	}
}

// SetGridSpacing ignores non-positive values
func (r *Renderer) SetGridSpacing(spacing float64) {
	if spacing <= 0 {
		return
	}
	r.grid.Spacing = spacing
}

type drawnPoint struct {
	x, y, depth float64
	col         color.RGBA
}

// Render draws the grid and the cloud for one frame. Points are
// painted back to front so nearer points cover farther ones.
func (r *Renderer) Render(c Canvas, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if r.cloud.Count() == 0 {
		return
	}

	view, proj, vp := r.Camera.Matrices(width, height)
	bounds := r.cloud.Bounds()

	if r.grid.Show {
		for _, seg := range GridLines(bounds, r.grid.Spacing) {
			from, okA := Project(seg.From, view, proj, vp)
			to, okB := Project(seg.To, view, proj, vp)
			if !okA || !okB {
				continue
			}
			c.Line(from.X, from.Y, to.X, to.Y, seg.Width, seg.Color)
		}
	}

	points := r.cloud.Points()
	drawn := make([]drawnPoint, 0, len(points))
	for i := range points {
		sp, ok := Project(points[i].Position, view, proj, vp)
		if !ok {
			continue
		}
		drawn = append(drawn, drawnPoint{
			x:     sp.X,
			y:     sp.Y,
			depth: sp.Depth,
			col:   PointColor(points[i], r.colorMode, bounds),
		})
	}
	sort.Slice(drawn, func(i, j int) bool {
		return drawn[i].depth > drawn[j].depth
	})
	for _, p := range drawn {
		c.Point(p.x, p.y, r.pointSize, p.col)
	}
}

// RenderAxisLabels draws grid value labels as a separate overlay
// pass, after Render, so text is never covered by points
func (r *Renderer) RenderAxisLabels(c Canvas, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if !r.grid.Show || !r.grid.ShowLabels || r.cloud.Count() == 0 {
		return
	}

	view, proj, vp := r.Camera.Matrices(width, height)
	layout := LayoutAxisLabels(r.cloud.Bounds(), r.grid.Spacing, r.grid.Policy,
		view, proj, vp, c.MeasureText)

	for _, t := range layout.Ticks {
		c.Line(t.X1, t.Y1, t.X2, t.Y2, 1, t.Color)
	}
	for _, l := range layout.Labels {
		if l.HasBackground {
			bg := l.Background
			c.FillRect(bg.X, bg.Y, bg.W, bg.H, labelBGColor)
		}
		c.Text(l.Text, l.X, l.Y, l.Color)
	}
}
