package viewer

import (
	"image/color"
	"testing"

	"github.com/philipparndt/golidar/pkg/cloud"
	"github.com/philipparndt/golidar/pkg/geometry"
)

type canvasOp struct {
	kind string
	x, y float64
	col  color.RGBA
}

// fakeCanvas records draw calls in order
type fakeCanvas struct {
	ops []canvasOp
}

func (c *fakeCanvas) Line(x1, y1, x2, y2, width float64, col color.RGBA) {
	c.ops = append(c.ops, canvasOp{kind: "line", x: x1, y: y1, col: col})
}

func (c *fakeCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	c.ops = append(c.ops, canvasOp{kind: "rect", x: x, y: y, col: col})
}

func (c *fakeCanvas) Text(s string, x, y float64, col color.RGBA) {
	c.ops = append(c.ops, canvasOp{kind: "text", x: x, y: y, col: col})
}

func (c *fakeCanvas) MeasureText(s string) (float64, float64) {
	return float64(len(s)) * 7, 12
}

func (c *fakeCanvas) Point(x, y, size float64, col color.RGBA) {
	c.ops = append(c.ops, canvasOp{kind: "point", x: x, y: y, col: col})
}

func (c *fakeCanvas) count(kind string) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func cubePoints() []cloud.Point {
	return []cloud.Point{
		cloud.NewPoint(0, 0, 0, 1, 0, 0, 0.1),
		cloud.NewPoint(10, 0, 0, 0, 1, 0, 0.2),
		cloud.NewPoint(0, 10, 0, 0, 0, 1, 0.3),
		cloud.NewPoint(0, 0, 10, 1, 1, 0, 0.4),
		cloud.NewPoint(10, 10, 10, 1, 1, 1, 0.5),
	}
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer()

	if r.PointSize() != 2 {
		t.Errorf("PointSize = %v, want 2", r.PointSize())
	}
	if r.ColorMode() != ColorRGB {
		t.Errorf("ColorMode = %v, want ColorRGB", r.ColorMode())
	}

	grid := r.Grid()
	if !grid.Show || !grid.ShowLabels {
		t.Errorf("grid defaults = %+v, want grid and labels on", grid)
	}
	if grid.Spacing != 1 {
		t.Errorf("Spacing = %v, want 1", grid.Spacing)
	}
	if grid.Policy != ProjectedAnchors {
		t.Errorf("Policy = %v, want ProjectedAnchors", grid.Policy)
	}
}

func TestRenderEmptyCloudDrawsNothing(t *testing.T) {
	r := NewRenderer()
	c := &fakeCanvas{}

	r.Render(c, 800, 600)
	r.RenderAxisLabels(c, 800, 600)

	if len(c.ops) != 0 {
		t.Errorf("empty cloud produced %d draw calls", len(c.ops))
	}
}

func TestRenderDegenerateViewportDrawsNothing(t *testing.T) {
	r := NewRenderer()
	r.SetPointCloud(cubePoints())
	c := &fakeCanvas{}

	r.Render(c, 0, 600)
	r.Render(c, 800, -1)

	if len(c.ops) != 0 {
		t.Errorf("degenerate viewport produced %d draw calls", len(c.ops))
	}
}

func TestSetPointCloudFramesCamera(t *testing.T) {
	r := NewRenderer()
	r.SetPointCloud(cubePoints())

	if r.Camera.Target != geometry.NewVector3(5, 5, 5) {
		t.Errorf("Target = %v, want cloud center", r.Camera.Target)
	}
	if !approx(r.Camera.Distance, 20) {
		t.Errorf("Distance = %v, want 20", r.Camera.Distance)
	}
}

func TestRenderDrawsGridBeforePoints(t *testing.T) {
	r := NewRenderer()
	r.SetPointCloud(cubePoints())
	c := &fakeCanvas{}

	r.Render(c, 800, 600)

	if c.count("line") == 0 {
		t.Fatal("no grid lines drawn")
	}
	if got := c.count("point"); got != len(cubePoints()) {
		t.Fatalf("drew %d points, want %d", got, len(cubePoints()))
	}

	lastLine, firstPoint := -1, -1
	for i, op := range c.ops {
		if op.kind == "line" {
			lastLine = i
		}
		if op.kind == "point" && firstPoint < 0 {
			firstPoint = i
		}
	}
	if lastLine > firstPoint {
		t.Error("grid lines interleaved with points")
	}
}

func TestRenderGridToggle(t *testing.T) {
	r := NewRenderer()
	r.SetPointCloud(cubePoints())
	r.ToggleGrid()
	c := &fakeCanvas{}

	r.Render(c, 800, 600)

	if c.count("line") != 0 {
		t.Errorf("grid off but %d lines drawn", c.count("line"))
	}
	if c.count("point") == 0 {
		t.Error("points missing with grid off")
	}
}

func TestRenderPointsBackToFront(t *testing.T) {
	r := NewRenderer()
	r.SetPointCloud([]cloud.Point{
		cloud.NewPoint(0, 0, 2, 0, 1, 0, 0),  // near, green
		cloud.NewPoint(0, 0, -2, 1, 0, 0, 0), // far, red
	})
	r.Camera.SetFrontView()
	c := &fakeCanvas{}

	r.Render(c, 800, 600)

	var points []canvasOp
	for _, op := range c.ops {
		if op.kind == "point" {
			points = append(points, op)
		}
	}
	if len(points) != 2 {
		t.Fatalf("drew %d points, want 2", len(points))
	}
	if points[0].col.R != 255 {
		t.Error("far point not drawn first")
	}
	if points[1].col.G != 255 {
		t.Error("near point not drawn last")
	}
}

func TestRenderAxisLabels(t *testing.T) {
	r := NewRenderer()
	r.SetPointCloud(cubePoints())
	c := &fakeCanvas{}

	r.RenderAxisLabels(c, 800, 600)

	if c.count("text") == 0 {
		t.Fatal("no labels drawn")
	}
	if c.count("rect") != c.count("text") {
		t.Errorf("%d backgrounds for %d labels", c.count("rect"), c.count("text"))
	}
}

func TestRenderAxisLabelsDisabled(t *testing.T) {
	r := NewRenderer()
	r.SetPointCloud(cubePoints())

	r.ToggleLabels()
	c := &fakeCanvas{}
	r.RenderAxisLabels(c, 800, 600)
	if len(c.ops) != 0 {
		t.Errorf("labels off but %d draw calls", len(c.ops))
	}

	// grid off suppresses labels too
	r.ToggleLabels()
	r.ToggleGrid()
	c = &fakeCanvas{}
	r.RenderAxisLabels(c, 800, 600)
	if len(c.ops) != 0 {
		t.Errorf("grid off but %d label draw calls", len(c.ops))
	}
}

func TestClearPointCloudStopsRendering(t *testing.T) {
	r := NewRenderer()
	r.SetPointCloud(cubePoints())
	r.ClearPointCloud()
	c := &fakeCanvas{}

	r.Render(c, 800, 600)

	if len(c.ops) != 0 {
		t.Errorf("cleared cloud produced %d draw calls", len(c.ops))
	}
}

func TestSettersClampAndGuard(t *testing.T) {
	r := NewRenderer()

	r.SetPointSize(0.01)
	if r.PointSize() != 0.1 {
		t.Errorf("PointSize = %v, want floor 0.1", r.PointSize())
	}

	r.SetGridSpacing(0)
	if r.Grid().Spacing != 1 {
		t.Errorf("Spacing = %v, want unchanged 1", r.Grid().Spacing)
	}
	r.SetGridSpacing(2.5)
	if r.Grid().Spacing != 2.5 {
		t.Errorf("Spacing = %v, want 2.5", r.Grid().Spacing)
	}

	r.TogglePolicy()
	if r.Grid().Policy != FixedEdgeStrip {
		t.Errorf("Policy = %v, want FixedEdgeStrip", r.Grid().Policy)
	}
	r.TogglePolicy()
	if r.Grid().Policy != ProjectedAnchors {
		t.Errorf("Policy = %v, want ProjectedAnchors", r.Grid().Policy)
	}
}
