package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/golidar/pkg/viewer"
)

const labelTextSize = 12

// objCanvas collects draw calls as Fyne canvas objects for one frame
type objCanvas struct {
	objects []fyne.CanvasObject
}

func (c *objCanvas) Line(x1, y1, x2, y2, width float64, col color.RGBA) {
	line := canvas.NewLine(col)
	line.StrokeWidth = float32(width)
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	c.objects = append(c.objects, line)
}

func (c *objCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	rect := canvas.NewRectangle(col)
	rect.Resize(fyne.NewSize(float32(w), float32(h)))
	rect.Move(fyne.NewPos(float32(x), float32(y)))
	c.objects = append(c.objects, rect)
}

func (c *objCanvas) Text(s string, x, y float64, col color.RGBA) {
	text := canvas.NewText(s, col)
	text.TextSize = labelTextSize
	text.Move(fyne.NewPos(float32(x), float32(y)))
	c.objects = append(c.objects, text)
}

func (c *objCanvas) MeasureText(s string) (float64, float64) {
	size := fyne.MeasureText(s, labelTextSize, fyne.TextStyle{})
	return float64(size.Width), float64(size.Height)
}

func (c *objCanvas) Point(x, y, size float64, col color.RGBA) {
	circle := canvas.NewCircle(col)
	circle.Resize(fyne.NewSize(float32(size), float32(size)))
	circle.Move(fyne.NewPos(float32(x-size/2), float32(y-size/2)))
	c.objects = append(c.objects, circle)
}

// CloudView renders the point cloud as a Fyne widget. Dragging orbits
// the camera, scrolling zooms.
type CloudView struct {
	widget.BaseWidget
	renderer  *viewer.Renderer
	objects   []fyne.CanvasObject
	dragStart *fyne.Position
	width     float64
	height    float64
}

func NewCloudView(renderer *viewer.Renderer) *CloudView {
	v := &CloudView{
		renderer: renderer,
		objects:  make([]fyne.CanvasObject, 0),
	}
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer creates the renderer for the widget
func (v *CloudView) CreateRenderer() fyne.WidgetRenderer {
	return &cloudViewRenderer{view: v}
}

// Render rebuilds the frame's canvas objects at the given size
func (v *CloudView) Render(width, height float64) {
	v.width = width
	v.height = height

	c := &objCanvas{}
	v.renderer.Render(c, int(width), int(height))
	v.renderer.RenderAxisLabels(c, int(width), int(height))
	v.objects = c.objects

	v.Refresh()
}

// Redraw re-renders at the last known size, for control changes
func (v *CloudView) Redraw() {
	if v.width > 0 && v.height > 0 {
		v.Render(v.width, v.height)
	}
}

// Dragged orbits the camera
func (v *CloudView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := float64(event.Position.X - v.dragStart.X)
		deltaY := float64(event.Position.Y - v.dragStart.Y)

		v.renderer.Camera.Orbit(deltaX*0.5, -deltaY*0.5)
		v.Render(v.width, v.height)
	}
	v.dragStart = &event.Position
}

// DragEnd ends an orbit drag
func (v *CloudView) DragEnd() {
	v.dragStart = nil
}

// Scrolled zooms the camera
func (v *CloudView) Scrolled(event *fyne.ScrollEvent) {
	v.renderer.Camera.Zoom(float64(event.Scrolled.DY) * 0.1)
	v.Render(v.width, v.height)
}

// cloudViewRenderer implements fyne.WidgetRenderer
type cloudViewRenderer struct {
	view *CloudView
}

func (r *cloudViewRenderer) Layout(size fyne.Size) {
	r.view.Render(float64(size.Width), float64(size.Height))
}

func (r *cloudViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *cloudViewRenderer) Refresh() {
	canvas.Refresh(r.view)
}

func (r *cloudViewRenderer) Objects() []fyne.CanvasObject {
	return r.view.objects
}

func (r *cloudViewRenderer) Destroy() {}
