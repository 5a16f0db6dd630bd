package viewer

import (
	"fmt"
	"image/color"

	"github.com/philipparndt/golidar/pkg/geometry"
)

// LabelPolicy selects how axis labels are placed on screen
type LabelPolicy int

const (
	// ProjectedAnchors projects each grid coordinate along the box
	// edges into screen space and draws the label there. Labels track
	// the 3D scene under any camera orientation.
	ProjectedAnchors LabelPolicy = iota

	// FixedEdgeStrip lays X labels along the bottom viewport edge and
	// Y labels along the left edge by linear interpolation, with Z
	// summarized as a min/max corner annotation. Placement ignores
	// the camera, so it only reads correctly head-on.
	FixedEdgeStrip
)

// LabelPolicyNames lists the display names in LabelPolicy order
var LabelPolicyNames = []string{"Projected Anchors", "Fixed Edge Strip"}

func (p LabelPolicy) String() string {
	if p < 0 || int(p) >= len(LabelPolicyNames) {
		return "Unknown"
	}
	return LabelPolicyNames[p]
}

// Rect is a screen-space rectangle
type Rect struct {
	X, Y, W, H float64
}

// Label is one piece of positioned axis text. When HasBackground is
// set, Background is filled behind the text for legibility.
type Label struct {
	Text          string
	X, Y          float64
	Color         color.RGBA
	HasBackground bool
	Background    Rect
}

// Tick is a short screen-space mark tying a label to its axis strip
type Tick struct {
	X1, Y1, X2, Y2 float64
	Color          color.RGBA
}

// LabelLayout is the full screen-space label arrangement for a frame
type LabelLayout struct {
	Labels []Label
	Ticks  []Tick
}

// TextMeasurer reports the rendered size of a string, so layout can
// center text and size backgrounds without knowing the font backend
type TextMeasurer func(s string) (w, h float64)

var (
	labelXColor = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	labelYColor = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	labelZColor = color.RGBA{R: 100, G: 100, B: 255, A: 255}

	labelBGColor = color.RGBA{A: 220}
)

// skipFactor widens the label stride as the grid gets denser, so
// labels never crowd each other
func skipFactor(numLines int) int {
	switch {
	case numLines > 30:
		return 4
	case numLines > 15:
		return 2
	default:
		return 1
	}
}

// LayoutAxisLabels arranges axis labels for a frame under the given
// policy. Returns an empty layout when the box is flat on any axis or
// the spacing is not positive; visibility toggles are the caller's
// concern.
func LayoutAxisLabels(box geometry.BoundingBox, spacing float64, policy LabelPolicy,
	view, proj geometry.Mat4, vp Viewport, measure TextMeasurer) LabelLayout {

	if spacing <= 0 || box.IsFlat() {
		return LabelLayout{}
	}

	if policy == FixedEdgeStrip {
		return layoutEdgeStrips(box, spacing, vp, measure)
	}
	return layoutProjected(box, spacing, view, proj, vp, measure)
}

// layoutProjected anchors each label at its true 3D grid coordinate,
// with the two off-axis coordinates held at the box minimum
func layoutProjected(box geometry.BoundingBox, spacing float64,
	view, proj geometry.Mat4, vp Viewport, measure TextMeasurer) LabelLayout {

	size := box.Size()
	min, max := box.Min, box.Max
	var out LabelLayout

	place := func(world geometry.Vector3, value float64, col color.RGBA) {
		sp, ok := Project(world, view, proj, vp)
		if !ok {
			return
		}
		text := fmt.Sprintf("%.1f", value)
		w, h := measure(text)
		tx := sp.X - w/2
		ty := sp.Y - h/2
		out.Labels = append(out.Labels, Label{
			Text:          text,
			X:             tx,
			Y:             ty,
			Color:         col,
			HasBackground: true,
			Background:    Rect{X: tx - 2, Y: ty - 2, W: w + 4, H: h + 4},
		})
	}

	numX := NumLines(size.X, spacing)
	for i := 0; i <= numX; i += skipFactor(numX) {
		x := gridCoord(min.X, max.X, spacing, i)
		place(geometry.NewVector3(x, min.Y, min.Z), x, labelXColor)
	}

	numY := NumLines(size.Y, spacing)
	for i := 0; i <= numY; i += skipFactor(numY) {
		y := gridCoord(min.Y, max.Y, spacing, i)
		place(geometry.NewVector3(min.X, y, min.Z), y, labelYColor)
	}

	numZ := NumLines(size.Z, spacing)
	for i := 0; i <= numZ; i += skipFactor(numZ) {
		z := gridCoord(min.Z, max.Z, spacing, i)
		place(geometry.NewVector3(min.X, min.Y, z), z, labelZColor)
	}

	return out
}

// layoutEdgeStrips interpolates label positions along fixed viewport
// strips instead of projecting. X runs across the bottom, Y up the
// left edge, Z collapses to a min/max annotation in the corner.
func layoutEdgeStrips(box geometry.BoundingBox, spacing float64,
	vp Viewport, measure TextMeasurer) LabelLayout {

	const (
		stripLeft   = 60.0
		stripRight  = 20.0
		stripTop    = 40.0
		stripBottom = 50.0
	)

	size := box.Size()
	min, max := box.Min, box.Max
	width := float64(vp.Width)
	height := float64(vp.Height)
	var out LabelLayout

	background := func(tx, ty, w, h float64) Rect {
		return Rect{X: tx - 2, Y: ty - 2, W: w + 4, H: h + 4}
	}

	// X labels across the bottom strip
	numX := NumLines(size.X, spacing)
	for i := 0; i <= numX; i += skipFactor(numX) {
		t := float64(i) / float64(numX)
		sx := stripLeft + t*(width-stripLeft-stripRight)
		value := gridCoord(min.X, max.X, spacing, i)

		text := fmt.Sprintf("%.1f", value)
		w, h := measure(text)
		tx := sx - w/2
		ty := height - h - 8
		out.Labels = append(out.Labels, Label{
			Text:          text,
			X:             tx,
			Y:             ty,
			Color:         labelXColor,
			HasBackground: true,
			Background:    background(tx, ty, w, h),
		})
		out.Ticks = append(out.Ticks, Tick{
			X1: sx, Y1: ty - 8, X2: sx, Y2: ty - 2,
			Color: labelXColor,
		})
	}

	// Y labels up the left strip, t=0 at the bottom
	numY := NumLines(size.Y, spacing)
	for i := 0; i <= numY; i += skipFactor(numY) {
		t := float64(i) / float64(numY)
		sy := (height - stripBottom) - t*(height-stripBottom-stripTop)
		value := gridCoord(min.Y, max.Y, spacing, i)

		text := fmt.Sprintf("%.1f", value)
		w, h := measure(text)
		tx := 8.0
		ty := sy - h/2
		out.Labels = append(out.Labels, Label{
			Text:          text,
			X:             tx,
			Y:             ty,
			Color:         labelYColor,
			HasBackground: true,
			Background:    background(tx, ty, w, h),
		})
		out.Ticks = append(out.Ticks, Tick{
			X1: tx + w + 4, Y1: sy, X2: tx + w + 10, Y2: sy,
			Color: labelYColor,
		})
	}

	// Z collapses to one min/max annotation in the bottom-right corner
	text := fmt.Sprintf("Z: %.1f to %.1f", min.Z, max.Z)
	w, h := measure(text)
	tx := width - w - 10
	ty := height - h - 8
	out.Labels = append(out.Labels, Label{
		Text:          text,
		X:             tx,
		Y:             ty,
		Color:         labelZColor,
		HasBackground: true,
		Background:    background(tx, ty, w, h),
	})

	return out
}
