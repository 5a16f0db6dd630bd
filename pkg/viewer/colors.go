package viewer

import (
	"image/color"
	"math"

	"github.com/philipparndt/golidar/pkg/cloud"
	"github.com/philipparndt/golidar/pkg/geometry"
)

// ColorMode selects how point colors are derived during rendering
type ColorMode int

const (
	ColorRGB ColorMode = iota
	ColorHeight
	ColorIntensity
	ColorUniform
)

// ColorModeNames lists the display names in ColorMode order
var ColorModeNames = []string{"RGB Colors", "Height Map", "Intensity", "Uniform White"}

func (m ColorMode) String() string {
	if m < 0 || int(m) >= len(ColorModeNames) {
		return "Unknown"
	}
	return ColorModeNames[m]
}

// PointColor computes the display color of a point under the given
// mode. Height mapping runs blue (low) through green to red (high)
// over the Y extent of the bounds; a flat Y extent short-circuits to
// the low end instead of dividing by zero.
func PointColor(p cloud.Point, mode ColorMode, bounds geometry.BoundingBox) color.RGBA {
	switch mode {
	case ColorHeight:
		t := 0.0
		if bounds.Max.Y != bounds.Min.Y {
			t = (p.Position.Y - bounds.Min.Y) / (bounds.Max.Y - bounds.Min.Y)
		}
		return color.RGBA{
			R: channel(t),
			G: channel(1.0 - math.Abs(t-0.5)*2.0),
			B: channel(1.0 - t),
			A: 255,
		}
	case ColorIntensity:
		v := channel(p.Intensity)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	case ColorUniform:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	default:
		return color.RGBA{R: channel(p.R), G: channel(p.G), B: channel(p.B), A: 255}
	}
}

// channel converts a [0, 1] float to an 8-bit channel, clamping
// out-of-range values
func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
