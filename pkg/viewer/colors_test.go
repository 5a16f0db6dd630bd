package viewer

import (
	"image/color"
	"testing"

	"github.com/philipparndt/golidar/pkg/cloud"
	"github.com/philipparndt/golidar/pkg/geometry"
)

func TestColorModeString(t *testing.T) {
	tests := []struct {
		mode ColorMode
		want string
	}{
		{ColorRGB, "RGB Colors"},
		{ColorHeight, "Height Map"},
		{ColorIntensity, "Intensity"},
		{ColorUniform, "Uniform White"},
		{ColorMode(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("ColorMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestPointColorRGB(t *testing.T) {
	p := cloud.NewPoint(0, 0, 0, 1, 0.5, 0, 0.7)
	got := PointColor(p, ColorRGB, cubeBox(10))
	want := color.RGBA{R: 255, G: 127, B: 0, A: 255}

	if got != want {
		t.Errorf("PointColor = %v, want %v", got, want)
	}
}

func TestPointColorHeightGradient(t *testing.T) {
	box := cubeBox(10)

	bottom := cloud.NewPoint(0, 0, 0, 0, 0, 0, 0)
	if got := PointColor(bottom, ColorHeight, box); got.B != 255 || got.R != 0 {
		t.Errorf("bottom point = %v, want blue end of gradient", got)
	}

	top := cloud.NewPoint(0, 10, 0, 0, 0, 0, 0)
	if got := PointColor(top, ColorHeight, box); got.R != 255 || got.B != 0 {
		t.Errorf("top point = %v, want red end of gradient", got)
	}

	mid := cloud.NewPoint(0, 5, 0, 0, 0, 0, 0)
	if got := PointColor(mid, ColorHeight, box); got.G != 255 {
		t.Errorf("middle point = %v, want full green", got)
	}
}

func TestPointColorHeightFlatBounds(t *testing.T) {
	box := geometry.NewBoundingBox()
	box.Extend(geometry.NewVector3(0, 5, 0))
	box.Extend(geometry.NewVector3(10, 5, 10))

	p := cloud.NewPoint(3, 5, 3, 0, 0, 0, 0)
	got := PointColor(p, ColorHeight, box)

	// equal Y bounds pin the gradient at its low end
	if got.B != 255 || got.R != 0 {
		t.Errorf("flat bounds color = %v, want gradient bottom", got)
	}
}

func TestPointColorIntensity(t *testing.T) {
	p := cloud.NewPoint(0, 0, 0, 1, 0, 0, 0.5)
	got := PointColor(p, ColorIntensity, cubeBox(10))

	if got.R != got.G || got.G != got.B {
		t.Errorf("intensity color %v is not grayscale", got)
	}
	if got.R != 127 {
		t.Errorf("intensity channel = %d, want 127", got.R)
	}
}

func TestPointColorUniform(t *testing.T) {
	p := cloud.NewPoint(0, 0, 0, 0.2, 0.4, 0.6, 0.1)
	got := PointColor(p, ColorUniform, cubeBox(10))
	want := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	if got != want {
		t.Errorf("PointColor = %v, want %v", got, want)
	}
}

func TestPointColorClampsChannels(t *testing.T) {
	p := cloud.NewPoint(0, 0, 0, 1.5, -0.2, 0.5, 0)
	got := PointColor(p, ColorRGB, cubeBox(10))

	if got.R != 255 {
		t.Errorf("R = %d, want clamp at 255", got.R)
	}
	if got.G != 0 {
		t.Errorf("G = %d, want clamp at 0", got.G)
	}
}
