package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/golidar/pkg/geometry"
)

func TestProjectTargetHitsScreenCenter(t *testing.T) {
	c := NewCamera()
	view, proj, vp := c.Matrices(800, 600)

	sp, ok := Project(c.Target, view, proj, vp)
	if !ok {
		t.Fatal("camera target not visible")
	}
	if math.Abs(sp.X-400) > 1e-6 || math.Abs(sp.Y-300) > 1e-6 {
		t.Errorf("target at (%v, %v), want (400, 300)", sp.X, sp.Y)
	}
	if sp.Depth <= 0 || sp.Depth >= 1 {
		t.Errorf("Depth = %v, want inside (0, 1)", sp.Depth)
	}
}

func TestProjectBehindCameraInvisible(t *testing.T) {
	c := NewCamera()
	view, proj, vp := c.Matrices(800, 600)

	behind := c.Eye().Mul(2)
	if _, ok := Project(behind, view, proj, vp); ok {
		t.Error("point behind the camera reported visible")
	}
}

func TestProjectScreenOrientation(t *testing.T) {
	c := NewCamera()
	c.SetFrontView()
	view, proj, vp := c.Matrices(800, 600)

	// screen Y grows downward, so a world point above the target
	// lands above the screen center
	up, ok := Project(geometry.NewVector3(0, 1, 0), view, proj, vp)
	if !ok {
		t.Fatal("point above target not visible")
	}
	if up.Y >= 300 {
		t.Errorf("up.Y = %v, want < 300", up.Y)
	}

	right, ok := Project(geometry.NewVector3(1, 0, 0), view, proj, vp)
	if !ok {
		t.Fatal("point right of target not visible")
	}
	if right.X <= 400 {
		t.Errorf("right.X = %v, want > 400", right.X)
	}
}

func TestProjectDepthOrder(t *testing.T) {
	c := NewCamera()
	c.SetFrontView()
	view, proj, vp := c.Matrices(800, 600)

	near, ok := Project(geometry.NewVector3(0, 0, 2), view, proj, vp)
	if !ok {
		t.Fatal("near point not visible")
	}
	far, ok := Project(geometry.NewVector3(0, 0, -2), view, proj, vp)
	if !ok {
		t.Fatal("far point not visible")
	}
	if near.Depth >= far.Depth {
		t.Errorf("near depth %v not less than far depth %v", near.Depth, far.Depth)
	}
}

func TestProjectKeepsOffscreenPoints(t *testing.T) {
	c := NewCamera()
	c.SetFrontView()
	view, proj, vp := c.Matrices(800, 600)

	// visibility is depth-only; points outside the viewport still
	// project so line segments can cross the screen edge
	sp, ok := Project(geometry.NewVector3(100, 0, 0), view, proj, vp)
	if !ok {
		t.Fatal("off-screen point culled")
	}
	if sp.X <= 800 {
		t.Errorf("sp.X = %v, want beyond the right edge", sp.X)
	}
}
