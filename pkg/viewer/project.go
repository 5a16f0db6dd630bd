package viewer

import "github.com/philipparndt/golidar/pkg/geometry"

// ScreenPoint is a projected world point. X and Y are pixel
// coordinates with the origin at the top left; Depth is the
// normalized [0, 1] depth used for visibility and painter ordering.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Project maps a world point to screen coordinates through the given
// view and projection matrices. It reports false when the point falls
// outside the [0, 1] depth range (behind the near plane or past the
// far plane). Points outside the viewport's X/Y extents are still
// reported as visible; callers that care must cull them.
func Project(world geometry.Vector3, view, proj geometry.Mat4, vp Viewport) (ScreenPoint, bool) {
	vx, vy, vz, vw := view.MulVec4(world.X, world.Y, world.Z, 1)
	cx, cy, cz, cw := proj.MulVec4(vx, vy, vz, vw)
	if cw == 0 {
		return ScreenPoint{}, false
	}

	ndcX := cx / cw
	ndcY := cy / cw
	ndcZ := cz / cw

	depth := (ndcZ + 1) / 2
	if depth < 0 || depth > 1 {
		return ScreenPoint{}, false
	}

	sx := float64(vp.X) + (ndcX+1)/2*float64(vp.Width)
	sy := float64(vp.Y) + (ndcY+1)/2*float64(vp.Height)

	// Flip from bottom-left device space to top-left screen space
	return ScreenPoint{
		X:     sx,
		Y:     float64(vp.Height) - sy,
		Depth: depth,
	}, true
}
