package viewer

import (
	"image/color"

	"github.com/philipparndt/golidar/pkg/geometry"
)

// LineSeg3 is a world-space line segment with draw styling
type LineSeg3 struct {
	From, To geometry.Vector3
	Color    color.RGBA
	Width    float64
}

// Grid styling. The three planes get separate translucent tints so
// their orientation reads at a glance; the axis stubs use the fixed
// red/green/blue convention independent of the plane colors.
var (
	bottomPlaneColor = color.RGBA{R: 153, G: 153, B: 153, A: 178}
	backPlaneColor   = color.RGBA{R: 127, G: 127, B: 153, A: 127}
	leftPlaneColor   = color.RGBA{R: 153, G: 127, B: 127, A: 127}
	boxEdgeColor     = color.RGBA{R: 76, G: 76, B: 76, A: 229}

	axisXColor = color.RGBA{R: 255, A: 255}
	axisYColor = color.RGBA{G: 255, A: 255}
	axisZColor = color.RGBA{B: 255, A: 255}
)

// NumLines returns the grid line count for an axis of the given size:
// floor(size/spacing) + 1
func NumLines(size, spacing float64) int {
	return int(size/spacing) + 1
}

// gridCoord returns min + i*spacing, clamped so the last step never
// overshoots the axis maximum
func gridCoord(min, max, spacing float64, i int) float64 {
	coord := min + float64(i)*spacing
	if coord > max {
		return max
	}
	return coord
}

// GridLines lays out the scale-reference grid for a bounding box:
// three translucent plane grids (bottom XZ, back XY, left YZ), the
// box wireframe, and short colored stubs marking +X/+Y/+Z at the
// minimum corner. Returns nil when the box is flat on any axis or the
// spacing is not positive.
func GridLines(box geometry.BoundingBox, spacing float64) []LineSeg3 {
	if spacing <= 0 || box.IsFlat() {
		return nil
	}

	size := box.Size()
	min, max := box.Min, box.Max

	numX := NumLines(size.X, spacing)
	numY := NumLines(size.Y, spacing)
	numZ := NumLines(size.Z, spacing)

	lines := make([]LineSeg3, 0, 2*(numX+numY+numZ)+24)

	seg := func(x1, y1, z1, x2, y2, z2 float64, col color.RGBA, width float64) {
		lines = append(lines, LineSeg3{
			From:  geometry.NewVector3(x1, y1, z1),
			To:    geometry.NewVector3(x2, y2, z2),
			Color: col,
			Width: width,
		})
	}

	// Bottom plane (XZ at minY)
	for i := 0; i <= numZ; i++ {
		z := gridCoord(min.Z, max.Z, spacing, i)
		seg(min.X, min.Y, z, max.X, min.Y, z, bottomPlaneColor, 1)
	}
	for i := 0; i <= numX; i++ {
		x := gridCoord(min.X, max.X, spacing, i)
		seg(x, min.Y, min.Z, x, min.Y, max.Z, bottomPlaneColor, 1)
	}

	// Back plane (XY at minZ)
	for i := 0; i <= numY; i++ {
		y := gridCoord(min.Y, max.Y, spacing, i)
		seg(min.X, y, min.Z, max.X, y, min.Z, backPlaneColor, 1)
	}
	for i := 0; i <= numX; i++ {
		x := gridCoord(min.X, max.X, spacing, i)
		seg(x, min.Y, min.Z, x, max.Y, min.Z, backPlaneColor, 1)
	}

	// Left plane (YZ at minX)
	for i := 0; i <= numY; i++ {
		y := gridCoord(min.Y, max.Y, spacing, i)
		seg(min.X, y, min.Z, min.X, y, max.Z, leftPlaneColor, 1)
	}
	for i := 0; i <= numZ; i++ {
		z := gridCoord(min.Z, max.Z, spacing, i)
		seg(min.X, min.Y, z, min.X, max.Y, z, leftPlaneColor, 1)
	}

	// Bounding box wireframe: full bottom rectangle, the three visible
	// vertical edges, and two top edges (partial box keeps the view open)
	seg(min.X, min.Y, min.Z, max.X, min.Y, min.Z, boxEdgeColor, 2)
	seg(max.X, min.Y, min.Z, max.X, min.Y, max.Z, boxEdgeColor, 2)
	seg(max.X, min.Y, max.Z, min.X, min.Y, max.Z, boxEdgeColor, 2)
	seg(min.X, min.Y, max.Z, min.X, min.Y, min.Z, boxEdgeColor, 2)

	seg(min.X, min.Y, min.Z, min.X, max.Y, min.Z, boxEdgeColor, 2)
	seg(max.X, min.Y, min.Z, max.X, max.Y, min.Z, boxEdgeColor, 2)
	seg(min.X, min.Y, max.Z, min.X, max.Y, max.Z, boxEdgeColor, 2)

	seg(min.X, max.Y, min.Z, max.X, max.Y, min.Z, boxEdgeColor, 2)
	seg(min.X, max.Y, min.Z, min.X, max.Y, max.Z, boxEdgeColor, 2)

	// Axis direction stubs at the minimum corner
	axisLength := size.MinComponent() * 0.15
	seg(min.X, min.Y, min.Z, min.X+axisLength, min.Y, min.Z, axisXColor, 3)
	seg(min.X, min.Y, min.Z, min.X, min.Y+axisLength, min.Z, axisYColor, 3)
	seg(min.X, min.Y, min.Z, min.X, min.Y, min.Z+axisLength, axisZColor, 3)

	return lines
}
