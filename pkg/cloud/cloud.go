package cloud

import "github.com/philipparndt/golidar/pkg/geometry"

// Cloud stores a point set together with its axis-aligned bounding
// box. The box is recomputed on every SetPoints call; for an empty
// cloud it is the all-zero box.
type Cloud struct {
	points []Point
	bounds geometry.BoundingBox
}

// New creates an empty cloud
func New() *Cloud {
	return &Cloud{}
}

// SetPoints replaces the stored point set and recomputes the bounding
// box in a single pass. The input slice is copied so later mutation by
// the caller cannot skew the cached bounds.
func (c *Cloud) SetPoints(points []Point) {
	c.points = make([]Point, len(points))
	copy(c.points, points)
	c.recomputeBounds()
}

// Clear empties the cloud. The bounding box is reset to the all-zero
// box, matching the empty initial state.
func (c *Cloud) Clear() {
	c.points = nil
	c.bounds = geometry.BoundingBox{}
}

// Count returns the number of stored points
func (c *Cloud) Count() int {
	return len(c.points)
}

// Points returns the stored point set. The slice must be treated as
// read-only.
func (c *Cloud) Points() []Point {
	return c.points
}

// Bounds returns the cached bounding box
func (c *Cloud) Bounds() geometry.BoundingBox {
	return c.bounds
}

func (c *Cloud) recomputeBounds() {
	if len(c.points) == 0 {
		c.bounds = geometry.BoundingBox{}
		return
	}

	box := geometry.NewBoundingBox()
	for _, p := range c.points {
		box.Extend(p.Position)
	}
	c.bounds = box
}
