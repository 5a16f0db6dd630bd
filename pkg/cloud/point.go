// Package cloud holds point-cloud data and derived statistics.
package cloud

import "github.com/philipparndt/golidar/pkg/geometry"

// Point is a single sample in a point cloud: a world position, an RGB
// color with components in [0, 1] and an intensity value in [0, 1].
// Points are immutable once stored; a cloud is only ever replaced
// wholesale, never mutated in place.
type Point struct {
	Position  geometry.Vector3
	R, G, B   float64
	Intensity float64
}

// NewPoint creates a point from raw components
func NewPoint(x, y, z, r, g, b, intensity float64) Point {
	return Point{
		Position:  geometry.NewVector3(x, y, z),
		R:         r,
		G:         g,
		B:         b,
		Intensity: intensity,
	}
}
