package cloud

import (
	"math"
	"math/rand"
)

// SampleScene generates a synthetic LIDAR-style scene: points swept
// along overlapping spirals with jittered radius and height, colored
// by their position within the scene and tagged with random intensity.
// The same seed always produces the same cloud.
func SampleScene(numPoints int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, numPoints)

	for i := 0; i < numPoints; i++ {
		t := float64(i) / float64(numPoints)
		angle := t * 2.0 * math.Pi * 10.0 // several turns
		radius := rng.Float64() * 5.0
		height := math.Sin(angle)*2.0 + rng.Float64()*0.5

		x := math.Cos(angle) * radius
		y := height
		z := math.Sin(angle) * radius

		r := (x + 5.0) / 10.0
		g := (y + 3.0) / 6.0
		b := (z + 5.0) / 10.0

		points = append(points, NewPoint(x, y, z, r, g, b, rng.Float64()))
	}

	return points
}
