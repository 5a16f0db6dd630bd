package cloud

import (
	"github.com/philipparndt/golidar/pkg/geometry"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a cloud for display: extents, the centroid of all
// positions and the distribution of intensity values.
type Summary struct {
	Count           int
	Bounds          geometry.BoundingBox
	Centroid        geometry.Vector3
	MeanIntensity   float64
	StdDevIntensity float64
}

// Summarize computes display statistics for a cloud. For an empty
// cloud every field is zero.
func Summarize(c *Cloud) Summary {
	points := c.Points()
	if len(points) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	zs := make([]float64, len(points))
	intensities := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Position.X
		ys[i] = p.Position.Y
		zs[i] = p.Position.Z
		intensities[i] = p.Intensity
	}

	summary := Summary{
		Count:  len(points),
		Bounds: c.Bounds(),
		Centroid: geometry.NewVector3(
			stat.Mean(xs, nil),
			stat.Mean(ys, nil),
			stat.Mean(zs, nil),
		),
		MeanIntensity: stat.Mean(intensities, nil),
	}
	if len(points) > 1 {
		summary.StdDevIntensity = stat.StdDev(intensities, nil)
	}
	return summary
}
