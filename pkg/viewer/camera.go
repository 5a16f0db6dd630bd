// Package viewer implements the point-cloud viewing core: an orbit
// camera, the world-to-screen projection, grid and axis-label layout,
// and a renderer facade that draws through a backend-agnostic Canvas.
package viewer

import (
	"math"

	"github.com/philipparndt/golidar/pkg/geometry"
)

const (
	minDistance = 0.1
	maxDistance = 1000.0
	maxPitch    = 89.0

	nearPlane = 0.1
	farPlane  = 10000.0
)

// Viewport is the pixel rectangle matrices are built for
type Viewport struct {
	X, Y, Width, Height int
}

// Camera is a spherical-coordinate orbit camera. Yaw and pitch are in
// degrees; yaw is unbounded and wraps through the trig functions,
// pitch is clamped short of the poles.
type Camera struct {
	Distance float64
	Yaw      float64
	Pitch    float64
	Target   geometry.Vector3
	FOV      float64
}

// NewCamera creates a camera in the default orientation
func NewCamera() *Camera {
	c := &Camera{}
	c.Reset()
	return c
}

// Reset restores the default view
func (c *Camera) Reset() {
	c.Distance = 10.0
	c.Yaw = 45.0
	c.Pitch = 30.0
	c.Target = geometry.Vector3{}
	c.FOV = 45.0
}

// Orbit rotates the camera around its target. Pitch is clamped to
// ±89° so the look direction never flips over the poles.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch

	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Pan translates the target in the camera's horizontal plane. The
// right vector is derived from yaw alone, so at steep pitch angles the
// pan direction drifts from the visual right vector; pan speed scales
// with distance to keep apparent speed constant on screen.
func (c *Camera) Pan(deltaX, deltaY float64) {
	yawRad := c.Yaw * math.Pi / 180.0

	rightX := math.Cos(yawRad)
	rightZ := -math.Sin(yawRad)

	scale := c.Distance * 0.001

	c.Target.X += (rightX*deltaX - rightX*deltaY) * scale
	c.Target.Y += deltaY * scale
	c.Target.Z += (rightZ*deltaX - rightZ*deltaY) * scale
}

// Zoom moves the camera along the view axis. Positive delta zooms in.
func (c *Camera) Zoom(delta float64) {
	c.Distance = clampDistance(c.Distance * (1.0 - delta*0.1))
}

// SetTopView looks straight down. Pitch stops at 89° so the fixed
// world-up vector stays valid.
func (c *Camera) SetTopView() {
	c.Yaw = 0
	c.Pitch = maxPitch
}

// SetFrontView looks along -Z
func (c *Camera) SetFrontView() {
	c.Yaw = 0
	c.Pitch = 0
}

// SetSideView looks along -X
func (c *Camera) SetSideView() {
	c.Yaw = 90
	c.Pitch = 0
}

// SetIsometricView uses the classic isometric angle, atan(1/sqrt(2))
func (c *Camera) SetIsometricView() {
	c.Yaw = 45
	c.Pitch = 35.26
}

// FrameBox centers the camera on a bounding box and backs off far
// enough to see all of it. Distance is clamped here as well, so a
// degenerate box cannot leave the camera at zero distance.
func (c *Camera) FrameBox(box geometry.BoundingBox) {
	c.Target = box.Center()
	c.Distance = clampDistance(box.Size().MaxComponent() * 2.0)
}

// Eye returns the camera position derived from the spherical state
func (c *Camera) Eye() geometry.Vector3 {
	yawRad := c.Yaw * math.Pi / 180.0
	pitchRad := c.Pitch * math.Pi / 180.0

	return c.Target.Add(geometry.NewVector3(
		c.Distance*math.Cos(pitchRad)*math.Sin(yawRad),
		c.Distance*math.Sin(pitchRad),
		c.Distance*math.Cos(pitchRad)*math.Cos(yawRad),
	))
}

// Matrices builds the view and projection matrices plus the viewport
// for a frame of the given size. Every consumer, whether rasterizing
// points or placing labels, must go through this one routine so the
// two can never drift apart. A non-positive height is treated as 1 to
// avoid a division by zero in the aspect ratio.
func (c *Camera) Matrices(width, height int) (view, proj geometry.Mat4, vp Viewport) {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}

	aspect := float64(width) / float64(height)
	proj = geometry.Perspective(c.FOV, aspect, nearPlane, farPlane)
	view = geometry.LookAt(c.Eye(), c.Target, geometry.NewVector3(0, 1, 0))
	vp = Viewport{X: 0, Y: 0, Width: width, Height: height}
	return view, proj, vp
}

func clampDistance(d float64) float64 {
	if d < minDistance {
		return minDistance
	}
	if d > maxDistance {
		return maxDistance
	}
	return d
}
