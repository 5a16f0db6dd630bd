package geometry

import "math"

// Mat4 is a 4x4 transformation matrix in row-major order.
// Element (row, col) lives at index row*4+col.
type Mat4 [16]float64

// Identity returns the identity matrix
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product m * other
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// MulVec4 applies the matrix to a homogeneous column vector
func (m Mat4) MulVec4(x, y, z, w float64) (float64, float64, float64, float64) {
	ox := m[0]*x + m[1]*y + m[2]*z + m[3]*w
	oy := m[4]*x + m[5]*y + m[6]*z + m[7]*w
	oz := m[8]*x + m[9]*y + m[10]*z + m[11]*w
	ow := m[12]*x + m[13]*y + m[14]*z + m[15]*w
	return ox, oy, oz, ow
}

// Perspective builds a perspective projection matrix from a vertical
// field of view in degrees, an aspect ratio and near/far clip planes.
// Equivalent to a symmetric glFrustum with fH = tan(fov/2)*near.
func Perspective(fovDeg, aspect, near, far float64) Mat4 {
	fH := math.Tan(fovDeg*math.Pi/360.0) * near
	fW := fH * aspect

	return Mat4{
		near / fW, 0, 0, 0,
		0, near / fH, 0, 0,
		0, 0, -(far + near) / (far - near), -2 * far * near / (far - near),
		0, 0, -1, 0,
	}
}

// LookAt builds a view matrix placing the camera at eye, looking at
// target, with the given up direction. Matches gluLookAt.
func LookAt(eye, target, up Vector3) Mat4 {
	forward := target.Sub(eye).Normalize()
	side := forward.Cross(up).Normalize()
	upV := side.Cross(forward)

	return Mat4{
		side.X, side.Y, side.Z, -side.Dot(eye),
		upV.X, upV.Y, upV.Z, -upV.Dot(eye),
		-forward.X, -forward.Y, -forward.Z, forward.Dot(eye),
		0, 0, 0, 1,
	}
}
