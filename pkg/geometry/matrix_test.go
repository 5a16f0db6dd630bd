package geometry

import (
	"math"
	"testing"
)

func TestMat4IdentityMul(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	if got := Identity().Mul(m); got != m {
		t.Errorf("Identity.Mul failed: expected %v, got %v", m, got)
	}
	if got := m.Mul(Identity()); got != m {
		t.Errorf("Mul(Identity) failed: expected %v, got %v", m, got)
	}
}

func TestMat4MulVec4(t *testing.T) {
	// Translation by (1, 2, 3)
	m := Mat4{
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 1, 3,
		0, 0, 0, 1,
	}

	x, y, z, w := m.MulVec4(5, 5, 5, 1)
	if x != 6 || y != 7 || z != 8 || w != 1 {
		t.Errorf("MulVec4 failed: got (%v, %v, %v, %v)", x, y, z, w)
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := NewVector3(3, 4, 5)
	view := LookAt(eye, NewVector3(0, 0, 0), NewVector3(0, 1, 0))

	x, y, z, _ := view.MulVec4(eye.X, eye.Y, eye.Z, 1)
	if math.Abs(x) > 1e-10 || math.Abs(y) > 1e-10 || math.Abs(z) > 1e-10 {
		t.Errorf("LookAt should map the eye to the origin, got (%v, %v, %v)", x, y, z)
	}
}

func TestLookAtMapsTargetToNegativeZ(t *testing.T) {
	eye := NewVector3(0, 0, 10)
	target := NewVector3(0, 0, 0)
	view := LookAt(eye, target, NewVector3(0, 1, 0))

	x, y, z, _ := view.MulVec4(target.X, target.Y, target.Z, 1)
	if math.Abs(x) > 1e-10 || math.Abs(y) > 1e-10 {
		t.Errorf("target should be on the view axis, got (%v, %v, %v)", x, y, z)
	}
	if math.Abs(z+10) > 1e-10 {
		t.Errorf("target should sit 10 units down -Z, got z=%v", z)
	}
}

func TestPerspectiveCenterRay(t *testing.T) {
	proj := Perspective(45, 16.0/9.0, 0.1, 10000)

	// A point straight ahead of the camera stays on the view axis
	x, y, _, w := proj.MulVec4(0, 0, -5, 1)
	if x != 0 || y != 0 {
		t.Errorf("center ray should project to NDC origin, got (%v, %v)", x/w, y/w)
	}
	if w != 5 {
		t.Errorf("perspective w should equal -z, got %v", w)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := 0.1, 10000.0
	proj := Perspective(45, 1, near, far)

	// Near plane maps to NDC z=-1, far plane to z=+1
	_, _, zn, wn := proj.MulVec4(0, 0, -near, 1)
	if math.Abs(zn/wn+1) > 1e-9 {
		t.Errorf("near plane should map to -1, got %v", zn/wn)
	}
	_, _, zf, wf := proj.MulVec4(0, 0, -far, 1)
	if math.Abs(zf/wf-1) > 1e-9 {
		t.Errorf("far plane should map to +1, got %v", zf/wf)
	}
}
