package orientation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// gimbalLimit is where the XYZ decomposition loses a degree of freedom
const gimbalLimit = 0.9999999

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// QuatFromEuler composes intrinsic X, then Y, then Z rotations
func QuatFromEuler(e mgl64.Vec3) mgl64.Quat {
	return mgl64.QuatRotate(e.X(), axisX).
		Mul(mgl64.QuatRotate(e.Y(), axisY)).
		Mul(mgl64.QuatRotate(e.Z(), axisZ))
}

// EulerFromQuat decomposes a pose into XYZ angles, the inverse of QuatFromEuler
func EulerFromQuat(q mgl64.Quat) mgl64.Vec3 {
	q = q.Normalize()
	x, y, z, w := q.V.X(), q.V.Y(), q.V.Z(), q.W

	m11 := 1 - 2*(y*y+z*z)
	m12 := 2 * (x*y - w*z)
	m13 := 2 * (x*z + w*y)
	m22 := 1 - 2*(x*x+z*z)
	m23 := 2 * (y*z - w*x)
	m32 := 2 * (y*z + w*x)
	m33 := 1 - 2*(x*x+y*y)

	ey := math.Asin(mgl64.Clamp(m13, -1, 1))
	if math.Abs(m13) < gimbalLimit {
		return mgl64.Vec3{math.Atan2(-m23, m33), ey, math.Atan2(-m12, m11)}
	}
	return mgl64.Vec3{math.Atan2(m32, m22), ey, 0}
}
