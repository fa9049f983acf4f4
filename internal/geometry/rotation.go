package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// parallelEpsilon decides when two unit vectors count as identical or opposite
const parallelEpsilon = 1e-9

var (
	// ViewerAxis is the direction a settled face points toward
	ViewerAxis = mgl64.Vec3{0, 0, 1}

	// LabelAxis is the label's local facing direction
	LabelAxis = mgl64.Vec3{0, 0, 1}
)

// RotationBetween returns the smallest rotation carrying from onto to.
// Identical directions give the identity; opposite directions give a half turn
// about an axis perpendicular to from.
func RotationBetween(from, to mgl64.Vec3) mgl64.Quat {
	from, to = from.Normalize(), to.Normalize()
	cos := from.Dot(to)

	if cos >= 1-parallelEpsilon {
		return mgl64.QuatIdent()
	}
	if cos <= -1+parallelEpsilon {
		axis := mgl64.Vec3{1, 0, 0}.Cross(from)
		if axis.Len() < 1e-6 {
			axis = mgl64.Vec3{0, 1, 0}.Cross(from)
		}
		return mgl64.QuatRotate(math.Pi, axis.Normalize())
	}
	return mgl64.QuatBetweenVectors(from, to).Normalize()
}
