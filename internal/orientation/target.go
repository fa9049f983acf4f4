package orientation

import (
	"math"

	"github.com/KirkDiggler/dicetray/internal/geometry"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/go-gl/mathgl/mgl64"
)

// TargetRotation returns the pose that turns the face showing result toward the viewer.
// It reports false when there is no result yet. An unknown value falls back to the
// first face.
func TargetRotation(faces []models.Face, result int) (mgl64.Quat, bool) {
	if result <= 0 || len(faces) == 0 {
		return mgl64.Quat{}, false
	}

	face := faces[0]
	for _, f := range faces {
		if f.Value == result {
			face = f
			break
		}
	}
	return geometry.RotationBetween(face.Normal, geometry.ViewerAxis), true
}

// AngleBetween is the rotation angle separating two poses, in radians
func AngleBetween(a, b mgl64.Quat) float64 {
	rel := a.Normalize().Conjugate().Mul(b.Normalize())
	return 2 * math.Atan2(rel.V.Len(), math.Abs(rel.W))
}

// slerpToward moves from a fraction t of the way to to along the shorter arc
func slerpToward(from, to mgl64.Quat, t float64) mgl64.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatSlerp(from, to, t).Normalize()
}
