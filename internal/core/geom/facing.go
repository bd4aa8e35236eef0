package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Forward is the facing axis of an unrotated actor. Up is world up.
var (
	Forward = mgl64.Vec3{0, 0, 1}
	Up      = mgl64.Vec3{0, 1, 0}
)

// AxisAngle builds a rotation of angle radians about axis. The axis is
// normalized internally; callers validate that it is non-zero.
func AxisAngle(axis mgl64.Vec3, angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, axis.Normalize())
}

// Facing returns the orientation that looks along dir (yaw about Y, then
// pitch about X, roll zero). With yawOnly the direction is projected onto
// the horizontal plane first.
//
// A vertical dir is degenerate: with yawOnly the projection is empty and ok
// is false; without it pitch saturates at ±π/2 with yaw 0, which keeps the
// result deterministic and free of NaN.
func Facing(dir mgl64.Vec3, yawOnly bool) (mgl64.Quat, bool) {
	if yawOnly {
		dir = mgl64.Vec3{dir.X(), 0, dir.Z()}
	}
	l := dir.Len()
	if l < 1e-12 {
		return mgl64.QuatIdent(), false
	}
	dir = dir.Mul(1 / l)

	yaw := 0.0
	if dir.X() != 0 || dir.Z() != 0 {
		yaw = math.Atan2(dir.X(), dir.Z())
	}
	pitch := -math.Asin(mgl64.Clamp(dir.Y(), -1, 1))
	return QuatFromEuler(Euler{Yaw: yaw, Pitch: pitch}), true
}

// RotateToward advances cur toward desired along the shortest arc by at most
// maxRadians. It never overshoots: once the remaining angle is within the
// budget the result is desired exactly. A negative budget means unlimited.
func RotateToward(cur, desired mgl64.Quat, maxRadians float64) mgl64.Quat {
	if maxRadians < 0 {
		return desired
	}
	cur = cur.Normalize()
	desired = desired.Normalize()

	// delta rotates cur onto desired in world space.
	delta := desired.Mul(cur.Inverse())
	if delta.W < 0 {
		// Take the short way around.
		delta = mgl64.Quat{W: -delta.W, V: delta.V.Mul(-1)}
	}
	w := mgl64.Clamp(delta.W, -1, 1)
	angle := 2 * math.Acos(w)
	if angle <= maxRadians {
		return desired
	}
	if angle < 1e-12 {
		return desired
	}
	axis := delta.V.Mul(1 / math.Sin(angle/2))
	step := mgl64.QuatRotate(maxRadians, axis.Normalize())
	return step.Mul(cur).Normalize()
}

// AngleBetween reports the rotation angle, in radians, separating two
// orientations.
func AngleBetween(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Normalize().Dot(b.Normalize()))
	return 2 * math.Acos(mgl64.Clamp(d, -1, 1))
}

// WellFormed reports whether q has finite components and unit (or near-unit)
// length. Malformed quaternions are rejected upstream rather than silently
// normalized, so an invalid orientation never reaches a rotation slot.
func WellFormed(q mgl64.Quat) bool {
	for _, c := range [4]float64{q.W, q.V.X(), q.V.Y(), q.V.Z()} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return math.Abs(q.Len()-1) <= 1e-3
}
