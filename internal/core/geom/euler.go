package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Euler is an ephemeral yaw/pitch/roll triple in radians. Triples are
// derived from the live quaternion on demand and discarded after use; the
// quaternion stays the authoritative representation.
type Euler struct {
	Yaw   float64 // rotation about Y
	Pitch float64 // rotation about X
	Roll  float64 // rotation about Z
}

// The fixed application order is yaw (Y), then pitch (X), then roll (Z):
// q = Qy(yaw) * Qx(pitch) * Qz(roll). Encode and decode both commit to this
// order; mixing orders between the two directions breaks round-tripping.

// QuatFromEuler encodes a triple into a unit quaternion.
func QuatFromEuler(e Euler) mgl64.Quat {
	qy := mgl64.QuatRotate(e.Yaw, mgl64.Vec3{0, 1, 0})
	qx := mgl64.QuatRotate(e.Pitch, mgl64.Vec3{1, 0, 0})
	qz := mgl64.QuatRotate(e.Roll, mgl64.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

// EulerFromQuat decodes a quaternion into the fixed-order triple.
//
// Yaw is reported in [0, 2π), pitch in [-π/2, π/2], roll in (-π, π]. At
// gimbal lock (|pitch| = π/2) yaw and roll are no longer independent; the
// combined angle is attributed to yaw and roll is reported as 0.
//
// A given orientation has more than one Euler representation, so writing one
// channel and reading another back can surprise the caller when the rotation
// has components on several axes. That is a property of Euler angles, not a
// defect of the decode.
func EulerFromQuat(q mgl64.Quat) Euler {
	m := q.Normalize().Mat4()

	// With R = Ry*Rx*Rz: m[1][2] = -sin(pitch).
	sp := -m.At(1, 2)
	if sp > 1 {
		sp = 1
	} else if sp < -1 {
		sp = -1
	}

	const gimbalEps = 1 - 1e-9
	var e Euler
	switch {
	case sp >= gimbalEps:
		// Looking straight up: only yaw-roll is observable.
		e.Pitch = math.Pi / 2
		e.Yaw = math.Atan2(m.At(0, 1), m.At(0, 0))
	case sp <= -gimbalEps:
		e.Pitch = -math.Pi / 2
		e.Yaw = math.Atan2(-m.At(0, 1), m.At(0, 0))
	default:
		e.Pitch = math.Asin(sp)
		e.Yaw = math.Atan2(m.At(0, 2), m.At(2, 2))
		e.Roll = math.Atan2(m.At(1, 0), m.At(1, 1))
	}
	e.Yaw = WrapAngle(e.Yaw)
	return e
}

// WrapAngle maps any finite angle into [0, 2π). Out-of-range values wrap
// around rather than clamp.
func WrapAngle(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}

// ClampPitch clamps a pitch angle to [-π/2, π/2]. Pitch is clamped rather
// than wrapped to keep the decode away from gimbal artifacts.
func ClampPitch(rad float64) float64 {
	return mgl64.Clamp(rad, -math.Pi/2, math.Pi/2)
}
