package script

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/voxscript/voxscript/internal/core/geom"
)

// Rotation operations. The actor's orientation is canonically a unit
// quaternion held by the transform store; yaw/pitch/roll are derived views
// computed fresh on every call with a fixed conversion order (yaw about Y,
// then pitch about X, then roll about Z).
//
// Because Euler triples are not unique, setting one channel on an
// orientation that has components on several axes can shift the apparent
// value of the others after re-encoding. That is accepted behavior of the
// Euler view, not a bug.

// Yaw returns the actor's yaw in radians, in [0, 2π).
func (c *Context) Yaw() (float64, error) {
	a, err := c.requireActor()
	if err != nil {
		return 0, err
	}
	return geom.EulerFromQuat(a.Rotation()).Yaw, nil
}

// Pitch returns the actor's pitch in radians, in [-π/2, π/2].
func (c *Context) Pitch() (float64, error) {
	a, err := c.requireActor()
	if err != nil {
		return 0, err
	}
	return geom.EulerFromQuat(a.Rotation()).Pitch, nil
}

// Roll returns the actor's roll in radians, in (-π, π].
func (c *Context) Roll() (float64, error) {
	a, err := c.requireActor()
	if err != nil {
		return 0, err
	}
	return geom.EulerFromQuat(a.Rotation()).Roll, nil
}

// SetYaw overwrites the yaw channel, wrapping the input into [0, 2π).
// Pitch and roll are carried over from the orientation as it was before the
// call.
func (c *Context) SetYaw(radians float64) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkFinite("radians", radians); err != nil {
		return err
	}
	e := geom.EulerFromQuat(a.Rotation())
	e.Yaw = geom.WrapAngle(radians)
	a.SetRotation(geom.QuatFromEuler(e))
	return nil
}

// SetPitch overwrites the pitch channel. The input is clamped (not wrapped)
// to [-π/2, π/2] to keep the conversion away from gimbal artifacts.
func (c *Context) SetPitch(radians float64) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkFinite("radians", radians); err != nil {
		return err
	}
	e := geom.EulerFromQuat(a.Rotation())
	e.Pitch = geom.ClampPitch(radians)
	a.SetRotation(geom.QuatFromEuler(e))
	return nil
}

// SetRoll overwrites the roll channel. No range policy applies.
func (c *Context) SetRoll(radians float64) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkFinite("radians", radians); err != nil {
		return err
	}
	e := geom.EulerFromQuat(a.Rotation())
	e.Roll = radians
	a.SetRotation(geom.QuatFromEuler(e))
	return nil
}

// SetYawPitchRoll replaces the whole orientation from the three angles.
// Unlike the single-channel setters it never reads the prior orientation
// back.
func (c *Context) SetYawPitchRoll(yaw, pitch, roll float64) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkFinite("yaw", yaw); err != nil {
		return err
	}
	if err := checkFinite("pitch", pitch); err != nil {
		return err
	}
	if err := checkFinite("roll", roll); err != nil {
		return err
	}
	a.SetRotation(geom.QuatFromEuler(geom.Euler{Yaw: yaw, Pitch: pitch, Roll: roll}))
	return nil
}

// Turn rotates the actor about its own Y axis by the given angle. Positive
// angles follow the right-hand rule; if your turn comes out backward, negate
// the angle.
func (c *Context) Turn(radians float64) error {
	return c.TurnAbout(radians, geom.Up)
}

// TurnAbout rotates the actor about the given axis in its own frame
// (apply-after: the new orientation is current ∘ Q).
func (c *Context) TurnAbout(radians float64, axis mgl64.Vec3) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkFinite("radians", radians); err != nil {
		return err
	}
	if err := checkAxis("axis", axis); err != nil {
		return err
	}
	a.SetRotation(a.Rotation().Mul(geom.AxisAngle(axis, radians)))
	return nil
}

// Spin turns the actor about its own Y axis at a continuous rate. The angle
// applied this tick is radiansPerSecond scaled by the frame delta; call it
// every tick to sustain the motion.
func (c *Context) Spin(radiansPerSecond float64) error {
	return c.SpinAbout(radiansPerSecond, geom.Up)
}

// SpinAbout is Spin about an arbitrary self-space axis.
func (c *Context) SpinAbout(radiansPerSecond float64, axis mgl64.Vec3) error {
	if err := checkFinite("radiansPerSecond", radiansPerSecond); err != nil {
		return err
	}
	return c.TurnAbout(radiansPerSecond*c.DeltaTime(), axis)
}

// Rotate rotates the actor about the given axis in world space
// (apply-before: the new orientation is Q ∘ current). This is the
// world-space counterpart to TurnAbout.
func (c *Context) Rotate(axis mgl64.Vec3, radians float64) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkAxis("axis", axis); err != nil {
		return err
	}
	if err := checkFinite("radians", radians); err != nil {
		return err
	}
	a.SetRotation(geom.AxisAngle(axis, radians).Mul(a.Rotation()))
	return nil
}

// ApplyQuaternion premultiplies q onto the orientation: a world-space
// rotation. Turn and Rotate are built from this pair of primitives.
func (c *Context) ApplyQuaternion(q mgl64.Quat) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkQuat("quat", q); err != nil {
		return err
	}
	a.SetRotation(q.Mul(a.Rotation()))
	return nil
}

// ApplyQuaternionSelf postmultiplies q onto the orientation: a rotation in
// the actor's own frame.
func (c *Context) ApplyQuaternionSelf(q mgl64.Quat) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkQuat("quat", q); err != nil {
		return err
	}
	a.SetRotation(a.Rotation().Mul(q))
	return nil
}

// SetRot commits q verbatim as the actor's world rotation. Malformed
// quaternions are rejected, not normalized.
func (c *Context) SetRot(q mgl64.Quat) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkQuat("rot", q); err != nil {
		return err
	}
	a.SetRotation(q)
	return nil
}

// ResetRot restores the identity world rotation.
func (c *Context) ResetRot() error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	a.SetRotation(mgl64.QuatIdent())
	return nil
}

// SetSpawnRot commits q to the actor's spawn-rotation slot.
func (c *Context) SetSpawnRot(q mgl64.Quat) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkQuat("rot", q); err != nil {
		return err
	}
	a.SetSpawnRotation(q)
	return nil
}

// ResetSpawnRot restores the identity spawn rotation.
func (c *Context) ResetSpawnRot() error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	a.SetSpawnRotation(mgl64.QuatIdent())
	return nil
}

// SetLocalRot commits q to the actor's parent-relative rotation slot.
func (c *Context) SetLocalRot(q mgl64.Quat) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkQuat("rot", q); err != nil {
		return err
	}
	a.SetLocalRotation(q)
	return nil
}

// ResetLocalRot restores the identity local rotation.
func (c *Context) ResetLocalRot() error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	a.SetLocalRotation(mgl64.QuatIdent())
	return nil
}

// LookAt snaps the actor to face the target. With yawOnly the facing stays
// in the horizontal plane. A target straight above or below the actor is
// handled deterministically (pitch saturates at ±π/2), never an error.
func (c *Context) LookAt(target Target, yawOnly bool) error {
	return c.lookAt(target, yawOnly, -1)
}

// LookDir faces the actor along a direction by synthesizing a point target a
// short distance ahead, reusing the point-based facing path.
func (c *Context) LookDir(dir mgl64.Vec3, yawOnly bool) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkAxis("dir", dir); err != nil {
		return err
	}
	point := a.Position().Add(dir.Normalize().Mul(lookDirDistance))
	return c.lookAt(PointTarget(point), yawOnly, -1)
}

// LookToward turns the actor toward the target gradually, advancing by at
// most radiansPerSecond scaled by the frame delta this tick. It never
// overshoots past directly facing the target; call every tick to keep
// turning.
func (c *Context) LookToward(target Target, radiansPerSecond float64, yawOnly bool) error {
	if err := checkRate("radiansPerSecond", radiansPerSecond); err != nil {
		return err
	}
	return c.lookAt(target, yawOnly, radiansPerSecond*c.DeltaTime())
}

// LookTowardDir is LookToward for a direction, with the synthetic target
// placed further out so the turn stays stable while the actor moves.
func (c *Context) LookTowardDir(dir mgl64.Vec3, radiansPerSecond float64, yawOnly bool) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkAxis("dir", dir); err != nil {
		return err
	}
	if err := checkRate("radiansPerSecond", radiansPerSecond); err != nil {
		return err
	}
	point := a.Position().Add(dir.Normalize().Mul(lookTowardDirDistance))
	return c.lookAt(PointTarget(point), yawOnly, radiansPerSecond*c.DeltaTime())
}

// lookAt resolves the target and delegates the facing computation to the
// transform store. maxRadians < 0 means snap instantly.
func (c *Context) lookAt(target Target, yawOnly bool, maxRadians float64) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkTarget("target", target); err != nil {
		return err
	}
	reg, err := c.requireRegistry()
	if err != nil {
		return err
	}
	point, err := target.Resolve(reg)
	if err != nil {
		return ErrActorNotFound
	}
	if err := checkVec("target", point); err != nil {
		return err
	}
	a.LookAt(point, yawOnly, maxRadians, c.lookPadding)
	return nil
}
