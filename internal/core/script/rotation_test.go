package script

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/voxscript/voxscript/internal/core/actors"
	"github.com/voxscript/voxscript/internal/core/clock"
	"github.com/voxscript/voxscript/internal/core/geom"
)

const testDT = 0.1

func newTestContext(t *testing.T) (*Context, *actors.Actor) {
	t.Helper()
	reg := actors.NewRegistry()
	a := actors.NewActor("subject", mgl64.Vec3{})
	reg.Add(a)
	c := NewContext(Params{
		Actor:       a,
		Registry:    reg,
		Clock:       clock.NewFixed(testDT),
		LookPadding: 0.01,
	})
	return c, a
}

func requireSameOrientation(t *testing.T, want, got mgl64.Quat) {
	t.Helper()
	require.InDelta(t, 0, geom.AngleBetween(want, got), 1e-9)
}

func TestRotation_YawWrapLaw(t *testing.T) {
	c, _ := newTestContext(t)

	// With pitch and roll at zero the Euler view is unambiguous: reading
	// back after a write yields the input mapped into [0, 2π).
	for _, y := range []float64{0, 1, math.Pi, 2*math.Pi + 0.5, -0.3, 7.5, -9.0} {
		require.NoError(t, c.SetYaw(y))
		got, err := c.Yaw()
		require.NoError(t, err)
		require.InDelta(t, geom.WrapAngle(y), got, 1e-9, "setYaw(%v)", y)
	}
}

func TestRotation_PitchClampLaw(t *testing.T) {
	c, _ := newTestContext(t)

	for _, p := range []float64{0, 0.4, -0.4, math.Pi / 2, -math.Pi / 2, 2.0, -3.0} {
		require.NoError(t, c.SetPitch(p))
		got, err := c.Pitch()
		require.NoError(t, err)
		want := math.Max(-math.Pi/2, math.Min(math.Pi/2, p))
		require.InDelta(t, want, got, 1e-9, "setPitch(%v)", p)
	}
}

func TestRotation_SetRoll(t *testing.T) {
	c, _ := newTestContext(t)

	require.NoError(t, c.SetRoll(1.2))
	got, err := c.Roll()
	require.NoError(t, err)
	require.InDelta(t, 1.2, got, 1e-9)
}

func TestRotation_SingleChannelPreservesOthers(t *testing.T) {
	c, _ := newTestContext(t)

	require.NoError(t, c.SetPitch(0.3))
	require.NoError(t, c.SetRoll(-0.2))
	require.NoError(t, c.SetYaw(1.0))

	yaw, _ := c.Yaw()
	pitch, _ := c.Pitch()
	roll, _ := c.Roll()
	require.InDelta(t, 1.0, yaw, 1e-9)
	require.InDelta(t, 0.3, pitch, 1e-9)
	require.InDelta(t, -0.2, roll, 1e-9)
}

func TestRotation_IdentityReset(t *testing.T) {
	c, _ := newTestContext(t)

	require.NoError(t, c.SetYawPitchRoll(1.0, 0.5, -0.5))
	require.NoError(t, c.ResetRot())

	yaw, _ := c.Yaw()
	pitch, _ := c.Pitch()
	roll, _ := c.Roll()
	require.InDelta(t, 0, yaw, 1e-12)
	require.InDelta(t, 0, pitch, 1e-12)
	require.InDelta(t, 0, roll, 1e-12)
}

func TestRotation_SetYawPitchRollReplaces(t *testing.T) {
	c, _ := newTestContext(t)

	// Unlike the single-channel setters this does not read the prior
	// orientation back.
	require.NoError(t, c.SetYawPitchRoll(0.5, 0.4, 0.3))
	require.NoError(t, c.SetYawPitchRoll(1.0, 0, 0))

	pitch, _ := c.Pitch()
	roll, _ := c.Roll()
	require.InDelta(t, 0, pitch, 1e-9)
	require.InDelta(t, 0, roll, 1e-9)
}

func TestRotation_CompositionOrder(t *testing.T) {
	t.Run("TwoQuarterTurnsEqualHalfTurn", func(t *testing.T) {
		c, a := newTestContext(t)
		require.NoError(t, c.Turn(math.Pi/2))
		require.NoError(t, c.Turn(math.Pi/2))

		c2, a2 := newTestContext(t)
		require.NoError(t, c2.SetYawPitchRoll(math.Pi, 0, 0))

		requireSameOrientation(t, a2.Rotation(), a.Rotation())
	})

	t.Run("WorldVsSelfDiffer", func(t *testing.T) {
		// From a non-identity start, premultiply and postmultiply of the
		// same quaternion land on different orientations.
		q := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})

		cw, aw := newTestContext(t)
		require.NoError(t, cw.SetYaw(math.Pi/2))
		require.NoError(t, cw.ApplyQuaternion(q))

		cs, as := newTestContext(t)
		require.NoError(t, cs.SetYaw(math.Pi/2))
		require.NoError(t, cs.ApplyQuaternionSelf(q))

		require.Greater(t, geom.AngleBetween(aw.Rotation(), as.Rotation()), 0.1)
	})

	t.Run("WorldVsSelfAgreeFromIdentity", func(t *testing.T) {
		q := mgl64.QuatRotate(0.7, mgl64.Vec3{0, 1, 0})

		cw, aw := newTestContext(t)
		require.NoError(t, cw.ApplyQuaternion(q))

		cs, as := newTestContext(t)
		require.NoError(t, cs.ApplyQuaternionSelf(q))

		requireSameOrientation(t, aw.Rotation(), as.Rotation())
	})

	t.Run("RotateIsWorldSpace", func(t *testing.T) {
		axis := mgl64.Vec3{1, 0, 0}

		cr, ar := newTestContext(t)
		require.NoError(t, cr.SetYaw(math.Pi/2))
		require.NoError(t, cr.Rotate(axis, 0.8))

		cq, aq := newTestContext(t)
		require.NoError(t, cq.SetYaw(math.Pi/2))
		require.NoError(t, cq.ApplyQuaternion(geom.AxisAngle(axis, 0.8)))

		requireSameOrientation(t, aq.Rotation(), ar.Rotation())
	})
}

func TestRotation_SpinRate(t *testing.T) {
	rate := 1.3

	cs, as := newTestContext(t)
	require.NoError(t, cs.Spin(rate))

	ct, at := newTestContext(t)
	require.NoError(t, ct.Turn(rate*testDT))

	requireSameOrientation(t, at.Rotation(), as.Rotation())
}

func TestRotation_Slots(t *testing.T) {
	c, a := newTestContext(t)
	q := mgl64.QuatRotate(0.9, mgl64.Vec3{0, 1, 0})

	t.Run("SpawnRot", func(t *testing.T) {
		require.NoError(t, c.SetSpawnRot(q))
		requireSameOrientation(t, q, a.SpawnRotation())
		requireSameOrientation(t, mgl64.QuatIdent(), a.Rotation())
		require.NoError(t, c.ResetSpawnRot())
		requireSameOrientation(t, mgl64.QuatIdent(), a.SpawnRotation())
	})

	t.Run("LocalRot", func(t *testing.T) {
		require.NoError(t, c.SetLocalRot(q))
		requireSameOrientation(t, q, a.LocalRotation())
		require.NoError(t, c.ResetLocalRot())
		requireSameOrientation(t, mgl64.QuatIdent(), a.LocalRotation())
	})

	t.Run("WorldRot", func(t *testing.T) {
		require.NoError(t, c.SetRot(q))
		requireSameOrientation(t, q, a.Rotation())
	})
}

func TestRotation_LookAt(t *testing.T) {
	t.Run("SnapsToPoint", func(t *testing.T) {
		c, a := newTestContext(t)
		require.NoError(t, c.LookAt(PointTarget(mgl64.Vec3{5, 0, 0}), false))
		require.InDelta(t, 1, a.Forward().X(), 1e-9)
	})

	t.Run("SnapsToActor", func(t *testing.T) {
		c, a := newTestContext(t)
		other := actors.NewActor("mark", mgl64.Vec3{0, 0, -5})
		c.registry.Add(other)
		require.NoError(t, c.LookAt(ActorTarget(other.ID()), false))
		require.InDelta(t, -1, a.Forward().Z(), 1e-9)
	})

	t.Run("StraightUpDoesNotError", func(t *testing.T) {
		c, a := newTestContext(t)
		require.NoError(t, c.LookAt(PointTarget(mgl64.Vec3{0, 10, 0}), false))
		f := a.Forward()
		require.False(t, math.IsNaN(f.X()) || math.IsNaN(f.Y()) || math.IsNaN(f.Z()))
		require.InDelta(t, 1, f.Y(), 1e-9)
	})

	t.Run("YawOnlyKeepsPitchZero", func(t *testing.T) {
		c, _ := newTestContext(t)
		require.NoError(t, c.LookAt(PointTarget(mgl64.Vec3{3, 8, 3}), true))
		pitch, _ := c.Pitch()
		require.InDelta(t, 0, pitch, 1e-9)
	})

	t.Run("NonFinitePointRejected", func(t *testing.T) {
		c, a := newTestContext(t)
		require.NoError(t, c.SetYaw(1.0))
		before := a.Rotation()
		require.ErrorIs(t, c.LookAt(PointTarget(mgl64.Vec3{math.NaN(), 0, 5}), false), ErrInvalidArgument)
		require.ErrorIs(t, c.LookAt(PointTarget(mgl64.Vec3{0, math.Inf(1), 0}), false), ErrInvalidArgument)
		requireSameOrientation(t, before, a.Rotation())
		require.True(t, geom.WellFormed(a.Rotation()))
	})

	t.Run("StaleActorTarget", func(t *testing.T) {
		c, _ := newTestContext(t)
		ghost := actors.NewActor("ghost", mgl64.Vec3{1, 0, 0})
		c.registry.Add(ghost)
		c.registry.Remove(ghost.ID())
		require.ErrorIs(t, c.LookAt(ActorTarget(ghost.ID()), false), ErrActorNotFound)
	})
}

func TestRotation_LookToward(t *testing.T) {
	t.Run("BoundedPerTick", func(t *testing.T) {
		c, a := newTestContext(t)
		start := a.Rotation()
		rate := 1.0
		require.NoError(t, c.LookToward(PointTarget(mgl64.Vec3{10, 0, 0}), rate, false))
		require.InDelta(t, rate*testDT, geom.AngleBetween(start, a.Rotation()), 1e-9)
	})

	t.Run("NeverOvershoots", func(t *testing.T) {
		c, a := newTestContext(t)
		desired, ok := geom.Facing(mgl64.Vec3{1, 0, 0}, false)
		require.True(t, ok)
		// π/2 of total turn at 0.1 rad per tick: 16 ticks arrive, further
		// ticks must hold.
		for i := 0; i < 30; i++ {
			require.NoError(t, c.LookToward(PointTarget(mgl64.Vec3{10, 0, 0}), 1.0, false))
		}
		requireSameOrientation(t, desired, a.Rotation())
	})

	t.Run("LookTowardDirMatchesRate", func(t *testing.T) {
		c, a := newTestContext(t)
		start := a.Rotation()
		require.NoError(t, c.LookTowardDir(mgl64.Vec3{0, 0, -1}, 0.5, false))
		require.InDelta(t, 0.5*testDT, geom.AngleBetween(start, a.Rotation()), 1e-9)
	})

	t.Run("NegativeRateRejected", func(t *testing.T) {
		// A rate is a speed; a negative one must not flip the per-tick
		// budget into an instant snap.
		c, a := newTestContext(t)
		start := a.Rotation()
		require.ErrorIs(t, c.LookToward(PointTarget(mgl64.Vec3{10, 0, 0}), -1.0, false), ErrInvalidArgument)
		require.ErrorIs(t, c.LookTowardDir(mgl64.Vec3{1, 0, 0}, -1.0, false), ErrInvalidArgument)
		requireSameOrientation(t, start, a.Rotation())
	})

	t.Run("ZeroRateHolds", func(t *testing.T) {
		c, a := newTestContext(t)
		start := a.Rotation()
		require.NoError(t, c.LookToward(PointTarget(mgl64.Vec3{10, 0, 0}), 0, false))
		requireSameOrientation(t, start, a.Rotation())
	})
}

func TestRotation_LookDir(t *testing.T) {
	c, a := newTestContext(t)
	require.NoError(t, c.LookDir(mgl64.Vec3{0, 0, -1}, false))
	require.InDelta(t, -1, a.Forward().Z(), 1e-9)
}

func TestRotation_Validation(t *testing.T) {
	c, a := newTestContext(t)
	require.NoError(t, c.SetYaw(1.0))
	before := a.Rotation()

	t.Run("NaNAngleRejected", func(t *testing.T) {
		require.ErrorIs(t, c.SetYaw(math.NaN()), ErrInvalidArgument)
		require.ErrorIs(t, c.SetPitch(math.Inf(1)), ErrInvalidArgument)
		require.ErrorIs(t, c.Turn(math.NaN()), ErrInvalidArgument)
		require.ErrorIs(t, c.Spin(math.NaN()), ErrInvalidArgument)
		require.ErrorIs(t, c.SetYawPitchRoll(0, math.NaN(), 0), ErrInvalidArgument)
	})

	t.Run("BadAxisRejected", func(t *testing.T) {
		require.ErrorIs(t, c.TurnAbout(1.0, mgl64.Vec3{}), ErrInvalidArgument)
		require.ErrorIs(t, c.Rotate(mgl64.Vec3{math.NaN(), 0, 0}, 1.0), ErrInvalidArgument)
		require.ErrorIs(t, c.LookDir(mgl64.Vec3{}, false), ErrInvalidArgument)
	})

	t.Run("MalformedQuaternionRejected", func(t *testing.T) {
		require.ErrorIs(t, c.SetRot(mgl64.Quat{}), ErrInvalidArgument)
		require.ErrorIs(t, c.SetRot(mgl64.Quat{W: 2}), ErrInvalidArgument)
		require.ErrorIs(t, c.SetLocalRot(mgl64.Quat{W: math.NaN()}), ErrInvalidArgument)
		require.ErrorIs(t, c.SetSpawnRot(mgl64.Quat{W: 0.5}), ErrInvalidArgument)
		require.ErrorIs(t, c.ApplyQuaternion(mgl64.Quat{}), ErrInvalidArgument)
		require.ErrorIs(t, c.ApplyQuaternionSelf(mgl64.Quat{}), ErrInvalidArgument)
	})

	t.Run("ZeroTargetRejected", func(t *testing.T) {
		require.ErrorIs(t, c.LookAt(Target{}, false), ErrInvalidArgument)
	})

	t.Run("NoMutationOnFailure", func(t *testing.T) {
		requireSameOrientation(t, before, a.Rotation())
	})

	t.Run("NoActor", func(t *testing.T) {
		empty := NewContext(Params{Clock: clock.NewFixed(testDT)})
		_, err := empty.Yaw()
		require.ErrorIs(t, err, ErrNoActor)
		require.ErrorIs(t, empty.SetYaw(1), ErrNoActor)
	})
}
