package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestEuler_Conversion(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		e := EulerFromQuat(mgl64.QuatIdent())
		require.InDelta(t, 0, e.Yaw, 1e-12)
		require.InDelta(t, 0, e.Pitch, 1e-12)
		require.InDelta(t, 0, e.Roll, 1e-12)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		cases := []Euler{
			{Yaw: 0.5},
			{Pitch: 0.5},
			{Roll: 0.5},
			{Yaw: 0.7, Pitch: 0.3, Roll: -0.2},
			{Yaw: 3.0, Pitch: -1.2, Roll: 2.5},
			{Yaw: 6.0, Pitch: 1.5, Roll: -3.0},
		}
		for _, want := range cases {
			got := EulerFromQuat(QuatFromEuler(want))
			require.InDelta(t, WrapAngle(want.Yaw), got.Yaw, 1e-9, "yaw of %+v", want)
			require.InDelta(t, want.Pitch, got.Pitch, 1e-9, "pitch of %+v", want)
			require.InDelta(t, want.Roll, got.Roll, 1e-9, "roll of %+v", want)
		}
	})

	t.Run("SingleAxisMatchesAxisAngle", func(t *testing.T) {
		qe := QuatFromEuler(Euler{Yaw: math.Pi / 3})
		qa := mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{0, 1, 0})
		require.InDelta(t, 0, AngleBetween(qe, qa), 1e-9)

		qe = QuatFromEuler(Euler{Pitch: -0.4})
		qa = mgl64.QuatRotate(-0.4, mgl64.Vec3{1, 0, 0})
		require.InDelta(t, 0, AngleBetween(qe, qa), 1e-9)

		qe = QuatFromEuler(Euler{Roll: 1.1})
		qa = mgl64.QuatRotate(1.1, mgl64.Vec3{0, 0, 1})
		require.InDelta(t, 0, AngleBetween(qe, qa), 1e-9)
	})

	t.Run("GimbalLock", func(t *testing.T) {
		// Straight up: yaw and roll collapse onto one channel; the decode
		// attributes everything to yaw and reports roll 0.
		e := EulerFromQuat(QuatFromEuler(Euler{Yaw: 1.0, Pitch: math.Pi / 2}))
		require.InDelta(t, math.Pi/2, e.Pitch, 1e-9)
		require.InDelta(t, 1.0, e.Yaw, 1e-6)
		require.InDelta(t, 0, e.Roll, 1e-9)

		e = EulerFromQuat(QuatFromEuler(Euler{Yaw: 1.0, Pitch: -math.Pi / 2}))
		require.InDelta(t, -math.Pi/2, e.Pitch, 1e-9)
		require.InDelta(t, 1.0, e.Yaw, 1e-6)
		require.InDelta(t, 0, e.Roll, 1e-9)
	})

	t.Run("DecodeRanges", func(t *testing.T) {
		for yaw := -6.0; yaw < 6.0; yaw += 0.7 {
			e := EulerFromQuat(QuatFromEuler(Euler{Yaw: yaw, Pitch: 0.2, Roll: 0.1}))
			require.GreaterOrEqual(t, e.Yaw, 0.0)
			require.Less(t, e.Yaw, 2*math.Pi)
			require.LessOrEqual(t, math.Abs(e.Pitch), math.Pi/2)
		}
	})
}

func TestEuler_Policies(t *testing.T) {
	t.Run("WrapAngle", func(t *testing.T) {
		require.InDelta(t, 0, WrapAngle(0), 1e-12)
		require.InDelta(t, 1, WrapAngle(1), 1e-12)
		require.InDelta(t, 0.5, WrapAngle(2*math.Pi+0.5), 1e-12)
		require.InDelta(t, 2*math.Pi-0.3, WrapAngle(-0.3), 1e-12)
		require.InDelta(t, 0, WrapAngle(4*math.Pi), 1e-12)
	})

	t.Run("ClampPitch", func(t *testing.T) {
		require.InDelta(t, math.Pi/2, ClampPitch(2.0), 1e-12)
		require.InDelta(t, -math.Pi/2, ClampPitch(-3.0), 1e-12)
		require.InDelta(t, 0.4, ClampPitch(0.4), 1e-12)
	})
}
