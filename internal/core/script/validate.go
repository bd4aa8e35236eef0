package script

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/voxscript/voxscript/internal/core/geom"
)

// Argument validation. Every failure wraps ErrInvalidArgument and names the
// offending parameter; nothing is mutated before validation passes. A NaN is
// rejected rather than collapsed to zero.

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidArgument, name, v)
	}
	return nil
}

func checkVec(name string, v mgl64.Vec3) error {
	for i := 0; i < 3; i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return fmt.Errorf("%w: %s must be a finite 3-vector, got %v", ErrInvalidArgument, name, v)
		}
	}
	return nil
}

func checkAxis(name string, v mgl64.Vec3) error {
	if err := checkVec(name, v); err != nil {
		return err
	}
	if v.Len() < 1e-12 {
		return fmt.Errorf("%w: %s must be a non-zero axis", ErrInvalidArgument, name)
	}
	return nil
}

// checkRate validates a per-second speed. Speeds are magnitudes: a negative
// rate would invert the per-tick angle budget downstream, so it is rejected
// rather than reinterpreted.
func checkRate(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidArgument, name, v)
	}
	return nil
}

func checkQuat(name string, q mgl64.Quat) error {
	if !geom.WellFormed(q) {
		return fmt.Errorf("%w: %s must be a unit quaternion, got %v", ErrInvalidArgument, name, q)
	}
	return nil
}

func checkTarget(name string, t Target) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %s must be a point or an actor reference", ErrInvalidArgument, name)
	}
	return nil
}
