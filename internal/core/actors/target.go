package actors

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrActorNotFound is returned when a Target references an actor that has
// despawned or never existed.
var ErrActorNotFound = errors.New("actor not found")

// Target is what look and aim operations point at: either a fixed world
// position or a live actor reference resolved at call time. The zero Target
// is invalid.
type Target struct {
	kind  targetKind
	point mgl64.Vec3
	actor ID
}

type targetKind uint8

const (
	targetNone targetKind = iota
	targetPoint
	targetActor
)

// PointTarget targets a fixed world-space position.
func PointTarget(p mgl64.Vec3) Target {
	return Target{kind: targetPoint, point: p}
}

// ActorTarget targets the live position of the referenced actor.
func ActorTarget(id ID) Target {
	return Target{kind: targetActor, actor: id}
}

// Valid reports whether the target was built by one of the constructors.
func (t Target) Valid() bool { return t.kind != targetNone }

// Resolve turns the target into a concrete world position. Actor references
// are looked up in the registry at call time, so a target held across ticks
// tracks the actor as it moves.
func (t Target) Resolve(reg *Registry) (mgl64.Vec3, error) {
	switch t.kind {
	case targetPoint:
		return t.point, nil
	case targetActor:
		a, ok := reg.Get(t.actor)
		if !ok {
			return mgl64.Vec3{}, ErrActorNotFound
		}
		return a.Position(), nil
	default:
		return mgl64.Vec3{}, ErrActorNotFound
	}
}
