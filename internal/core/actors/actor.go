package actors

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/voxscript/voxscript/internal/core/geom"
)

// ID uniquely identifies an actor for its lifetime.
type ID string

// NewID generates a fresh actor ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Actor is the host-side transform store for one game object. It owns the
// canonical orientation quaternions; the script façade reads and writes them
// through the accessors and never caches rotation state of its own.
//
// An actor carries three independently addressable rotation slots — world,
// spawn and parent-relative local — all identity at spawn. Setters commit
// the given quaternion verbatim; argument validation is the caller's job.
type Actor struct {
	id   ID
	name string

	position mgl64.Vec3
	velocity mgl64.Vec3

	rotation      mgl64.Quat
	spawnRotation mgl64.Quat
	localRotation mgl64.Quat

	aimOrigin mgl64.Vec3
	aimDir    mgl64.Vec3
}

// NewActor creates an actor at the given position with identity rotation in
// every slot.
func NewActor(name string, position mgl64.Vec3) *Actor {
	return &Actor{
		id:            NewID(),
		name:          name,
		position:      position,
		rotation:      mgl64.QuatIdent(),
		spawnRotation: mgl64.QuatIdent(),
		localRotation: mgl64.QuatIdent(),
		aimDir:        geom.Forward,
	}
}

func (a *Actor) ID() ID       { return a.id }
func (a *Actor) Name() string { return a.name }

func (a *Actor) Position() mgl64.Vec3     { return a.position }
func (a *Actor) SetPosition(p mgl64.Vec3) { a.position = p }

func (a *Actor) Velocity() mgl64.Vec3     { return a.velocity }
func (a *Actor) SetVelocity(v mgl64.Vec3) { a.velocity = v }

func (a *Actor) Rotation() mgl64.Quat     { return a.rotation }
func (a *Actor) SetRotation(q mgl64.Quat) { a.rotation = q }

func (a *Actor) SpawnRotation() mgl64.Quat     { return a.spawnRotation }
func (a *Actor) SetSpawnRotation(q mgl64.Quat) { a.spawnRotation = q }

func (a *Actor) LocalRotation() mgl64.Quat     { return a.localRotation }
func (a *Actor) SetLocalRotation(q mgl64.Quat) { a.localRotation = q }

// AimOrigin is the world-space origin of the actor's aim ray.
func (a *Actor) AimOrigin() mgl64.Vec3 { return a.position.Add(a.aimOrigin) }

// SetAimOffset sets the aim origin as an offset from the actor position.
func (a *Actor) SetAimOffset(off mgl64.Vec3) { a.aimOrigin = off }

// AimDir is the actor's current aim direction, unit length.
func (a *Actor) AimDir() mgl64.Vec3 { return a.aimDir }

// SetAimDir stores a normalized aim direction. dir must be non-zero; the
// façade validates before calling.
func (a *Actor) SetAimDir(dir mgl64.Vec3) { a.aimDir = dir.Normalize() }

// Forward returns the actor's facing axis in world space.
func (a *Actor) Forward() mgl64.Vec3 { return a.rotation.Rotate(geom.Forward) }

// Right returns the actor's right axis in world space.
func (a *Actor) Right() mgl64.Vec3 { return a.rotation.Rotate(mgl64.Vec3{1, 0, 0}) }

// Up returns the actor's up axis in world space.
func (a *Actor) Up() mgl64.Vec3 { return a.rotation.Rotate(geom.Up) }

// LookAt reorients the actor to face point. With yawOnly the facing is
// constrained to the horizontal plane. maxRadians bounds how far the
// orientation may advance this call (negative = snap instantly); padding is
// a dead zone — targets closer than padding leave the orientation untouched.
//
// A point straight above or below the actor is legal: pitch saturates at
// ±π/2 (see geom.Facing) and the call still completes without error.
func (a *Actor) LookAt(point mgl64.Vec3, yawOnly bool, maxRadians, padding float64) {
	dir := point.Sub(a.position)
	if dir.Len() <= padding {
		return
	}
	desired, ok := geom.Facing(dir, yawOnly)
	if !ok {
		return
	}
	a.rotation = geom.RotateToward(a.rotation, desired, maxRadians)
}

// Integrate advances the actor's position by its velocity over dt seconds.
func (a *Actor) Integrate(dt float64) {
	a.position = a.position.Add(a.velocity.Mul(dt))
}
