package script

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/voxscript/voxscript/internal/core/actors"
	"github.com/voxscript/voxscript/internal/core/clock"
	"github.com/voxscript/voxscript/internal/core/observability/log"
	"github.com/voxscript/voxscript/internal/core/players"
)

// Target aliases the actor package's tagged target union so scripts import
// only this package.
type Target = actors.Target

// PointTarget targets a fixed world position.
func PointTarget(p mgl64.Vec3) Target { return actors.PointTarget(p) }

// ActorTarget targets the live position of another actor.
func ActorTarget(id actors.ID) Target { return actors.ActorTarget(id) }

// Synthetic target distances for the direction-based look operations: a
// direction is turned into a point target ahead of the actor so the
// point-based facing path can be reused.
const (
	lookDirDistance       = 10
	lookTowardDirDistance = 100
)

// Context is everything a script call needs: the actor the script is
// attached to, the host collaborators, and frame timing. It is handed to the
// script explicitly on every tick — there is no ambient process-wide
// instance, which keeps tests deterministic and actors independent.
//
// All operations are synchronous and complete within the tick. Sequential
// calls within one tick observe each other's effects, because every
// operation reads the live transform before acting on it.
type Context struct {
	actor    *actors.Actor
	registry *actors.Registry
	roster   *players.Roster
	clock    clock.Clock
	logger   log.Log

	// lookPadding is the dead-zone distance for look operations.
	lookPadding float64
}

// Params configures a Context.
type Params struct {
	Actor       *actors.Actor
	Registry    *actors.Registry
	Roster      *players.Roster
	Clock       clock.Clock
	Logger      log.Log
	LookPadding float64
}

// NewContext builds a script context for one actor.
func NewContext(p Params) *Context {
	logger := p.Logger
	if logger == nil {
		logger = log.Provide()
	}
	return &Context{
		actor:       p.Actor,
		registry:    p.Registry,
		roster:      p.Roster,
		clock:       p.Clock,
		logger:      logger,
		lookPadding: p.LookPadding,
	}
}

// Actor exposes the current actor to the host; scripts normally go through
// the operation methods instead.
func (c *Context) Actor() *actors.Actor { return c.actor }

// DeltaTime returns the seconds covered by the current tick.
func (c *Context) DeltaTime() float64 {
	if c.clock == nil {
		return 0
	}
	return c.clock.Delta()
}

// Log returns the context logger, scoped to the current actor.
func (c *Context) Log() log.Log { return c.logger }

func (c *Context) requireActor() (*actors.Actor, error) {
	if c.actor == nil {
		return nil, ErrNoActor
	}
	return c.actor, nil
}

func (c *Context) requireRegistry() (*actors.Registry, error) {
	if c.registry == nil {
		return nil, ErrNoRegistry
	}
	return c.registry, nil
}

func (c *Context) requireRoster() (*players.Roster, error) {
	if c.roster == nil {
		return nil, ErrNoRoster
	}
	return c.roster, nil
}
