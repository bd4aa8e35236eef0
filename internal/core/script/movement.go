package script

import "github.com/go-gl/mathgl/mgl64"

// Movement operations: validated pass-throughs to the transform store. The
// self-space variants rotate the offset by the actor's live orientation
// before applying it, so "forward" always tracks the current facing.

// Pos returns the actor's world position.
func (c *Context) Pos() (mgl64.Vec3, error) {
	a, err := c.requireActor()
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return a.Position(), nil
}

// SetPos teleports the actor to a world position.
func (c *Context) SetPos(p mgl64.Vec3) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkVec("pos", p); err != nil {
		return err
	}
	a.SetPosition(p)
	return nil
}

// Move offsets the actor in its own frame.
func (c *Context) Move(offset mgl64.Vec3) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkVec("offset", offset); err != nil {
		return err
	}
	a.SetPosition(a.Position().Add(a.Rotation().Rotate(offset)))
	return nil
}

// MoveGlobal offsets the actor in world space, ignoring its orientation.
func (c *Context) MoveGlobal(offset mgl64.Vec3) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkVec("offset", offset); err != nil {
		return err
	}
	a.SetPosition(a.Position().Add(offset))
	return nil
}

// MoveForward advances the actor along its facing at the given rate. Like
// Spin, this is a per-tick nudge scaled by the frame delta.
func (c *Context) MoveForward(unitsPerSecond float64) error {
	return c.moveRate(unitsPerSecond, mgl64.Vec3{0, 0, 1})
}

// MoveBackward is MoveForward with the direction reversed.
func (c *Context) MoveBackward(unitsPerSecond float64) error {
	return c.moveRate(unitsPerSecond, mgl64.Vec3{0, 0, -1})
}

// MoveRight strafes along the actor's right axis.
func (c *Context) MoveRight(unitsPerSecond float64) error {
	return c.moveRate(unitsPerSecond, mgl64.Vec3{1, 0, 0})
}

// MoveLeft strafes along the actor's left axis.
func (c *Context) MoveLeft(unitsPerSecond float64) error {
	return c.moveRate(unitsPerSecond, mgl64.Vec3{-1, 0, 0})
}

// MoveUp moves along the actor's up axis.
func (c *Context) MoveUp(unitsPerSecond float64) error {
	return c.moveRate(unitsPerSecond, mgl64.Vec3{0, 1, 0})
}

// MoveDown moves along the actor's down axis.
func (c *Context) MoveDown(unitsPerSecond float64) error {
	return c.moveRate(unitsPerSecond, mgl64.Vec3{0, -1, 0})
}

func (c *Context) moveRate(unitsPerSecond float64, dir mgl64.Vec3) error {
	if err := checkFinite("unitsPerSecond", unitsPerSecond); err != nil {
		return err
	}
	return c.Move(dir.Mul(unitsPerSecond * c.DeltaTime()))
}

// Forward returns the actor's facing axis in world space.
func (c *Context) Forward() (mgl64.Vec3, error) {
	a, err := c.requireActor()
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return a.Forward(), nil
}

// Right returns the actor's right axis in world space.
func (c *Context) Right() (mgl64.Vec3, error) {
	a, err := c.requireActor()
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return a.Right(), nil
}

// Up returns the actor's up axis in world space.
func (c *Context) Up() (mgl64.Vec3, error) {
	a, err := c.requireActor()
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return a.Up(), nil
}
