package script

import "github.com/go-gl/mathgl/mgl64"

// Aiming operations. Aim state lives on the transform store (the host feeds
// it from input); scripts read it and may redirect it. There is no raycast
// here — hit resolution belongs to the host's physics.

// AimDir returns the actor's current aim direction, unit length.
func (c *Context) AimDir() (mgl64.Vec3, error) {
	a, err := c.requireActor()
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return a.AimDir(), nil
}

// AimOrigin returns the world-space origin of the actor's aim ray.
func (c *Context) AimOrigin() (mgl64.Vec3, error) {
	a, err := c.requireActor()
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return a.AimOrigin(), nil
}

// SetAimDir redirects the actor's aim. The direction must be finite and
// non-zero; it is stored normalized.
func (c *Context) SetAimDir(dir mgl64.Vec3) error {
	a, err := c.requireActor()
	if err != nil {
		return err
	}
	if err := checkAxis("dir", dir); err != nil {
		return err
	}
	a.SetAimDir(dir)
	return nil
}

// AimAt points the actor's aim at a target, resolving actor references
// through the registry.
func (c *Context) AimAt(target Target) error {
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
	dir := point.Sub(a.AimOrigin())
	if dir.Len() < 1e-12 {
		return nil
	}
	a.SetAimDir(dir)
	return nil
}
