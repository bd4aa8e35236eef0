package script

import (
	"fmt"

	"github.com/voxscript/voxscript/internal/core/players"
)

// Player lookup operations: read-only views over the session roster.
// Joining and leaving are host concerns; scripts only observe.

// Players returns the connected players in join order.
func (c *Context) Players() ([]*players.Player, error) {
	roster, err := c.requireRoster()
	if err != nil {
		return nil, err
	}
	return roster.All(), nil
}

// PlayerByID resolves a player by ID.
func (c *Context) PlayerByID(id string) (*players.Player, error) {
	roster, err := c.requireRoster()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: id must be non-empty", ErrInvalidArgument)
	}
	p, ok := roster.Get(id)
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

// PlayerByName resolves a player by display name.
func (c *Context) PlayerByName(name string) (*players.Player, error) {
	roster, err := c.requireRoster()
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name must be non-empty", ErrInvalidArgument)
	}
	p, ok := roster.GetByName(name)
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

// LocalPlayer returns the player this client controls.
func (c *Context) LocalPlayer() (*players.Player, error) {
	roster, err := c.requireRoster()
	if err != nil {
		return nil, err
	}
	p, ok := roster.Local()
	if !ok {
		return nil, ErrNoLocalPlayer
	}
	return p, nil
}

// MasterPlayer returns the session's master player: the client designated
// for minor shared bookkeeping, with no special game-state authority.
func (c *Context) MasterPlayer() (*players.Player, error) {
	roster, err := c.requireRoster()
	if err != nil {
		return nil, err
	}
	p, ok := roster.Master()
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

// IsMasterPlayer reports whether the local player is the master.
func (c *Context) IsMasterPlayer() (bool, error) {
	roster, err := c.requireRoster()
	if err != nil {
		return false, err
	}
	local, ok := roster.Local()
	if !ok {
		return false, ErrNoLocalPlayer
	}
	return roster.IsMaster(local.ID), nil
}
