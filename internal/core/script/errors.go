package script

import "errors"

// Script API errors. Validation happens before any state mutation, so a
// returned error always means the actor's transform is untouched.
var (
	// Argument errors

	ErrInvalidArgument = errors.New("invalid argument")

	// Context errors

	ErrNoActor    = errors.New("no current actor")
	ErrNoRegistry = errors.New("no actor registry")
	ErrNoRoster   = errors.New("no player roster")

	// Lookup errors

	ErrActorNotFound  = errors.New("actor not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrNoLocalPlayer  = errors.New("no local player")
)
