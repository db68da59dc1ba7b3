package models

import "errors"

// ErrInvalidTransition is returned by lifecycle methods when the requested
// operation is not legal from the entity's current status. Services wrap it
// with the offending status for context.
var ErrInvalidTransition = errors.New("invalid status transition")
