package services

import "errors"

// Sentinel errors surfaced by the workflow services. Handlers match on these
// with errors.Is to pick the HTTP status; services wrap them with context.
var (
	ErrCaseNotFound        = errors.New("case not found")
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrSpecialtyNotFound   = errors.New("legal specialty not found")

	// The acting party's id does not match the expected owner (client on the
	// case, lawyer on the invitation)
	ErrOwnershipMismatch = errors.New("ownership mismatch")

	// A second invitation for a (case, lawyer) pair that already has one,
	// regardless of the first invitation's status
	ErrDuplicateInvitation = errors.New("lawyer already invited to this case")

	// The case row was modified by a concurrent command between load and
	// write; the caller should retry
	ErrStaleCase = errors.New("case was modified concurrently")

	// Request payload failed validation
	ErrInvalidInput = errors.New("invalid input")
)
