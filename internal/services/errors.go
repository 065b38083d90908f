package services

import "errors"

// Operation failures the handlers translate to client-visible statuses.
// Anything else coming out of a service is a store failure and surfaces
// verbatim as a 400.
var (
	ErrMissingParameters = errors.New("Missing parameters")
	ErrInvalidProfile    = errors.New("Username or name format is not valid.")
	ErrInvalidEmail      = errors.New("Email is not valid.")
	ErrDuplicateEmail    = errors.New("Sorry, this email is already taken.")
	ErrRoomNotFound      = errors.New("Room not found")

	// ErrUnauthenticated covers bad credentials and unresolvable tokens;
	// ErrNotOwner covers an authenticated requester touching someone
	// else's room. Both read "Unauthorized" on the wire but map to
	// different checks.
	ErrUnauthenticated = errors.New("Unauthorized")
	ErrNotOwner        = errors.New("Unauthorized")
)
