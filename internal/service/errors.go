package service

import "errors"

var (
	// ErrNotFound: the session (or its task) does not exist.
	ErrNotFound = errors.New("review session not found")

	// ErrForbidden: the caller does not hold the reviewer capability.
	ErrForbidden = errors.New("user is not allowed to review")

	// ErrInvalidTransition: PASS/REVISE on a session that is not PENDING.
	ErrInvalidTransition = errors.New("review session is not pending")

	// ErrActionInFlight: another decision on the same session is still
	// being written.
	ErrActionInFlight = errors.New("another action is in flight for this session")
)
