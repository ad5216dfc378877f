package workflow

import "errors"

var (
	// ErrInvalidRange is returned when a leave end date precedes its start date.
	ErrInvalidRange = errors.New("workflow: end date precedes start date")

	// ErrInvalidTarget is returned when a swap requester targets themselves.
	ErrInvalidTarget = errors.New("workflow: requester and target are the same employee")

	// ErrInvalidShift is returned when a referenced shift is missing, not owned
	// by the stated party, or lies in the past.
	ErrInvalidShift = errors.New("workflow: shift missing, mis-owned, or in the past")

	// ErrUnauthorized is returned when the actor's role or identity does not
	// satisfy the transition's requirement.
	ErrUnauthorized = errors.New("workflow: actor not permitted for this transition")

	// ErrTerminalState is returned for any transition attempted from a
	// terminal status.
	ErrTerminalState = errors.New("workflow: request already in a terminal state")

	// ErrInvalidTransition is returned when the request is live but not in the
	// state the operation applies to, such as deciding a swap nobody accepted.
	ErrInvalidTransition = errors.New("workflow: transition not legal from current state")
)
