package registry

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrNotFound            = errors.New("activity not found")
	ErrAlreadyRegistered   = errors.New("student already signed up for this activity")
	ErrParticipantNotFound = errors.New("participant not found in this activity")
	ErrDuplicateActivity   = errors.New("duplicate activity name")
)
