// Package model contains domain models passed between layers.
package model

import "errors"

// Activity represents one extracurricular offering.
// JSON tags mirror the wire schema for GET /activities.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"` // capacity, informational only
	Participants    []string `json:"participants"`     // enrolled student emails, signup order
}

// Validation errors for seeded or file-provided activities.
var (
	ErrMissingDescription = errors.New("activity description must not be empty")
	ErrInvalidCapacity    = errors.New("activity capacity must be positive")
)

// Validate checks the structural invariants of an activity definition.
func (a Activity) Validate() error {
	if a.Description == "" {
		return ErrMissingDescription
	}
	if a.MaxParticipants <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}

// HasParticipant reports whether email is already enrolled.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate shared state through the
// participants slice.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
