// Package registry defines the activity store interface and errors.
package registry

import (
	"context"

	"github.com/mergington/activities/internal/domain/model"
)

// Entry pairs an activity with its registry name.
type Entry struct {
	Name     string
	Activity model.Activity
}

// Store provides read/write access to the activity roster. The registry is
// the only authority for "activity exists".
type Store interface {
	// List returns every activity in insertion order.
	List(ctx context.Context) []Entry

	// Get returns a copy of the named activity.
	// Returns ErrNotFound if the activity is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Exists reports registry membership for name.
	Exists(ctx context.Context, name string) bool

	// AddParticipant appends email to the named activity's roster.
	// Returns ErrNotFound for an unknown activity and ErrAlreadyRegistered
	// when email is already enrolled.
	AddParticipant(ctx context.Context, name, email string) error

	// RemoveParticipant removes email from the named activity's roster.
	// Returns ErrNotFound for an unknown activity and ErrParticipantNotFound
	// when email is not enrolled.
	RemoveParticipant(ctx context.Context, name, email string) error

	// Count returns the number of activities in the registry.
	Count(ctx context.Context) int

	// ParticipantCount returns the number of enrollments across all activities.
	ParticipantCount(ctx context.Context) int
}
