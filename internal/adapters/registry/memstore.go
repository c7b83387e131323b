package registry

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain/model"
)

// MemStore is the in-memory Store implementation. A names slice alongside the
// map preserves insertion order for List; a RWMutex keeps the "no duplicate
// signup" invariant intact under concurrent requests.
type MemStore struct {
	mu         sync.RWMutex
	names      []string
	activities map[string]model.Activity
}

// NewMemStore creates an empty in-memory store and applies options.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		activities: make(map[string]model.Activity),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers a new activity under name. Used at seed time.
func (s *MemStore) Add(_ context.Context, name string, activity model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.activities[name]; ok {
		return ErrDuplicateActivity
	}
	s.names = append(s.names, name)
	s.activities[name] = activity.Clone()
	return nil
}

// List returns every activity in insertion order.
func (s *MemStore) List(_ context.Context) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.names))
	for _, name := range s.names {
		entries = append(entries, Entry{Name: name, Activity: s.activities[name].Clone()})
	}
	return entries
}

// Get returns a copy of the named activity.
func (s *MemStore) Get(_ context.Context, name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	return activity.Clone(), nil
}

// Exists reports registry membership for name.
func (s *MemStore) Exists(_ context.Context, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.activities[name]
	return ok
}

// AddParticipant appends email to the named activity's roster.
func (s *MemStore) AddParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	if activity.HasParticipant(email) {
		return ErrAlreadyRegistered
	}
	activity.Participants = append(activity.Participants, email)
	s.activities[name] = activity
	return nil
}

// RemoveParticipant removes email from the named activity's roster.
func (s *MemStore) RemoveParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			s.activities[name] = activity
			return nil
		}
	}
	return ErrParticipantNotFound
}

// Count returns the number of activities in the registry.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.activities)
}

// ParticipantCount returns the number of enrollments across all activities.
func (s *MemStore) ParticipantCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, activity := range s.activities {
		total += len(activity.Participants)
	}
	return total
}
