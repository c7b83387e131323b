// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"

	registry "github.com/mergington/activities/internal/adapters/registry"
	"github.com/mergington/activities/internal/seed"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Service owns the activity registry and exposes the operations the HTTP
// layer depends on.
type Service struct {
	mu sync.RWMutex

	store  registry.Store
	roster []registry.Entry

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRoster replaces the built-in activity seed.
func WithRoster(entries []registry.Entry) Option {
	return func(s *Service) {
		if len(entries) > 0 {
			s.roster = entries
		}
	}
}

// WithStore injects a pre-built store instead of the default in-memory one.
// When set, the roster is ignored.
func WithStore(store registry.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		roster: seed.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start seeds the registry and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		s.store = registry.NewMemStore(ctx, registry.WithActivities(s.roster...))
	}

	s.started = true
	s.logger.Info(ctx, "activities service started",
		logger.Int("activities", s.store.Count(ctx)),
		logger.Int("participants", s.store.ParticipantCount(ctx)),
	)

	metrics.UpdateActivityCount(s.store.Count(ctx))
	metrics.UpdateParticipantCount(s.store.ParticipantCount(ctx))
	return nil
}

// Stop marks the service as stopped. The registry has no external resources
// to release.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "activities service stopped")
}

// List returns every activity in registry insertion order.
func (s *Service) List(ctx context.Context) []registry.Entry {
	return s.store.List(ctx)
}

// Signup enrolls email in the named activity.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	if err := s.store.AddParticipant(ctx, name, email); err != nil {
		switch {
		case errors.Is(err, registry.ErrNotFound):
			metrics.RecordRejection("activity_not_found")
		case errors.Is(err, registry.ErrAlreadyRegistered):
			metrics.RecordRejection("already_registered")
		}
		return err
	}

	s.logger.Debug(ctx, "student signed up",
		logger.String("activity", name),
		logger.String("email", email),
	)
	metrics.RecordSignup()
	metrics.UpdateParticipantCount(s.store.ParticipantCount(ctx))
	return nil
}

// Remove unenrolls email from the named activity.
func (s *Service) Remove(ctx context.Context, name, email string) error {
	if err := s.store.RemoveParticipant(ctx, name, email); err != nil {
		switch {
		case errors.Is(err, registry.ErrNotFound):
			metrics.RecordRejection("activity_not_found")
		case errors.Is(err, registry.ErrParticipantNotFound):
			metrics.RecordRejection("participant_not_found")
		}
		return err
	}

	s.logger.Debug(ctx, "participant removed",
		logger.String("activity", name),
		logger.String("email", email),
	)
	metrics.RecordRemoval()
	metrics.UpdateParticipantCount(s.store.ParticipantCount(ctx))
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.store != nil {
		ctx := context.Background()
		activities := s.store.Count(ctx)
		participants := s.store.ParticipantCount(ctx)

		stats["activities"] = activities
		stats["participants"] = participants

		metrics.UpdateActivityCount(activities)
		metrics.UpdateParticipantCount(participants)
	}

	return stats
}
