package smoke

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/mergington/activities/pkg/logger"
)

// Run executes the smoke flow against a running server: list, sign up a
// batch of generated students, reject a duplicate, then remove everyone and
// verify the roster returned to its starting size.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Named("smoke")
	client := NewClient(cfg.BaseURL, cfg.Timeout)

	activities, err := client.Activities(ctx)
	if err != nil {
		return fmt.Errorf("initial roster fetch: %w", err)
	}
	target, ok := activities[cfg.Activity]
	if !ok {
		return fmt.Errorf("activity %q not found on server", cfg.Activity)
	}
	baseline := len(target.Participants)
	log.Info(ctx, "baseline roster fetched",
		logger.String("activity", cfg.Activity),
		logger.Int("participants", baseline),
	)

	emails := generateEmails(cfg.Students)

	for _, email := range emails {
		res, err := client.Signup(ctx, cfg.Activity, email)
		if err != nil {
			return fmt.Errorf("signup %s: %w", email, err)
		}
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("signup %s: status %d (%s)", email, res.StatusCode, res.Detail)
		}
	}
	log.Info(ctx, "signups accepted", logger.Int("students", len(emails)))

	// The first student signing up again must be rejected.
	dup, err := client.Signup(ctx, cfg.Activity, emails[0])
	if err != nil {
		return fmt.Errorf("duplicate signup: %w", err)
	}
	if dup.StatusCode != http.StatusBadRequest {
		return fmt.Errorf("duplicate signup: expected 400, got %d", dup.StatusCode)
	}
	log.Info(ctx, "duplicate signup rejected", logger.String("detail", dup.Detail))

	activities, err = client.Activities(ctx)
	if err != nil {
		return fmt.Errorf("roster fetch after signups: %w", err)
	}
	if got := len(activities[cfg.Activity].Participants); got != baseline+len(emails) {
		return fmt.Errorf("roster size after signups: expected %d, got %d", baseline+len(emails), got)
	}

	for _, email := range emails {
		res, err := client.Remove(ctx, cfg.Activity, email)
		if err != nil {
			return fmt.Errorf("remove %s: %w", email, err)
		}
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("remove %s: status %d (%s)", email, res.StatusCode, res.Detail)
		}
	}
	log.Info(ctx, "removals accepted", logger.Int("students", len(emails)))

	// Removing an already-removed student must report a missing participant.
	gone, err := client.Remove(ctx, cfg.Activity, emails[0])
	if err != nil {
		return fmt.Errorf("repeat removal: %w", err)
	}
	if gone.StatusCode != http.StatusNotFound {
		return fmt.Errorf("repeat removal: expected 404, got %d", gone.StatusCode)
	}

	activities, err = client.Activities(ctx)
	if err != nil {
		return fmt.Errorf("final roster fetch: %w", err)
	}
	if got := len(activities[cfg.Activity].Participants); got != baseline {
		return fmt.Errorf("final roster size: expected %d, got %d", baseline, got)
	}

	log.Info(ctx, "smoke run passed",
		logger.String("activity", cfg.Activity),
		logger.Int("students", len(emails)),
	)
	return nil
}

// generateEmails returns n unique student addresses.
func generateEmails(n int) []string {
	emails := make([]string, n)
	for i := range emails {
		emails[i] = fmt.Sprintf("student-%s@mergington.edu", uuid.NewString())
	}
	return emails
}
