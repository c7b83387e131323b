// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	registry "github.com/mergington/activities/internal/adapters/registry"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// List returns every activity in registry insertion order.
	List(ctx context.Context) []registry.Entry

	// Signup enrolls email in the named activity.
	Signup(ctx context.Context, name, email string) error

	// Remove unenrolls email from the named activity.
	Remove(ctx context.Context, name, email string) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	activitiesHandler *ActivitiesHandler
	signupHandler     *SignupHandler
	removeHandler     *RemoveHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		activitiesHandler: NewActivitiesHandler(deps),
		signupHandler:     NewSignupHandler(deps),
		removeHandler:     NewRemoveHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.HandleFunc("/stats", RequestIDMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.HandleFunc("/activities", RequestIDMiddleware(MetricsMiddleware(s.activitiesHandler.HandleList, "activities")))
	mux.HandleFunc("/activities/", RequestIDMiddleware(s.routeActivityPath))
}

// routeActivityPath dispatches the two per-activity operations that share the
// /activities/{name}/... prefix. The path arrives percent-decoded.
func (s *Server) routeActivityPath(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasSuffix(r.URL.Path, "/signup"):
		MetricsMiddleware(s.signupHandler.HandleSignup, "signup")(w, r)
	case strings.Contains(r.URL.Path, "/participants/"):
		MetricsMiddleware(s.removeHandler.HandleRemove, "remove_participant")(w, r)
	default:
		http.NotFound(w, r)
	}
}

// messageResponse is the success body for signup and removal.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse is the error body for every validation failure.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// Wire messages for registry failures.
const (
	detailActivityNotFound    = "Activity not found"
	detailAlreadyRegistered   = "Student already signed up for this activity"
	detailParticipantNotFound = "Participant not found in this activity"
	detailEmailRequired       = "Email is required"
	detailInternalError       = "Internal server error"
)
