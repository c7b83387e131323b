// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	registry "github.com/mergington/activities/internal/adapters/registry"
)

// SignupDependencies defines the interface for signup operations.
type SignupDependencies interface {
	Signup(ctx context.Context, name, email string) error
}

// SignupHandler handles signup requests.
type SignupHandler struct {
	deps SignupDependencies
}

// NewSignupHandler creates a new signup handler.
func NewSignupHandler(deps SignupDependencies) *SignupHandler {
	return &SignupHandler{deps: deps}
}

// HandleSignup handles POST /activities/{name}/signup?email=E requests.
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	// Extract the activity name between /activities/ and /signup. net/http
	// has already percent-decoded the path, so names with spaces work.
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	name := strings.TrimSuffix(rest, "/signup")
	if name == "" || strings.Contains(name, "/") {
		writeDetail(w, http.StatusNotFound, detailActivityNotFound)
		return
	}

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeDetail(w, http.StatusBadRequest, detailEmailRequired)
		return
	}

	if err := h.deps.Signup(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, registry.ErrNotFound):
			writeDetail(w, http.StatusNotFound, detailActivityNotFound)
		case errors.Is(err, registry.ErrAlreadyRegistered):
			writeDetail(w, http.StatusBadRequest, detailAlreadyRegistered)
		default:
			writeDetail(w, http.StatusInternalServerError, detailInternalError)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("%s signed up for %s", email, name),
	})
}
