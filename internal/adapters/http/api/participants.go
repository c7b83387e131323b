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

// RemoveDependencies defines the interface for participant removal.
type RemoveDependencies interface {
	Remove(ctx context.Context, name, email string) error
}

// RemoveHandler handles participant removal requests.
type RemoveHandler struct {
	deps RemoveDependencies
}

// NewRemoveHandler creates a new removal handler.
func NewRemoveHandler(deps RemoveDependencies) *RemoveHandler {
	return &RemoveHandler{deps: deps}
}

// HandleRemove handles DELETE /activities/{name}/participants/{email}
// requests. The email rides in the path here while signup takes it as a
// query parameter; the asymmetry is part of the published contract.
func (h *RemoveHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	name, email, ok := strings.Cut(rest, "/participants/")
	if !ok || name == "" || email == "" || strings.Contains(email, "/") {
		writeDetail(w, http.StatusNotFound, detailActivityNotFound)
		return
	}

	if err := h.deps.Remove(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, registry.ErrNotFound):
			writeDetail(w, http.StatusNotFound, detailActivityNotFound)
		case errors.Is(err, registry.ErrParticipantNotFound):
			writeDetail(w, http.StatusNotFound, detailParticipantNotFound)
		default:
			writeDetail(w, http.StatusInternalServerError, detailInternalError)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("%s removed from %s", email, name),
	})
}
