// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	registry "github.com/mergington/activities/internal/adapters/registry"
)

// ActivitiesDependencies defines the interface for listing activities.
type ActivitiesDependencies interface {
	List(ctx context.Context) []registry.Entry
}

// ActivitiesHandler handles activity listing requests.
type ActivitiesHandler struct {
	deps ActivitiesDependencies
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ActivitiesDependencies) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleList handles GET /activities requests. The response is a JSON object
// mapping activity name to its fields, keys in registry insertion order.
func (h *ActivitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, orderedActivities(h.deps.List(r.Context())))
}

// orderedActivities marshals registry entries as a JSON object while keeping
// registry insertion order. encoding/json would sort a map's keys.
type orderedActivities []registry.Entry

func (o orderedActivities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		activity, err := json.Marshal(e.Activity)
		if err != nil {
			return nil, err
		}
		buf.Write(activity)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
