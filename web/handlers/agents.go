package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/studi-app/studi-api/pkg/types"
)

// AgentBackend is the synthesis interface the agent routes depend on.
// The canned responder implements it today; a real agent system can be
// swapped in without touching the handlers.
type AgentBackend interface {
	Respond(ctx context.Context, query string, queryContext map[string]any) (*types.AgentResponse, error)
	Plan(ctx context.Context, query string) (*types.AgentPlan, error)
	TaskStatus(taskID string) *types.AgentTask
}

// AgentHandlers contains HTTP handlers for the agent facade routes.
type AgentHandlers struct {
	backend AgentBackend
}

// NewAgentHandlers creates a new AgentHandlers instance.
func NewAgentHandlers(backend AgentBackend) *AgentHandlers {
	return &AgentHandlers{backend: backend}
}

// Query handles POST /api/agents/query - synthesize a response for a
// free-text query after the simulated processing delay.
func (h *AgentHandlers) Query(w http.ResponseWriter, r *http.Request) {
	var query types.AgentQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	resp, err := h.backend.Respond(r.Context(), query.Query, query.Context)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client went away; nothing to write.
			return
		}
		log.Printf("ERROR: agent query failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreatePlan handles POST /api/agents/plan - generate the fixed plan for
// a complex task.
func (h *AgentHandlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var query types.AgentQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	plan, err := h.backend.Plan(r.Context(), query.Query)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Printf("ERROR: agent plan failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// GetTaskStatus handles GET /api/agents/tasks/{task_id} - report the
// status of a long-running task.
func (h *AgentHandlers) GetTaskStatus(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("task_id")
	if taskID == "" {
		respondError(w, http.StatusBadRequest, "Task ID is required")
		return
	}

	respondJSON(w, http.StatusOK, h.backend.TaskStatus(taskID))
}
