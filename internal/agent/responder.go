// Package agent implements the interactive query facade: canned responses
// selected by keyword rules, a fixed plan generator, and a task status
// stub. The synthesis is a deliberate stand-in for a real agent system;
// the rule table and circuit breaker form the seam where one would plug in
// without touching callers.
package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/studi-app/studi-api/pkg/types"
)

// rule maps a lowercase query substring to a response template. Rules are
// evaluated in order; the first match wins.
type rule struct {
	keyword string
	respond func(query string) types.AgentResponse
}

// Responder synthesizes agent responses with simulated latency. It is safe
// for concurrent use: the rule table is immutable and the artificial delay
// suspends only the calling request.
type Responder struct {
	rules      []rule
	fallback   func(query string) types.AgentResponse
	queryDelay time.Duration
	planDelay  time.Duration
	breaker    *Breaker
}

// Config controls the simulated latency of the responder.
type Config struct {
	QueryDelay time.Duration // delay before a query response
	PlanDelay  time.Duration // delay before a plan response
}

// DefaultConfig returns the production latency settings.
func DefaultConfig() Config {
	return Config{
		QueryDelay: 1 * time.Second,
		PlanDelay:  1500 * time.Millisecond,
	}
}

// NewResponder creates a responder with the built-in rule table.
func NewResponder(cfg Config) *Responder {
	return &Responder{
		rules: []rule{
			{keyword: "study guide", respond: studyGuideResponse},
			{keyword: "assignment", respond: assignmentResponse},
		},
		fallback:   genericResponse,
		queryDelay: cfg.QueryDelay,
		planDelay:  cfg.PlanDelay,
		breaker:    NewBreaker(),
	}
}

// Respond synthesizes a response for the query after the simulated
// processing delay. The caller-provided context mapping is accepted for
// interface compatibility with a real agent backend but does not influence
// the canned synthesis.
func (r *Responder) Respond(ctx context.Context, query string, _ map[string]any) (*types.AgentResponse, error) {
	if err := sleep(ctx, r.queryDelay); err != nil {
		return nil, err
	}

	result, err := r.breaker.Execute(ctx, func() (any, error) {
		resp := r.synthesize(query)
		return &resp, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*types.AgentResponse), nil
}

// synthesize runs the rule table: first matching keyword wins, otherwise
// the fallback echoes the query.
func (r *Responder) synthesize(query string) types.AgentResponse {
	lowered := strings.ToLower(query)
	for _, rule := range r.rules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.respond(query)
		}
	}
	return r.fallback(query)
}

// Plan returns the fixed four-step plan after the simulated delay. No
// plan is ever executed; the content is a stand-in.
func (r *Responder) Plan(ctx context.Context, query string) (*types.AgentPlan, error) {
	if err := sleep(ctx, r.planDelay); err != nil {
		return nil, err
	}

	return &types.AgentPlan{
		Steps: []types.PlanStep{
			{StepID: "1", Description: "Analyze the query and identify key topics", Status: types.StepCompleted},
			{StepID: "2", Description: "Retrieve relevant information from knowledge base", Status: types.StepInProgress},
			{StepID: "3", Description: "Generate comprehensive response", Status: types.StepPending},
			{StepID: "4", Description: "Review and refine response for accuracy", Status: types.StepPending},
		},
		Context: map[string]any{
			"query":      query,
			"plan_id":    "plan-123456",
			"created_at": "2023-06-15T10:30:00Z",
		},
	}, nil
}

// TaskStatus reports the status of a task. No task ever actually runs, so
// every task id reports the same fixed in-progress state.
func (r *Responder) TaskStatus(taskID string) *types.AgentTask {
	return &types.AgentTask{
		TaskID:   taskID,
		Status:   types.StepInProgress,
		Progress: 0.65,
		Result:   nil,
	}
}

func studyGuideResponse(string) types.AgentResponse {
	return types.AgentResponse{
		Response: "I've created a study guide for your topic. Here are the key points to focus on...",
		Sources: []types.Source{
			{Title: "Textbook Chapter 5", URL: "https://example.com/textbook/chapter5"},
			{Title: "Lecture Notes Week 3", URL: "https://example.com/lectures/week3"},
		},
		Context: map[string]any{
			"topic":      "Machine Learning Fundamentals",
			"created_at": "2023-06-15T10:30:00Z",
		},
	}
}

func assignmentResponse(string) types.AgentResponse {
	return types.AgentResponse{
		Response: "I'll help you with this assignment. Let's break it down step by step...",
		Sources: []types.Source{
			{Title: "Assignment Guidelines", URL: "https://example.com/assignments/guidelines"},
			{Title: "Related Examples", URL: "https://example.com/examples"},
		},
		Context: map[string]any{
			"assignment_type": "Problem Set",
			"due_date":        "2023-06-20T23:59:00Z",
		},
	}
}

func genericResponse(query string) types.AgentResponse {
	return types.AgentResponse{
		Response: fmt.Sprintf("I understand you're asking about: %s. How can I help you with this topic?", query),
		Sources:  []types.Source{},
		Context: map[string]any{
			"query_type": "general",
			"timestamp":  "2023-06-15T10:30:00Z",
		},
	}
}

// sleep waits for the given duration or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
