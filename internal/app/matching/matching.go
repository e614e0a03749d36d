// internal/app/matching/matching.go

// Package matching ranks unaffiliated users as teammate suggestions for a
// requesting user. Ranking runs through a Strategy: the remote strategy
// asks an LLM completion endpoint, the local strategy is a deterministic
// scorer, and Fallback composes the two so a remote failure degrades to the
// local scorer instead of failing the request.
package matching

import (
	"context"

	"github.com/dalemusser/hackmatch/internal/domain/models"
)

// MaxSuggestions caps every ranking result list.
const MaxSuggestions = 3

// Result is one teammate suggestion. Results are ephemeral: returned to the
// caller, never persisted. Remote scores are on the model's 0-100 scale;
// local scores are unbounded formula values. Callers cannot tell which
// strategy produced a list.
type Result struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Strategy ranks the candidate pool for a requester and returns at most
// MaxSuggestions results in descending score order.
type Strategy interface {
	Rank(ctx context.Context, requester *models.UserProfile, pool []models.UserProfile) ([]Result, error)
}
