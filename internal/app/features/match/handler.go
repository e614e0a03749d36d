// internal/app/features/match/handler.go
package match

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/hackmatch/internal/app/matching"
	"github.com/dalemusser/hackmatch/internal/app/store/profiles"
	"github.com/dalemusser/hackmatch/internal/app/system/auth"
	"github.com/dalemusser/hackmatch/internal/app/system/timeouts"
)

// Finder produces teammate suggestions for a user. *matching.Matcher
// satisfies it.
type Finder interface {
	FindMatches(ctx context.Context, uid string) ([]matching.Result, error)
}

// Handler serves teammate suggestions.
type Handler struct {
	Matcher Finder
	Log     *zap.Logger
}

// NewHandler creates a new match handler.
func NewHandler(matcher Finder, logger *zap.Logger) *Handler {
	return &Handler{Matcher: matcher, Log: logger}
}

// matchRequest is the optional JSON body for the match endpoint.
// UserUID lets tooling request matches on another user's behalf; it
// defaults to the authenticated caller.
type matchRequest struct {
	UserUID string `json:"user_uid"`
}

// ServeMatch handles POST /match.
//
// Returns up to three suggested teammates as
//
//	{ "matches": [ {"name":…, "email":…, "score":…, "reason":…}, … ] }
//
// An empty candidate pool yields an empty matches array, not an error.
func (h *Handler) ServeMatch(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if r.Body != nil {
		var req matchRequest
		_ = json.NewDecoder(r.Body).Decode(&req) // body is optional
		if req.UserUID != "" {
			uid = req.UserUID
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Remote())
	defer cancel()

	results, err := h.Matcher.FindMatches(ctx, uid)
	if err != nil {
		if errors.Is(err, profilestore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.Log.Error("match: finding matches failed",
			zap.String("uid", uid),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not compute matches")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"matches": results})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
