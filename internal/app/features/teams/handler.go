// internal/app/features/teams/handler.go
package teams

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/hackmatch/internal/app/store/teams"
	"github.com/dalemusser/hackmatch/internal/app/system/auth"
	"github.com/dalemusser/hackmatch/internal/app/system/sanitize"
	"github.com/dalemusser/hackmatch/internal/app/system/timeouts"
)

// Handler serves team creation, membership and lookup.
type Handler struct {
	Teams *teamstore.Store
	Log   *zap.Logger
}

// NewHandler creates a new teams handler.
func NewHandler(teams *teamstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Teams: teams, Log: logger}
}

// createRequest is the JSON body for team creation.
type createRequest struct {
	Name       string `json:"name"`
	MaxMembers int    `json:"max_members"`
}

// joinRequest is the JSON body for joining a team. Role is the slot the
// joining user intends to fill.
type joinRequest struct {
	Role string `json:"role"`
}

// ServeCreate handles POST /teams.
//
// Creates a team with the caller as its first member and returns
// { "team_id": "team_ab12cd34" }. A caller already on a team gets 409.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Name = sanitize.Text(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "team name is required")
		return
	}
	if req.MaxMembers < 1 {
		writeError(w, http.StatusBadRequest, "max_members must be at least 1")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	teamID, err := h.Teams.Create(ctx, uid, req.Name, req.MaxMembers)
	if err != nil {
		h.respondStoreError(w, err, uid)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"team_id": teamID})
}

// ServeJoin handles POST /teams/{teamID}/join.
func (h *Handler) ServeJoin(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	teamID := chi.URLParam(r, "teamID")

	var req joinRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req) // role is optional
	}
	req.Role = sanitize.Text(req.Role)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Teams.Join(ctx, uid, teamID, req.Role); err != nil {
		h.respondStoreError(w, err, uid)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "joined", "team_id": teamID})
}

// ServeLeave handles POST /teams/{teamID}/leave.
// When the last member leaves, the team itself is removed.
func (h *Handler) ServeLeave(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	teamID := chi.URLParam(r, "teamID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Teams.Leave(ctx, uid, teamID); err != nil {
		h.respondStoreError(w, err, uid)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "left"})
}

// ServeGet handles GET /teams/{teamID}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	team, err := h.Teams.Get(ctx, teamID)
	if err != nil {
		h.respondStoreError(w, err, "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(team)
}

// respondStoreError maps store errors onto the HTTP surface.
func (h *Handler) respondStoreError(w http.ResponseWriter, err error, uid string) {
	switch {
	case errors.Is(err, teamstore.ErrNotFound):
		writeError(w, http.StatusNotFound, "Team not found")
	case errors.Is(err, teamstore.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, teamstore.ErrTeamFull):
		writeError(w, http.StatusConflict, "Team is full")
	case errors.Is(err, teamstore.ErrAlreadyOnTeam):
		writeError(w, http.StatusConflict, "User is already in a team")
	default:
		h.Log.Error("teams: store operation failed",
			zap.String("uid", uid),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "team operation failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
