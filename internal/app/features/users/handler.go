// internal/app/features/users/handler.go
package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/hackmatch/internal/app/store/profiles"
	"github.com/dalemusser/hackmatch/internal/app/system/auth"
	"github.com/dalemusser/hackmatch/internal/app/system/timeouts"
)

// Handler serves the authenticated caller's own profile.
type Handler struct {
	Profiles *profilestore.Store
	Log      *zap.Logger
}

// NewHandler creates a new users handler.
func NewHandler(profiles *profilestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Profiles: profiles, Log: logger}
}

// ServeMe handles GET /users/me.
// Returns the caller's stored profile, or 404 when they have not onboarded.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Profiles.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, profilestore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.Log.Error("users: profile lookup failed",
			zap.String("uid", uid),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load profile")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(user)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
