// internal/app/features/onboard/handler.go
package onboard

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/hackmatch/internal/app/store/profiles"
	"github.com/dalemusser/hackmatch/internal/app/system/auth"
	"github.com/dalemusser/hackmatch/internal/app/system/sanitize"
	"github.com/dalemusser/hackmatch/internal/app/system/timeouts"
	"github.com/dalemusser/hackmatch/internal/domain/models"
)

// Handler persists participant profiles submitted during onboarding.
type Handler struct {
	Profiles *profilestore.Store
	Log      *zap.Logger
}

// NewHandler creates a new onboarding handler.
func NewHandler(profiles *profilestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Profiles: profiles, Log: logger}
}

// onboardRequest is the JSON body for the onboarding endpoint.
// WantsLocalMatches is a pointer so a missing field can be told apart from
// an explicit false.
type onboardRequest struct {
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Skills            []string         `json:"skills"`
	PreferredRoles    []string         `json:"preferred_roles"`
	Location          *models.Location `json:"location"`
	WantsLocalMatches *bool            `json:"wants_local_matches"`
}

// ServeOnboard handles POST /onboard.
//
// Creates the caller's profile or merges the submitted fields into an
// existing one. Name, skills, preferred_roles and wants_local_matches are
// required; a missing location is stored as Unknown with zero coordinates
// so map and local-match queries always have something to work with.
func (h *Handler) ServeOnboard(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req onboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Name = sanitize.Text(req.Name)
	req.Skills = sanitize.List(req.Skills)
	req.PreferredRoles = sanitize.List(req.PreferredRoles)

	switch {
	case req.Name == "":
		writeError(w, http.StatusBadRequest, "name is required")
		return
	case len(req.Skills) == 0:
		writeError(w, http.StatusBadRequest, "skills are required")
		return
	case len(req.PreferredRoles) == 0:
		writeError(w, http.StatusBadRequest, "preferred_roles are required")
		return
	case req.WantsLocalMatches == nil:
		writeError(w, http.StatusBadRequest, "wants_local_matches is required")
		return
	}

	location := req.Location
	if location == nil {
		location = &models.Location{City: "Unknown", Country: "Unknown"}
	} else {
		location.City = sanitize.Text(location.City)
		location.Country = sanitize.Text(location.Country)
		if location.City == "" {
			location.City = "Unknown"
		}
		if location.Country == "" {
			location.Country = "Unknown"
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	update := profilestore.Update{
		Name:              req.Name,
		Email:             sanitize.Text(req.Email),
		Skills:            req.Skills,
		PreferredRoles:    req.PreferredRoles,
		Location:          location,
		WantsLocalMatches: req.WantsLocalMatches,
	}

	if err := h.Profiles.UpsertMerge(ctx, uid, update); err != nil {
		h.Log.Error("onboard: profile upsert failed",
			zap.String("uid", uid),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not save profile")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "success",
		"user_id": uid,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
