// internal/app/features/search/handler.go
package search

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/hackmatch/internal/app/store/profiles"
	"github.com/dalemusser/hackmatch/internal/app/system/normalize"
	"github.com/dalemusser/hackmatch/internal/app/system/timeouts"
	"github.com/dalemusser/hackmatch/internal/domain/models"
)

// Handler serves user directory searches.
type Handler struct {
	Profiles *profilestore.Store
	Log      *zap.Logger
}

// NewHandler creates a new search handler.
func NewHandler(profiles *profilestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Profiles: profiles, Log: logger}
}

// ServeUserSearch handles GET /search/users?skill=…&city=….
//
// Both filters are optional and combined with AND. Matching is exact on the
// stored values; an empty result set returns an empty users array.
func (h *Handler) ServeUserSearch(w http.ResponseWriter, r *http.Request) {
	skill := normalize.QueryParam(r.URL.Query().Get("skill"))
	city := normalize.QueryParam(r.URL.Query().Get("city"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	found, err := h.Profiles.Search(ctx, skill, city)
	if err != nil {
		h.Log.Error("search: user query failed",
			zap.String("skill", skill),
			zap.String("city", city),
			zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "search failed"})
		return
	}
	if found == nil {
		found = []models.UserProfile{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"users": found})
}
