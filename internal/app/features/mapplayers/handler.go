// internal/app/features/mapplayers/handler.go
package mapplayers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/hackmatch/internal/app/store/profiles"
	"github.com/dalemusser/hackmatch/internal/app/system/timeouts"
)

// Handler serves the map view of players open to local matching.
type Handler struct {
	Profiles *profilestore.Store
	Log      *zap.Logger
}

// NewHandler creates a new map handler.
func NewHandler(profiles *profilestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Profiles: profiles, Log: logger}
}

// ServeMapPlayers handles GET /map/players.
//
// Lists users who opted into local matching and have a stored location, as
// { "players": [ {"uid":…, "name":…, "location":…, "skills":…}, … ] }.
func (h *Handler) ServeMapPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	players, err := h.Profiles.MapPlayers(ctx)
	if err != nil {
		h.Log.Error("mapplayers: query failed", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "could not load players"})
		return
	}
	if players == nil {
		players = []profilestore.MapPlayer{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"players": players})
}
