// internal/app/features/mapplayers/routes.go
package mapplayers

import "github.com/go-chi/chi/v5"

// MountRoutes registers GET /map/players on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/map/players", h.ServeMapPlayers)
}
