// internal/app/features/match/routes.go
package match

import "github.com/go-chi/chi/v5"

// MountRoutes registers POST /match on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/match", h.ServeMatch)
}
