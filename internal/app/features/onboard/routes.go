// internal/app/features/onboard/routes.go
package onboard

import "github.com/go-chi/chi/v5"

// MountRoutes registers POST /onboard on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/onboard", h.ServeOnboard)
}
