// internal/app/features/search/routes.go
package search

import "github.com/go-chi/chi/v5"

// MountRoutes registers GET /search/users on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/search/users", h.ServeUserSearch)
}
