// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// MountRoutes registers GET /users/me on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/users/me", h.ServeMe)
}
