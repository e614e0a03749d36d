// internal/app/features/teams/routes.go
package teams

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the team endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate) // mounted under /teams
	r.Get("/{teamID}", h.ServeGet)
	r.Post("/{teamID}/join", h.ServeJoin)
	r.Post("/{teamID}/leave", h.ServeLeave)
	return r
}
