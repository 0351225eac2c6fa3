package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/midoshouse/midos.house-sub000/internal/ws"
)

func SetupRoutes(a *API) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// Public routes
	r.Get("/healthz", a.Healthz)
	r.Get("/catalog/{kind}", a.GetCatalog)
	r.Get("/races/{id}", a.GetRace)
	r.Get("/teams", a.ListTeams)

	r.Group(func(r chi.Router) {
		r.Use(RequireToken(a.TokenHash))
		r.Put("/teams/{id}", a.PutTeam)
		r.Post("/races", a.CreateRace)
		r.Post("/races/{id}/actions", a.PostAction)
		r.Get("/ws", ws.Handler(a.OpenRoom, a.Log))
	})
	return r
}
