package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/placeshare/places-service/internal/config"
	"github.com/placeshare/places-service/internal/transport/http/handlers"
	authmw "github.com/placeshare/places-service/internal/transport/http/middleware"
)

func New(
	ph *handlers.PlacesHandler,
	uh *handlers.UsersHandler,
	auth *authmw.AuthMiddleware,
	z *handlers.HealthHandler,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(authmw.RequestID)
	r.Use(authmw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(authmw.AccessLog)

	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/healthz", z.Healthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/places/{place_id}", ph.Get)
		r.Get("/places/user/{user_id}", ph.ListByUser)

		r.Get("/users", uh.List)
		r.Post("/users/signup", uh.Signup)
		r.Post("/users/login", uh.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Require)
			r.Post("/places", ph.Create)
			r.Patch("/places/{place_id}", ph.Update)
			r.Delete("/places/{place_id}", ph.Delete)
		})
	})

	return r
}
