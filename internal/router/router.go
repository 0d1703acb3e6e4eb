// Package router sets up the HTTP routes and middleware chain for the
// content studio API.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"contentstudio/internal/handlers"
	"contentstudio/internal/middleware"
)

// Rate limits. Generation is metered per token upstream; city search hits
// Nominatim, whose usage policy caps clients at roughly one request per
// second.
const (
	generateLimit  = 10
	generateWindow = time.Minute
	citiesLimit    = 60
	citiesWindow   = time.Minute
)

// New creates and returns the configured chi router with all middleware
// and routes wired up.
func New(api *handlers.API, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check — unthrottled.
	r.Get("/health", api.Health)

	r.Route("/api", func(r chi.Router) {
		// Generation — one model call per request, throttled hardest.
		r.Group(func(r chi.Router) {
			r.Use(middleware.NewRateLimiter(generateLimit, generateWindow).Middleware)
			r.Post("/generate", api.Generate)
		})

		// City resolution — proxies Nominatim.
		r.Route("/cities", func(r chi.Router) {
			r.Use(middleware.NewRateLimiter(citiesLimit, citiesWindow).Middleware)
			r.Get("/search", api.CitySearch)
			r.Post("/validate", api.CityValidate)
		})

		// Posts
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", api.ListPosts)
			r.Post("/", api.SavePost)
		})

		// Rubric administration
		r.Route("/rubrics", func(r chi.Router) {
			r.Get("/", api.ListRubrics)
			r.Post("/", api.CreateRubric)
			r.Get("/{name}", api.GetRubric)
			r.Put("/{name}", api.UpdateRubric)
			r.Delete("/{name}", api.DeleteRubric)
		})
	})

	return r
}
