package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/kundli-api/internal/api"
	apiMiddleware "github.com/phrazzld/kundli-api/internal/api/middleware"
)

// Router creates the application router with all routes and middleware.
func (a *Application) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(a.logger))

	limiter := apiMiddleware.NewRateLimiter(a.config.Server.RateLimit, a.config.Server.RateBurst)
	kundliHandler := api.NewKundliHandler(a.kundli)

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Handler)
		kundliHandler.Routes(r)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			a.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
