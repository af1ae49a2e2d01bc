package router

import (
	"context"
	"net/http"

	"food-dashboard/internal/handler"
	"food-dashboard/internal/middleware"

	"github.com/rs/zerolog"
)

// Options carries the settings the router needs besides the handlers.
type Options struct {
	APIKey         string
	AllowedOrigins []string
	// HealthCheck reports storage health on /health. Nil means always healthy.
	HealthCheck func(ctx context.Context) error
}

// New creates a new HTTP router with all routes and middleware configured.
func New(foodHandler *handler.FoodHandler, opts Options, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if opts.HealthCheck != nil {
			if err := opts.HealthCheck(r.Context()); err != nil {
				logger.Warn().Err(err).Msg("health check failed")
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status": "unhealthy"}`))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("GET /foods", foodHandler.List)
	mux.HandleFunc("POST /foods", foodHandler.Create)
	mux.HandleFunc("PUT /foods/{id}", foodHandler.Update)
	mux.HandleFunc("DELETE /foods/{id}", foodHandler.Delete)

	return chain(mux, opts, logger)
}

// chain applies middleware in order: RequestID -> Recovery -> Logging -> CORS -> APIKeyAuth.
// RequestID is outermost so panic bodies carry the correlation id too.
func chain(h http.Handler, opts Options, logger zerolog.Logger) http.Handler {
	h = middleware.APIKeyAuth(opts.APIKey, logger)(h)
	h = middleware.CORS(opts.AllowedOrigins)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestID(h)

	return h
}
