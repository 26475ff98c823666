package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/question"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Handlers groups the domain handlers mounted on the router.
type Handlers struct {
	Categories *category.HTTPHandler
	Questions  *question.HTTPHandler
}

// Pinger checks a backing dependency for /healthz.
type Pinger func(ctx context.Context) error

// RouterOptions carries the cross-cutting pieces of the router.
type RouterOptions struct {
	CORS     config.CORS
	Logger   zerolog.Logger
	Registry *prometheus.Registry
	Pingers  map[string]Pinger
}

// NewRouter wires the trivia API routes plus health and metrics endpoints.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	var metrics *Metrics
	if opts.Registry != nil {
		metrics = NewMetrics(opts.Registry)
	}

	r := chi.NewRouter()
	r.Use(requestLogger(opts.Logger, metrics))
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORS.AllowedOrigins,
		AllowedMethods: opts.CORS.AllowedMethods,
		AllowedHeaders: opts.CORS.AllowedHeaders,
		MaxAge:         opts.CORS.MaxAge,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondMethodNotAllowed(w)
	})

	r.Get("/healthz", healthHandler(opts.Pingers))
	if opts.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.Categories.List)
		r.Post("/", h.Categories.Create)
		r.Delete("/{id:[0-9]+}", h.Categories.Delete)
		r.Get("/{id:[0-9]+}/questions", h.Questions.ByCategory)
	})

	r.Route("/questions", func(r chi.Router) {
		r.Get("/", h.Questions.List)
		r.Post("/", h.Questions.Create)
		r.Post("/search", h.Questions.Search)
		r.Delete("/{id}", h.Questions.Delete)
	})

	r.Post("/quizzes", h.Questions.Quiz)

	return r
}

// NewHTTPServer builds the API server around the router.
func NewHTTPServer(cfg *config.App, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}

func healthHandler(pingers map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for name, ping := range pingers {
			if err := ping(r.Context()); err != nil {
				logger := logging.FromContext(r.Context())
				logger.Error().Err(err).Str("dependency", name).Msg("dependency ping failed")
				httperrors.RespondError(w, http.StatusServiceUnavailable, name+" unavailable")
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// PostgresPinger adapts a pgx pool to a Pinger.
func PostgresPinger(pool *pgxpool.Pool) Pinger {
	return pool.Ping
}

// RedisPinger adapts a redis client to a Pinger.
func RedisPinger(client *redis.Client) Pinger {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
