package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/authgate/internal/gateway/client"
	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Client  client.AuthClient
	Logger  logging.Logger
	Metrics *Metrics
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	// RateLimit requests per RateWindow per client IP on /auth; 0 disables.
	RateLimit  int
	RateWindow time.Duration
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, MsgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	})

	health := NewHealthHandler(cfg.Client)
	r.Get("/health", health.Health)
	r.Get("/health/ready", health.Ready)
	r.Get("/health/live", health.Live)

	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	h := NewHandler(cfg.Client, cfg.Logger)
	guard := NewGuard(cfg.Client, cfg.Metrics, cfg.Logger)

	r.Route("/auth", func(r chi.Router) {
		if cfg.RateLimit > 0 {
			window := cfg.RateWindow
			if window <= 0 {
				window = time.Minute
			}
			r.Use(httprate.Limit(
				cfg.RateLimit,
				window,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					writeError(w, http.StatusTooManyRequests, MsgTooManyRequests)
				}),
			))
		}

		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(guard.Require)
			r.Get("/users", h.ListUsers)
			r.Get("/profile", h.Profile)
		})
	})

	return r
}
