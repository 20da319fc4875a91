package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kvgate/kvgate/internal/auth"
	"github.com/kvgate/kvgate/internal/config"
	"github.com/kvgate/kvgate/internal/handler"
	"github.com/kvgate/kvgate/internal/metrics"
	"github.com/kvgate/kvgate/internal/middleware"
	"github.com/kvgate/kvgate/internal/requestlog"
	"github.com/kvgate/kvgate/internal/store"
)

// Deps are the collaborators the router wires into handlers and middleware.
type Deps struct {
	Config      *config.Config
	Logger      *slog.Logger
	Store       *store.Store
	Credentials *auth.CredentialStore
	RequestLog  *requestlog.Log
	Metrics     metrics.Recorder
	// Registry backs /metrics and the HTTP metrics middleware. Nil disables both.
	Registry *prometheus.Registry
	// Assets holds index.html and the files served under /static/.
	Assets  fs.FS
	Version string
}

// NewRouter configures the chi router with all routes and middleware.
// Routes outside the authenticated group are reachable without an API key.
func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logger := d.Logger

	h := handler.New()
	healthHandler := handler.NewHealthHandler(d.Store, d.Version, logger)
	apiKeyHandler := handler.NewAPIKeyHandler(logger, d.Credentials)
	dataHandler := handler.NewDataHandler(d.Store, logger)
	logsHandler := handler.NewLogsHandler(d.RequestLog, cfg.LogsWindow)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger, cfg.IsDevelopment()))
	if d.Registry != nil {
		r.Use(middleware.HTTPMetrics(d.Registry))
	}
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      cfg.IsDevelopment(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	}))
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	authMW := middleware.Auth(middleware.AuthConfig{
		Logger:      logger,
		Credentials: d.Credentials,
		RequestLog:  d.RequestLog,
		Metrics:     d.Metrics,
	})
	requireAdmin := middleware.RequireAdmin(d.Credentials, logger)

	// Exempt from authorization
	r.Get("/health", healthHandler.Health)
	r.Get("/healthz", healthHandler.Healthz)
	r.Post("/generate_key", apiKeyHandler.Generate)
	if d.Registry != nil && cfg.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", handler.NewMetricsHandler(d.Registry))
	}
	if d.Assets != nil {
		ui := handler.NewUIHandler(d.Assets)
		r.Get("/", ui.Index)
		r.Get("/static/*", ui.Static)
	}

	// Everything else requires a valid API key
	r.Group(func(r chi.Router) {
		r.Use(authMW)
		r.Use(middleware.RateLimitKey(middleware.RateLimitConfig{
			Logger:            logger,
			Limiter:           d.Store,
			Enabled:           cfg.RateLimitEnabled,
			RequestsPerMinute: cfg.RateLimitRPM,
			Burst:             cfg.RateLimitBurst,
		}))

		r.Post("/set", dataHandler.Set)
		r.Get("/get", dataHandler.Get)
		r.Get("/list_keys", dataHandler.ListKeys)
		r.Post("/expire", dataHandler.Expire)
		r.Get("/ttl", dataHandler.TTL)
		r.Post("/incr", dataHandler.Incr)
		r.Post("/decr", dataHandler.Decr)
		r.Post("/hset", dataHandler.HSet)
		r.Get("/hget", dataHandler.HGet)
		r.Post("/enqueue", dataHandler.Enqueue)
		r.Get("/dequeue", dataHandler.Dequeue)

		// Admin only
		r.With(requireAdmin).Get("/logs", logsHandler.Logs)
		r.With(requireAdmin).Delete("/delete", dataHandler.Delete)
	})

	// Unknown paths are still subject to authorization.
	r.NotFound(authMW(http.HandlerFunc(h.NotFound)).ServeHTTP)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
