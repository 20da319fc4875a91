// Package main is the entrypoint for the kvgate API server.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/kvgate/kvgate/internal/auth"
	"github.com/kvgate/kvgate/internal/config"
	"github.com/kvgate/kvgate/internal/metrics"
	"github.com/kvgate/kvgate/internal/requestlog"
	"github.com/kvgate/kvgate/internal/server"
	"github.com/kvgate/kvgate/internal/store"
	"github.com/kvgate/kvgate/web"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize backend
	redisOpts, err := cfg.RedisOptions()
	if err != nil {
		logger.Error("invalid Redis settings", slog.String("error", sanitizeError(err, cfg.RedisURL)))
		os.Exit(1)
	}
	backend := store.New(redisOpts)

	// The service starts even when Redis is down; /health reports it.
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := backend.Ping(pingCtx); err != nil {
		logger.Warn(
			"Redis unreachable at startup",
			slog.String("error", sanitizeError(err, cfg.RedisURL, cfg.RedisPassword)),
			slog.String("redis_addr", redisAddr(cfg, redisOpts.Addr)),
		)
	} else {
		logger.Info("connected to Redis", slog.String("redis_addr", redisAddr(cfg, redisOpts.Addr)))
	}
	cancel()

	// Initialize services
	recorder := metrics.NewPrometheus()

	credentials := auth.NewCredentialStore(backend, auth.CredentialPolicy{
		FailOpen:        cfg.AuthFailOpen,
		BestEffortIssue: cfg.KeyIssueBestEffort,
	}, logger, recorder)
	if cfg.AuthFailOpen {
		logger.Warn("AUTH_FAIL_OPEN is enabled: any well-formed key is admitted while Redis is unreachable")
	}

	requestLog := requestlog.New(backend, credentials, requestlog.Options{
		MaxEntries: cfg.RequestLogMaxEntries,
		BufferSize: cfg.RequestLogBuffer,
	}, logger, recorder)

	// Setup router
	r := server.NewRouter(server.Deps{
		Config:      cfg,
		Logger:      logger,
		Store:       backend,
		Credentials: credentials,
		RequestLog:  requestLog,
		Metrics:     recorder,
		Registry:    recorder.Registry(),
		Assets:      web.Assets(),
		Version:     version,
	})

	// Create and run server
	srv := server.New(r, server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	// LIFO: the request log drains before the client it writes through closes.
	srv.OnShutdown("redis", func(context.Context) error { return backend.Close() })
	srv.OnShutdown("request_log", requestLog.Close)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"version", version,
	)

	if err := srv.Run(context.Background()); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h).With("service", "kvgate")
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// redisAddr describes the backend for logs without leaking credentials.
func redisAddr(cfg *config.Config, addr string) string {
	if cfg.RedisURL != "" {
		return redactURL(cfg.RedisURL)
	}
	return addr
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" || redacted == secret {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
