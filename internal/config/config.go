// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/redis/go-redis/v9"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Backend (Redis). REDIS_URL wins over the discrete settings when set.
	RedisURL      string `env:"REDIS_URL"`
	RedisHost     string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisUsername string `env:"REDIS_USERNAME"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	RedisDialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"2s"`
	RedisReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"1s"`
	RedisWriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"1s"`
	RedisPoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Credential policy. AUTH_FAIL_OPEN admits any well-formed key while the
	// backend is unreachable.
	AuthFailOpen       bool `env:"AUTH_FAIL_OPEN" envDefault:"true"`
	KeyIssueBestEffort bool `env:"KEY_ISSUE_BEST_EFFORT" envDefault:"false"`

	// Request log
	RequestLogMaxEntries int64 `env:"REQUEST_LOG_MAX_ENTRIES" envDefault:"0"`
	RequestLogBuffer     int   `env:"REQUEST_LOG_BUFFER" envDefault:"1024"`
	LogsWindow           int   `env:"LOGS_WINDOW" envDefault:"50"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Per-key rate limiting
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPM     int  `env:"RATE_LIMIT_RPM" envDefault:"600"`
	RateLimitBurst   int  `env:"RATE_LIMIT_BURST" envDefault:"60"`

	// CORS configuration
	// Comma-separated list of allowed origins (e.g., "https://example.com,https://app.example.com")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// RedisOptions resolves the backend settings into client options.
// Priority: REDIS_URL, then REDIS_HOST/REDIS_PORT/REDIS_USERNAME/REDIS_DB.
// REDIS_PASSWORD, when set, overrides any password in REDIS_URL.
func (c *Config) RedisOptions() (*redis.Options, error) {
	var opts *redis.Options

	if c.RedisURL != "" {
		parsed, err := redis.ParseURL(c.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     net.JoinHostPort(c.RedisHost, strconv.Itoa(c.RedisPort)),
			Username: c.RedisUsername,
			DB:       c.RedisDB,
		}
	}

	if c.RedisPassword != "" {
		opts.Password = c.RedisPassword
	}

	opts.DialTimeout = c.RedisDialTimeout
	opts.ReadTimeout = c.RedisReadTimeout
	opts.WriteTimeout = c.RedisWriteTimeout
	if c.RedisPoolSize > 0 {
		opts.PoolSize = c.RedisPoolSize
	}

	return opts, nil
}

// Validate checks value ranges env.Parse cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.AppPort <= 0 || c.AppPort > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT out of range: %d", c.AppPort))
	}
	if c.RedisURL == "" && c.RedisHost == "" {
		errs = append(errs, errors.New("REDIS_HOST is required when REDIS_URL is unset"))
	}
	if c.RedisDB < 0 {
		errs = append(errs, fmt.Errorf("REDIS_DB must be >= 0: %d", c.RedisDB))
	}
	if c.LogsWindow <= 0 {
		errs = append(errs, fmt.Errorf("LOGS_WINDOW must be > 0: %d", c.LogsWindow))
	}
	if c.RequestLogMaxEntries < 0 {
		errs = append(errs, fmt.Errorf("REQUEST_LOG_MAX_ENTRIES must be >= 0: %d", c.RequestLogMaxEntries))
	}
	if c.RequestLogBuffer <= 0 {
		errs = append(errs, fmt.Errorf("REQUEST_LOG_BUFFER must be > 0: %d", c.RequestLogBuffer))
	}
	if c.RateLimitEnabled && (c.RateLimitRPM <= 0 || c.RateLimitBurst <= 0) {
		errs = append(errs, errors.New("RATE_LIMIT_RPM and RATE_LIMIT_BURST must be > 0 when rate limiting is enabled"))
	}

	return errors.Join(errs...)
}

// Load parses environment variables and returns a Config.
// Returns an error if a variable cannot be parsed or is out of range.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
