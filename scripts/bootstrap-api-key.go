package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/kvgate/kvgate/internal/auth"
	"github.com/kvgate/kvgate/internal/config"
	"github.com/kvgate/kvgate/internal/model"
	"github.com/kvgate/kvgate/internal/store"
)

type output struct {
	UserID         string     `json:"user_id"`
	Role           model.Role `json:"role"`
	Key            string     `json:"key"`
	KeyFingerprint string     `json:"key_fingerprint"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "load .env:", err)
		os.Exit(1)
	}

	var (
		userID    = flag.String("user-id", "system", "User ID to own the API key")
		roleInput = flag.String("role", "admin", "Role for the key: admin or user")
		format    = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	role, ok := model.ParseRole(strings.TrimSpace(*roleInput))
	if !ok {
		fmt.Fprintln(os.Stderr, "invalid role; use admin or user")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	redisOpts, err := cfg.RedisOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	backend := store.New(redisOpts)
	defer backend.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := backend.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "connect Redis:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	credentials := auth.NewCredentialStore(backend, auth.CredentialPolicy{}, logger, nil)

	key, err := credentials.Issue(ctx, *userID, role)
	if err != nil {
		fmt.Fprintln(os.Stderr, "issue api key:", err)
		os.Exit(1)
	}

	out := output{
		UserID:         *userID,
		Role:           role,
		Key:            key,
		KeyFingerprint: auth.Fingerprint(key),
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Println(out.Key)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}
