package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kvgate/kvgate/internal/metrics"
	"github.com/kvgate/kvgate/internal/model"
	"github.com/kvgate/kvgate/internal/store"
)

// Credential store errors.
var (
	ErrInvalidUserID = errors.New("user id is required")
	ErrInvalidRole   = errors.New("role must be 'admin' or 'user'")
	ErrPersistFailed = errors.New("failed to persist API key")
)

// CredentialRepository is the backend contract the credential store relies on.
type CredentialRepository interface {
	SaveCredential(ctx context.Context, apiKey string, cred model.Credential) error
	CredentialExists(ctx context.Context, apiKey string) (bool, error)
	CredentialField(ctx context.Context, apiKey, field string) (string, error)
}

// CredentialPolicy controls behaviour when the backend is unreachable.
type CredentialPolicy struct {
	// FailOpen makes Exists report true when the backend cannot be reached.
	// This keeps the API available during an outage at the cost of admitting
	// any well-formed key. Security-relevant: review before enabling in
	// production.
	FailOpen bool

	// BestEffortIssue returns a generated key even if it could not be stored.
	// Such a key is rejected once the backend is reachable again.
	BestEffortIssue bool
}

// CredentialStore issues API keys and answers validity and role questions.
type CredentialStore struct {
	repo    CredentialRepository
	policy  CredentialPolicy
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewCredentialStore creates a CredentialStore.
func NewCredentialStore(repo CredentialRepository, policy CredentialPolicy, logger *slog.Logger, recorder metrics.Recorder) *CredentialStore {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CredentialStore{
		repo:    repo,
		policy:  policy,
		logger:  logger.With("component", "auth.credentials"),
		metrics: recorder,
	}
}

// Issue generates a key for userID with role and persists the credential.
func (s *CredentialStore) Issue(ctx context.Context, userID string, role model.Role) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", ErrInvalidUserID
	}
	if _, ok := model.ParseRole(string(role)); !ok || role == "" {
		return "", ErrInvalidRole
	}

	apiKey, err := GenerateAPIKey()
	if err != nil {
		return "", err
	}

	cred := model.Credential{UserID: userID, Role: role}
	if err := s.repo.SaveCredential(ctx, apiKey, cred); err != nil {
		if !s.policy.BestEffortIssue {
			s.logger.Error("failed to persist API key",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
			return "", fmt.Errorf("%w: %v", ErrPersistFailed, err)
		}

		s.logger.Warn("API key issued without being persisted",
			slog.String("user_id", userID),
			slog.String("key_fingerprint", Fingerprint(apiKey)),
			slog.String("error", err.Error()),
		)
		s.metrics.IncBackendFallback("issue")
	}

	s.logger.Info("API key issued",
		slog.String("user_id", userID),
		slog.String("role", role.String()),
		slog.String("key_fingerprint", Fingerprint(apiKey)),
	)
	s.metrics.IncKeyIssued(role.String())

	return apiKey, nil
}

// Exists reports whether a credential exists for apiKey.
// When the backend is unreachable the answer is the FailOpen policy.
func (s *CredentialStore) Exists(ctx context.Context, apiKey string) bool {
	ok, err := s.repo.CredentialExists(ctx, apiKey)
	if err != nil {
		s.logger.Warn("credential lookup failed",
			slog.String("key_fingerprint", Fingerprint(apiKey)),
			slog.Bool("fail_open", s.policy.FailOpen),
			slog.String("error", err.Error()),
		)
		s.metrics.IncBackendFallback("exists")
		if s.policy.FailOpen {
			s.metrics.IncAuthDecision(metrics.AuthFailOpen)
		}
		return s.policy.FailOpen
	}
	return ok
}

// RoleOf returns the role bound to apiKey.
// Unknown keys, unexpected values and backend errors all yield RoleUser.
func (s *CredentialStore) RoleOf(ctx context.Context, apiKey string) model.Role {
	raw, err := s.repo.CredentialField(ctx, apiKey, store.FieldRole)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("role lookup failed",
				slog.String("key_fingerprint", Fingerprint(apiKey)),
				slog.String("error", err.Error()),
			)
			s.metrics.IncBackendFallback("role")
		}
		return model.RoleUser
	}

	role, ok := model.ParseRole(raw)
	if !ok || raw == "" {
		return model.RoleUser
	}
	return role
}

// UserOf returns the user id bound to apiKey, or "" when unknown.
func (s *CredentialStore) UserOf(ctx context.Context, apiKey string) string {
	userID, err := s.repo.CredentialField(ctx, apiKey, store.FieldUserID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.metrics.IncBackendFallback("user")
		}
		return ""
	}
	return userID
}
