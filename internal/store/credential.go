package store

import (
	"context"

	"github.com/kvgate/kvgate/internal/model"
)

// Credential hash fields.
const (
	FieldUserID = "user_id"
	FieldRole   = "role"
)

func credentialKey(apiKey string) string {
	return CredentialKeyPrefix + apiKey
}

// SaveCredential stores the credential for apiKey.
// Both fields are written by one HSET so a record is never half-written.
func (s *Store) SaveCredential(ctx context.Context, apiKey string, cred model.Credential) error {
	err := s.client.HSet(ctx, credentialKey(apiKey),
		FieldUserID, cred.UserID,
		FieldRole, string(cred.Role),
	).Err()
	return classify("save credential", err)
}

// CredentialExists reports whether a credential record exists for apiKey.
func (s *Store) CredentialExists(ctx context.Context, apiKey string) (bool, error) {
	n, err := s.client.Exists(ctx, credentialKey(apiKey)).Result()
	if err != nil {
		return false, classify("credential exists", err)
	}
	return n > 0, nil
}

// CredentialField returns one field of the credential record.
// Returns ErrNotFound if the record or field is absent.
func (s *Store) CredentialField(ctx context.Context, apiKey, field string) (string, error) {
	value, err := s.client.HGet(ctx, credentialKey(apiKey), field).Result()
	if err != nil {
		return "", classify("credential field", err)
	}
	return value, nil
}
