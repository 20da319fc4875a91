// Package auth provides API key issuance and validation.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Key format: 32 lowercase hex characters (16 random bytes).
// Example: 4f8d2e1b9c7a5f3d2e1b9c7a5f3d2e1b
const (
	KeyBytes  = 16
	KeyLength = KeyBytes * 2
)

var (
	// ErrInvalidKeyFormat indicates the key format is invalid.
	ErrInvalidKeyFormat = errors.New("invalid API key format")
	// keyFormatRegex validates the key format.
	keyFormatRegex = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

// GenerateAPIKey creates a new random API key.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, KeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ValidateKeyFormat checks if the key matches the expected format.
// Well-formed keys may still be unknown; this only filters garbage before
// it reaches the backend.
func ValidateKeyFormat(key string) bool {
	return keyFormatRegex.MatchString(key)
}

// ParseKey trims a presented key and checks its format.
// Returns ErrInvalidKeyFormat for anything that cannot be an issued key.
func ParseKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if !ValidateKeyFormat(key) {
		return "", ErrInvalidKeyFormat
	}
	return key, nil
}
