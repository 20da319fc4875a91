package auth

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintBytes is the digest size used for key fingerprints.
const fingerprintBytes = 8

// Fingerprint returns a short, stable, non-reversible identifier for an API key.
// It is what appears in structured logs and rate-limit bucket names instead
// of the key itself.
func Fingerprint(apiKey string) string {
	h, err := blake2b.New(fingerprintBytes, nil)
	if err != nil {
		// Only returned for invalid sizes or oversized keys.
		panic(err)
	}
	h.Write([]byte(apiKey))
	return hex.EncodeToString(h.Sum(nil))
}
