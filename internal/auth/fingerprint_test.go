package auth

import (
	"strings"
	"testing"
)

func TestFingerprint_Deterministic(t *testing.T) {
	t.Parallel()

	key := "4f8d2e1b9c7a5f3d2e1b9c7a5f3d2e1b"

	if Fingerprint(key) != Fingerprint(key) {
		t.Error("Same key should produce same fingerprint")
	}
}

func TestFingerprint_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{"hex key", "4f8d2e1b9c7a5f3d2e1b9c7a5f3d2e1b"},
		{"short", "abc"},
		{"empty", ""},
		{"long", strings.Repeat("a", 500)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fp := Fingerprint(tt.key)
			if len(fp) != 16 {
				t.Errorf("Fingerprint(%q) length = %d, want 16", tt.key, len(fp))
			}
		})
	}
}

func TestFingerprint_DoesNotLeakKey(t *testing.T) {
	t.Parallel()

	key := "4f8d2e1b9c7a5f3d2e1b9c7a5f3d2e1b"
	fp := Fingerprint(key)

	if strings.Contains(key, fp) || strings.Contains(fp, key[:8]) {
		t.Errorf("fingerprint %q should not contain key material", fp)
	}
}

func TestFingerprint_Different(t *testing.T) {
	t.Parallel()

	a := Fingerprint("4f8d2e1b9c7a5f3d2e1b9c7a5f3d2e1b")
	b := Fingerprint("4f8d2e1b9c7a5f3d2e1b9c7a5f3d2e1c")

	if a == b {
		t.Errorf("Different keys should produce different fingerprints, both produced %s", a)
	}
}
