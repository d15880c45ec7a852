// Package apikey generates and fingerprints store API credentials.
//
// A credential is an opaque string "sk_live_" + 64 lowercase hex characters
// (32 random bytes). Only its SHA-256 digest is ever persisted; the short
// display prefix is stored for audit listings and carries no security weight.
package apikey

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

const (
	// LivePrefix marks the single credential family this service issues.
	LivePrefix = "sk_live_"

	// SecretLen is the hex-encoded length of the random secret segment.
	SecretLen = 64

	// DisplayPrefixLen is how many leading characters are kept for listings.
	DisplayPrefixLen = 12
)

var randRead = rand.Read

// Generate returns a fresh credential: LivePrefix plus 32 random bytes hex
// encoded. The plaintext is shown to the caller exactly once and never stored.
func Generate() (string, error) {
	buf := make([]byte, SecretLen/2)
	if _, err := randRead(buf); err != nil {
		return "", err
	}
	return LivePrefix + hex.EncodeToString(buf), nil
}

// Hash returns the SHA-256 hex digest of the full credential. The digest is
// the unique lookup key in the api_keys table.
func Hash(credential string) string {
	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:])
}

// PrefixOf returns the leading DisplayPrefixLen characters for human-facing
// display, e.g. "sk_live_a1b2".
func PrefixOf(credential string) string {
	if len(credential) < DisplayPrefixLen {
		return credential
	}
	return credential[:DisplayPrefixLen]
}

// ValidFormat reports whether the string has the exact shape of an issued
// credential. It is a pure function so malformed input can be rejected
// before any storage lookup.
func ValidFormat(credential string) bool {
	if len(credential) != len(LivePrefix)+SecretLen {
		return false
	}
	if credential[:len(LivePrefix)] != LivePrefix {
		return false
	}
	for _, c := range credential[len(LivePrefix):] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
