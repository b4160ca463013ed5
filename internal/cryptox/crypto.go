// Package cryptox holds small helpers for handling signing secrets.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// MinSecretLength is the shortest HS256 secret considered strong (256 bits).
const MinSecretLength = 32

// Fingerprint returns a short, non-reversible identifier of secret that is
// safe to log. Two services sharing a secret report the same fingerprint.
func Fingerprint(secret []byte) string {
	hash := sha256.Sum256(secret)
	return hex.EncodeToString(hash[:6])
}

// IsWeak reports whether secret is shorter than MinSecretLength.
func IsWeak(secret []byte) bool {
	return len(secret) < MinSecretLength
}
