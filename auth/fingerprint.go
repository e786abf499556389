package auth

import (
	"crypto/subtle"

	"github.com/lucaswang977/userauth/cryptox"
)

// fingerprint entropy in bytes before hex encoding
const fingerprintLength = 64

// Fingerprint pairs the raw client-held secret with its hash. The raw value
// travels only in the HTTP-only cookie; the hash only inside the token.
type Fingerprint struct {
	Value  string
	Hashed string
}

// GenerateFingerprint returns a fresh random fingerprint and its SHA-256 hash.
func GenerateFingerprint() (*Fingerprint, error) {
	value, err := cryptox.RandHexString(fingerprintLength)
	if err != nil {
		return nil, err
	}
	return &Fingerprint{Value: value, Hashed: cryptox.SHA256Hex(value)}, nil
}

// VerifyFingerprint checks a client-presented fingerprint against the hash
// embedded in a token.
func VerifyFingerprint(fingerprint, hashedFingerprint string) bool {
	computed := cryptox.SHA256Hex(fingerprint)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedFingerprint)) == 1
}
