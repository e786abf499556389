// Package cryptox implements the credential-hashing primitives: salted
// PBKDF2 password hashing with constant-time verification, SHA-256 hashing
// for fingerprint binding, and random hex string generation.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. Changing them invalidates every stored hash.
const (
	hashIterations = 1000
	hashKeyLength  = 64
	saltLength     = 16
)

// RandHexString returns size random bytes encoded as hex, so the resulting
// string is twice as long as size.
func RandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateSalt returns a fresh random salt. Salts are never reused across
// users; a new one is generated on every password set.
func GenerateSalt() (string, error) {
	return RandHexString(saltLength)
}

// HashPassword derives a hex-encoded PBKDF2-SHA512 hash from the password
// and salt. Deterministic: same inputs always produce the same output.
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), hashIterations, hashKeyLength, sha512.New)
	return hex.EncodeToString(key)
}

// VerifyPassword recomputes the hash and compares it in constant time.
// Absent or malformed stored values never verify.
func VerifyPassword(password, salt, hash string) bool {
	if salt == "" || hash == "" {
		return false
	}
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

// SHA256Hex returns the hex-encoded SHA-256 digest of text.
func SHA256Hex(text string) string {
	digest := sha256.Sum256([]byte(text))
	return hex.EncodeToString(digest[:])
}
