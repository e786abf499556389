// Package codes generates the one-time codes and identifiers used by the
// auth flows: short email-activation codes, long password-reset codes, and
// opaque refresh-token identifiers.
package codes

import (
	"time"

	"github.com/google/uuid"
	"github.com/lucaswang977/userauth/cryptox"
)

const activationCodeLength = 6

// GenerateActivationCode returns a short printable code for email
// activation. It is shown to the user and compared case-insensitively.
func GenerateActivationCode() (string, error) {
	s, err := cryptox.RandHexString(32)
	if err != nil {
		return "", err
	}
	return s[:activationCodeLength], nil
}

// GeneratePasswordResetCode returns a long code for password-reset links,
// compared case-sensitively.
func GeneratePasswordResetCode() (string, error) {
	return cryptox.RandHexString(64)
}

// GenerateRefreshTokenID returns an opaque, non-guessable refresh-token
// identifier and its absolute expiry, now+validity.
func GenerateRefreshTokenID(validity time.Duration) (string, time.Time) {
	return uuid.NewString(), time.Now().Add(validity)
}
