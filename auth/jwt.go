// Package auth implements the bearer-token issuer/verifier and the
// fingerprint binding that ties a token to a client-held cookie.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the signed claim set carried by a bearer token. Only the hash of
// the fingerprint is embedded; the raw value stays in the client's cookie.
type Claims struct {
	jwt.RegisteredClaims
	UserID            string `json:"userId"`
	HashedFingerprint string `json:"hashedFingerprint"`
}

// IssueToken signs a bearer token for the user with the given validity.
func IssueToken(userID, hashedFingerprint string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID:            userID,
		HashedFingerprint: hashedFingerprint,
	})

	return token.SignedString(secretKey)
}

// VerifyToken checks the signature and expiry and returns the claims.
// It fails closed: any problem yields ErrTokenExpired or ErrInvalidToken,
// never partially-trusted claims.
func VerifyToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// DecodeTokenUnverified extracts the claims without checking the signature
// or expiry. Used only by the refresh flow, where an expired token is an
// acceptable input and the extracted identity is re-checked against
// server-side state before anything is trusted. Malformed tokens still fail.
func DecodeTokenUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}

	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
