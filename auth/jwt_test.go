package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestIssueAndVerifyToken(t *testing.T) {
	token, err := IssueToken("u1", "fp-hash", testSecret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "fp-hash", claims.HashedFingerprint)
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := IssueToken("u1", "fp-hash", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenBadSignature(t *testing.T) {
	token, err := IssueToken("u1", "fp-hash", []byte("other-secret"), time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenMalformed(t *testing.T) {
	_, err := VerifyToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeTokenUnverified(t *testing.T) {
	// expired and signed with a different key: both acceptable here
	token, err := IssueToken("u1", "fp-hash", []byte("rotated-away"), -time.Minute)
	require.NoError(t, err)

	claims, err := DecodeTokenUnverified(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "fp-hash", claims.HashedFingerprint)

	_, err = DecodeTokenUnverified("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
