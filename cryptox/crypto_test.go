package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordDeterministic(t *testing.T) {
	h1 := HashPassword("secret-password", "fixed-salt")
	h2 := HashPassword("secret-password", "fixed-salt")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 128) // 64-byte key, hex-encoded
}

func TestHashPasswordDifferentInputs(t *testing.T) {
	base := HashPassword("secret-password", "salt-1")
	assert.NotEqual(t, base, HashPassword("secret-password", "salt-2"))
	assert.NotEqual(t, base, HashPassword("other-password", "salt-1"))
}

func TestVerifyPassword(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash := HashPassword("pw1", salt)

	assert.True(t, VerifyPassword("pw1", salt, hash))
	assert.False(t, VerifyPassword("pw2", salt, hash))
	assert.False(t, VerifyPassword("pw1", "other-salt", hash))
	assert.False(t, VerifyPassword("pw1", salt, ""))
	assert.False(t, VerifyPassword("pw1", "", hash))
	assert.False(t, VerifyPassword("pw1", salt, "not-a-hash"))
}

func TestGenerateSalt(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	s2, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, 32) // 16 bytes, hex-encoded
	assert.NotEqual(t, s1, s2)
}

func TestRandHexString(t *testing.T) {
	s, err := RandHexString(64)
	require.NoError(t, err)
	assert.Len(t, s, 128)
}

func TestSHA256Hex(t *testing.T) {
	// known vector
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		SHA256Hex("hello"))
}
