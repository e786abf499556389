package codes

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateActivationCode(t *testing.T) {
	c1, err := GenerateActivationCode()
	require.NoError(t, err)
	c2, err := GenerateActivationCode()
	require.NoError(t, err)

	assert.Len(t, c1, 6)
	assert.NotEqual(t, c1, c2)
}

func TestGeneratePasswordResetCode(t *testing.T) {
	c, err := GeneratePasswordResetCode()
	require.NoError(t, err)
	assert.Len(t, c, 128)
}

func TestGenerateRefreshTokenID(t *testing.T) {
	before := time.Now()
	id, expires := GenerateRefreshTokenID(time.Hour)

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.True(t, expires.After(before.Add(59*time.Minute)))
	assert.True(t, expires.Before(before.Add(61*time.Minute)))

	id2, _ := GenerateRefreshTokenID(time.Hour)
	assert.NotEqual(t, id, id2)
}
