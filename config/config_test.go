package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"app"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, 5*time.Minute, cfg.JWTValidityDuration)
	assert.Equal(t, time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, 5*time.Minute, cfg.ActivationCodeValidityDuration)
	assert.Equal(t, "__Secure-Fgp", cfg.FingerprintCookieName)
	assert.Equal(t, 8*time.Hour, cfg.FingerprintCookieMaxAge)
	assert.NotEmpty(t, cfg.DatabaseDSN)
}

func TestEnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRES", "10m")

	cfg := LoadConfig()
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 10*time.Minute, cfg.JWTValidityDuration)
}

func TestSubMinuteEnvDurationsSurviveFlagParsing(t *testing.T) {
	// the -t/-r flags work in whole minutes; when they are not passed they
	// must not round sub-minute validities from the env layer down to zero
	resetArgs(t)
	t.Setenv("JWT_EXPIRES", "30s")
	t.Setenv("JWT_REFRESH_EXPIRES", "90s")

	cfg := LoadConfig()
	assert.Equal(t, 30*time.Second, cfg.JWTValidityDuration)
	assert.Equal(t, 90*time.Second, cfg.RefreshTokenValidityDuration)
}

func TestDurationFlagsStillApplyWhenPassed(t *testing.T) {
	resetArgs(t, "-t", "2", "-r", "120")
	t.Setenv("JWT_EXPIRES", "30s")

	cfg := LoadConfig()
	assert.Equal(t, 2*time.Minute, cfg.JWTValidityDuration)
	assert.Equal(t, 120*time.Minute, cfg.RefreshTokenValidityDuration)
}

func TestJSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	content := `{
		"secret_key": "json-secret",
		"refresh_token_validity_duration": "2h",
		"fingerprint_cookie_name": "fgp"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, "fgp", cfg.FingerprintCookieName)
}

func TestFlagsWinOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"secret_key":"json-secret"}`), 0o600))

	resetArgs(t, "-c", path, "-s", "flag-secret", "-t", "15")

	cfg := LoadConfig()
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.JWTValidityDuration)
}
