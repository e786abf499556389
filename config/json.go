package config

import (
	"encoding/json"
	"os"

	"github.com/lucaswang977/userauth/flagx"
	"github.com/lucaswang977/userauth/timex"
)

// jsonConfig is the DTO for the optional JSON config file. Duration fields
// accept either strings such as "5m" or integer nanoseconds.
type jsonConfig struct {
	DatabaseDSN                    *string         `json:"database_dsn"`
	SecretKey                      *string         `json:"secret_key"`
	JWTValidityDuration            *timex.Duration `json:"jwt_validity_duration"`
	RefreshTokenValidityDuration   *timex.Duration `json:"refresh_token_validity_duration"`
	ActivationCodeValidityDuration *timex.Duration `json:"activation_code_validity_duration"`
	ResetCodeValidityDuration      *timex.Duration `json:"reset_code_validity_duration"`
	FingerprintCookieName          *string         `json:"fingerprint_cookie_name"`
	FingerprintCookieMaxAge        *timex.Duration `json:"fingerprint_cookie_max_age"`
	PasswordResetURLBase           *string         `json:"password_reset_url_base"`
	EmailFrom                      *string         `json:"email_from"`
}

// parseJSON overlays values from the JSON file named by -c/-config, if any.
// Unreadable or invalid files panic: a misconfigured process must not start.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.ConfigFilePath()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.JWTValidityDuration != nil {
		config.JWTValidityDuration = c.JWTValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.ActivationCodeValidityDuration != nil {
		config.ActivationCodeValidityDuration = c.ActivationCodeValidityDuration.Duration
	}
	if c.ResetCodeValidityDuration != nil {
		config.ResetCodeValidityDuration = c.ResetCodeValidityDuration.Duration
	}
	if c.FingerprintCookieName != nil {
		config.FingerprintCookieName = *c.FingerprintCookieName
	}
	if c.FingerprintCookieMaxAge != nil {
		config.FingerprintCookieMaxAge = c.FingerprintCookieMaxAge.Duration
	}
	if c.PasswordResetURLBase != nil {
		config.PasswordResetURLBase = *c.PasswordResetURLBase
	}
	if c.EmailFrom != nil {
		config.EmailFrom = *c.EmailFrom
	}
}
