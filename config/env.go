package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envConfig mirrors Config for environment parsing. Zero values mean "not
// set" and leave the existing Config value untouched.
type envConfig struct {
	DatabaseDSN                    string        `env:"DATABASE_URL"`
	SecretKey                      string        `env:"JWT_SECRET"`
	JWTValidityDuration            time.Duration `env:"JWT_EXPIRES"`
	RefreshTokenValidityDuration   time.Duration `env:"JWT_REFRESH_EXPIRES"`
	ActivationCodeValidityDuration time.Duration `env:"EMAIL_ACTIVATE_EXPIRES"`
	ResetCodeValidityDuration      time.Duration `env:"PASSWORD_RESET_CODE_EXPIRES"`
	FingerprintCookieName          string        `env:"FINGERPRINT_COOKIE_NAME"`
	FingerprintCookieMaxAge        time.Duration `env:"FINGERPRINT_COOKIE_MAX_AGE"`
	PasswordResetURLBase           string        `env:"PASSWORD_RESET_URL_BASE"`
	EmailFrom                      string        `env:"EMAIL_FROM"`
}

func parseEnv(config *Config) {
	e := &envConfig{}
	if err := envconfig.Process(context.Background(), e); err != nil {
		panic(err)
	}

	if e.DatabaseDSN != "" {
		config.DatabaseDSN = e.DatabaseDSN
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
	if e.JWTValidityDuration != 0 {
		config.JWTValidityDuration = e.JWTValidityDuration
	}
	if e.RefreshTokenValidityDuration != 0 {
		config.RefreshTokenValidityDuration = e.RefreshTokenValidityDuration
	}
	if e.ActivationCodeValidityDuration != 0 {
		config.ActivationCodeValidityDuration = e.ActivationCodeValidityDuration
	}
	if e.ResetCodeValidityDuration != 0 {
		config.ResetCodeValidityDuration = e.ResetCodeValidityDuration
	}
	if e.FingerprintCookieName != "" {
		config.FingerprintCookieName = e.FingerprintCookieName
	}
	if e.FingerprintCookieMaxAge != 0 {
		config.FingerprintCookieMaxAge = e.FingerprintCookieMaxAge
	}
	if e.PasswordResetURLBase != "" {
		config.PasswordResetURLBase = e.PasswordResetURLBase
	}
	if e.EmailFrom != "" {
		config.EmailFrom = e.EmailFrom
	}
}
