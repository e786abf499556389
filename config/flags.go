package config

import (
	"flag"
	"os"
	"time"

	"github.com/lucaswang977/userauth/flagx"
)

// parseFlags overlays selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      bearer token validity, minutes
//	-r int      refresh token validity, minutes
//
// Arguments are filtered first so flags owned by the embedding application
// do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-t", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	jwtValidity := fs.Int("t", int(config.JWTValidityDuration.Minutes()), "bearer token validity (in minutes)")
	refreshValidity := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// apply the minute-granular duration flags only when actually passed,
	// so sub-minute values from the env or JSON layers survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.JWTValidityDuration = time.Duration(*jwtValidity) * time.Minute
		case "r":
			config.RefreshTokenValidityDuration = time.Duration(*refreshValidity) * time.Minute
		}
	})
}
