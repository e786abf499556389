package auth

import "time"

// CookieOptions mirrors the cookie attributes the auth core cares about.
type CookieOptions struct {
	Path     string
	MaxAge   time.Duration
	HTTPOnly bool
}

// CookieJar is the request-scoped cookie access the embedding web layer
// provides. It is used exclusively for the fingerprint cookie.
type CookieJar interface {
	Set(name, value string, opts CookieOptions)
	Get(name string) (value string, ok bool)
}

// SetFingerprintCookie delivers the raw fingerprint to the client. The cookie
// is HTTP-only and path-scoped so a stolen bearer token alone cannot be
// replayed without it.
func SetFingerprintCookie(jar CookieJar, name, fingerprint string, maxAge time.Duration) {
	jar.Set(name, fingerprint, CookieOptions{
		Path:     "/",
		MaxAge:   maxAge,
		HTTPOnly: true,
	})
}

// FingerprintFromCookie reads the client-presented fingerprint back.
func FingerprintFromCookie(jar CookieJar, name string) (string, bool) {
	return jar.Get(name)
}
