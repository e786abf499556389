// Package models holds the user entity and the result shapes returned by the
// auth service.
package models

import (
	"database/sql"
	"time"
)

// User is the single source of truth for a user's credential and session
// state. Credential, code, and refresh-token columns are nullable: password
// and salt are always set or cleared together, and at most one live refresh
// token exists per user (rotation replaces, never appends).
type User struct {
	ID    string
	Email string

	Password     sql.NullString
	PasswordSalt sql.NullString

	EmailActivated             bool
	EmailActivateCode          sql.NullString
	EmailActivateCodeExpiresAt sql.NullTime

	PasswordResetCode          sql.NullString
	PasswordResetCodeExpiresAt sql.NullTime

	RefreshToken          sql.NullString
	RefreshTokenExpiresAt sql.NullTime

	FirstName sql.NullString
	LastName  sql.NullString
	Nickname  sql.NullString
	Gender    sql.NullString
	AvatarURL sql.NullString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserProfile carries the mutable, independently optional profile fields.
// An empty field means "leave unchanged".
type UserProfile struct {
	FirstName string
	LastName  string
	Nickname  string
	Gender    string
	AvatarURL string
}

// MergeInto overlays the non-empty fields of p that differ from the user's
// current values and returns the resulting full profile plus whether
// anything actually changed.
func (p UserProfile) MergeInto(u *User) (UserProfile, bool) {
	merged := UserProfile{
		FirstName: u.FirstName.String,
		LastName:  u.LastName.String,
		Nickname:  u.Nickname.String,
		Gender:    u.Gender.String,
		AvatarURL: u.AvatarURL.String,
	}

	changed := false
	apply := func(dst *string, v string) {
		if v != "" && v != *dst {
			*dst = v
			changed = true
		}
	}

	apply(&merged.FirstName, p.FirstName)
	apply(&merged.LastName, p.LastName)
	apply(&merged.Nickname, p.Nickname)
	apply(&merged.Gender, p.Gender)
	apply(&merged.AvatarURL, p.AvatarURL)

	return merged, changed
}
