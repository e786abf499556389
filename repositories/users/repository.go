// Package users declares the storage contract for the user entity: CRUD plus
// the conditional single-statement updates the auth flows rely on.
package users

import (
	"context"
	"errors"
	"time"

	"github.com/lucaswang977/userauth/models"
)

// ErrNotFound is returned when no user row matches. Callers match it with
// errors.Is and fold it into a generic failure so accounts cannot be
// enumerated.
var ErrNotFound = errors.New("user not found")

// Repository defines the operations over the user row. Every mutating
// operation bumps updated_at and reports whether a row was affected; the
// boolean is the verification result for the conditional consume/verify
// operations.
type Repository interface {
	// Create inserts a user with a hashed credential. The user starts not
	// activated.
	Create(ctx context.Context, email, passwordHash, passwordSalt string) (*models.User, error)

	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteByEmail(ctx context.Context, email string) (bool, error)

	// UpdateRefreshToken overwrites the stored refresh token and expiry
	// (rotation: replaces, never appends).
	UpdateRefreshToken(ctx context.Context, userID, token string, expiresAt time.Time) (bool, error)

	// ClearRefreshToken revokes the stored refresh token ("logout all").
	ClearRefreshToken(ctx context.Context, userID string) (bool, error)

	// VerifyRefreshToken reports whether the stored token equals the
	// presented one and its expiry is strictly in the future. Absence,
	// mismatch, and expiry are indistinguishable to the caller.
	VerifyRefreshToken(ctx context.Context, token, userID string) (bool, error)

	// SetActivationCode stores a one-time activation code with its expiry
	// and marks the user not activated.
	SetActivationCode(ctx context.Context, userID, code string, expiresAt time.Time) (bool, error)

	// ConsumeActivationCode atomically checks the presented code
	// (case-insensitive, unexpired) and clears it, marking the user
	// activated. A code can never be accepted twice.
	ConsumeActivationCode(ctx context.Context, userID, code string) (bool, error)

	// SetResetCode stores a one-time password-reset code with its expiry.
	SetResetCode(ctx context.Context, userID, code string, expiresAt time.Time) (bool, error)

	// ConsumeResetCode atomically checks the presented reset code
	// (case-sensitive, unexpired) and clears it.
	ConsumeResetCode(ctx context.Context, userID, code string) (bool, error)

	// UpdatePassword stores a freshly salted credential pair.
	UpdatePassword(ctx context.Context, userID, passwordHash, passwordSalt string) (bool, error)

	// UpdateProfile overwrites the profile columns with the merged profile.
	UpdateProfile(ctx context.Context, userID string, profile models.UserProfile) (bool, error)
}
