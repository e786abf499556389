package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lucaswang977/userauth/dbx"
	"github.com/lucaswang977/userauth/models"
)

const userColumns = `id, email, password, password_salt,
	email_activated, email_activate_code, email_activate_code_expires_at,
	password_reset_code, password_reset_code_expires_at,
	refresh_token, refresh_token_expires_at,
	first_name, last_name, nickname, gender, avatar_url,
	created_at, updated_at`

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.PasswordSalt,
		&u.EmailActivated, &u.EmailActivateCode, &u.EmailActivateCodeExpiresAt,
		&u.PasswordResetCode, &u.PasswordResetCodeExpiresAt,
		&u.RefreshToken, &u.RefreshTokenExpiresAt,
		&u.FirstName, &u.LastName, &u.Nickname, &u.Gender, &u.AvatarURL,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, email, passwordHash, passwordSalt string) (*models.User, error) {
	query := `
		INSERT INTO users (email, password, password_salt)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	u := &models.User{
		Email:        email,
		Password:     sql.NullString{String: passwordHash, Valid: true},
		PasswordSalt: sql.NullString{String: passwordSalt, Valid: true},
	}
	err := r.db.QueryRowContext(ctx, query, email, passwordHash, passwordSalt).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return r.exec(ctx, `DELETE FROM users WHERE id = $1`, id)
}

func (r *PostgresRepository) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	return r.exec(ctx, `DELETE FROM users WHERE email = $1`, email)
}

func (r *PostgresRepository) UpdateRefreshToken(ctx context.Context, userID, token string, expiresAt time.Time) (bool, error) {
	query := `
		UPDATE users
		SET refresh_token = $2, refresh_token_expires_at = $3, updated_at = $4
		WHERE id = $1
	`
	return r.exec(ctx, query, userID, token, expiresAt, time.Now())
}

func (r *PostgresRepository) ClearRefreshToken(ctx context.Context, userID string) (bool, error) {
	query := `
		UPDATE users
		SET refresh_token = NULL, refresh_token_expires_at = NULL, updated_at = $2
		WHERE id = $1
	`
	return r.exec(ctx, query, userID, time.Now())
}

func (r *PostgresRepository) VerifyRefreshToken(ctx context.Context, token, userID string) (bool, error) {
	query := `
		SELECT count(*) FROM users
		WHERE id = $1 AND refresh_token = $2 AND refresh_token_expires_at > $3
	`
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, token, time.Now()).Scan(&n); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) SetActivationCode(ctx context.Context, userID, code string, expiresAt time.Time) (bool, error) {
	query := `
		UPDATE users
		SET email_activate_code = $2, email_activated = false,
		    email_activate_code_expires_at = $3, updated_at = $4
		WHERE id = $1
	`
	return r.exec(ctx, query, userID, code, expiresAt, time.Now())
}

// ConsumeActivationCode verifies and clears in one statement so a code
// cannot be replayed inside its validity window.
func (r *PostgresRepository) ConsumeActivationCode(ctx context.Context, userID, code string) (bool, error) {
	query := `
		UPDATE users
		SET email_activated = true, email_activate_code = NULL,
		    email_activate_code_expires_at = NULL, updated_at = $3
		WHERE id = $1
		  AND email_activate_code IS NOT NULL
		  AND lower(email_activate_code) = lower($2)
		  AND email_activate_code_expires_at > $3
	`
	return r.exec(ctx, query, userID, code, time.Now())
}

func (r *PostgresRepository) SetResetCode(ctx context.Context, userID, code string, expiresAt time.Time) (bool, error) {
	query := `
		UPDATE users
		SET password_reset_code = $2, password_reset_code_expires_at = $3, updated_at = $4
		WHERE id = $1
	`
	return r.exec(ctx, query, userID, code, expiresAt, time.Now())
}

func (r *PostgresRepository) ConsumeResetCode(ctx context.Context, userID, code string) (bool, error) {
	query := `
		UPDATE users
		SET password_reset_code = NULL, password_reset_code_expires_at = NULL, updated_at = $3
		WHERE id = $1
		  AND password_reset_code IS NOT NULL
		  AND password_reset_code = $2
		  AND password_reset_code_expires_at > $3
	`
	return r.exec(ctx, query, userID, code, time.Now())
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID, passwordHash, passwordSalt string) (bool, error) {
	query := `
		UPDATE users
		SET password = $2, password_salt = $3, updated_at = $4
		WHERE id = $1
	`
	return r.exec(ctx, query, userID, passwordHash, passwordSalt, time.Now())
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, userID string, p models.UserProfile) (bool, error) {
	query := `
		UPDATE users
		SET first_name = NULLIF($2, ''), last_name = NULLIF($3, ''),
		    nickname = NULLIF($4, ''), gender = NULLIF($5, ''),
		    avatar_url = NULLIF($6, ''), updated_at = $7
		WHERE id = $1
	`
	return r.exec(ctx, query, userID,
		p.FirstName, p.LastName, p.Nickname, p.Gender, p.AvatarURL, time.Now())
}

// exec runs a statement and reports whether it affected at least one row.
func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected > 0, nil
}
