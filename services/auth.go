// Package services contains the auth orchestrator. AuthService composes the
// hasher, code generators, token issuer, fingerprint binder, and the user
// store into the register/activate/login/refresh/change-password/reset/
// logout-all use cases.
//
// Failure semantics: every use case returns an ActionResult (or LoginResult)
// whose Reason is deliberately generic. Distinct internal failures — user not
// found, wrong password, expired code, storage error — collapse onto one
// external message per use-case family so callers cannot enumerate accounts.
// Details are logged internally instead.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lucaswang977/userauth/auth"
	"github.com/lucaswang977/userauth/codes"
	"github.com/lucaswang977/userauth/config"
	"github.com/lucaswang977/userauth/cryptox"
	"github.com/lucaswang977/userauth/dbx"
	"github.com/lucaswang977/userauth/logging"
	"github.com/lucaswang977/userauth/models"
	"github.com/lucaswang977/userauth/notify"
	"github.com/lucaswang977/userauth/repositories/repomanager"
	"github.com/lucaswang977/userauth/repositories/users"
)

// External failure reasons. Several internal failures map onto each one.
const (
	ReasonEmailAlreadyRegistered = "Email already registered."
	ReasonRegistrationFailed     = "User registration failed."
	ReasonSendActivationFailed   = "Send activation mail failed."
	ReasonNotRegistered          = "Email has not been registered yet."
	ReasonAlreadyActivated       = "Email has already been activated."
	ReasonActivationFailed       = "Email activation failed."
	ReasonInvalidCredentials     = "Username or password invalid."
	ReasonNotActivated           = "User not activated yet."
	ReasonRefreshFailed          = "Refresh token verification failed."
	ReasonOldPasswordIncorrect   = "Old password is incorrect."
	ReasonChangePasswordFailed   = "Change password failed."
	ReasonEmailNotFound          = "Email not found."
	ReasonSendResetFailed        = "Send password reset email failed."
	ReasonResetFailed            = "Password reset failed."
	ReasonUpdatePasswordFailed   = "Update password failed."
	ReasonChangeProfileFailed    = "Change profile failed."
	ReasonLogoutFailed           = "Logout failed."
)

// AuthService orchestrates the authentication use cases over the user store,
// the notifier, and the request-scoped cookie jar the caller passes in.
type AuthService struct {
	db        *sql.DB
	repos     repomanager.RepositoryManager
	notifier  notify.Notifier
	logger    logging.Logger
	cfg       *config.Config
	secretKey []byte
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, n notify.Notifier, l logging.Logger, cfg *config.Config) *AuthService {
	return &AuthService{
		db:        db,
		repos:     m,
		notifier:  n,
		logger:    l.With("module", "auth_service"),
		cfg:       cfg,
		secretKey: []byte(cfg.SecretKey),
	}
}

// Register creates a not-yet-activated user, stores a one-time activation
// code, and mails it.
func (s *AuthService) Register(ctx context.Context, email, password string) models.ActionResult {
	repo := s.repos.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return models.Failure(ReasonEmailAlreadyRegistered)
	} else if !errors.Is(err, users.ErrNotFound) {
		s.logger.Error(ctx, "register: user lookup failed", "error", err)
		return models.Failure(ReasonRegistrationFailed)
	}

	salt, err := cryptox.GenerateSalt()
	if err != nil {
		s.logger.Error(ctx, "register: salt generation failed", "error", err)
		return models.Failure(ReasonRegistrationFailed)
	}
	hash := cryptox.HashPassword(password, salt)

	code, err := codes.GenerateActivationCode()
	if err != nil {
		s.logger.Error(ctx, "register: code generation failed", "error", err)
		return models.Failure(ReasonRegistrationFailed)
	}

	// user row and activation code are written atomically
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		txRepo := s.repos.Users(tx)
		u, err := txRepo.Create(ctx, email, hash, salt)
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		expiresAt := time.Now().Add(s.cfg.ActivationCodeValidityDuration)
		ok, err := txRepo.SetActivationCode(ctx, u.ID, code, expiresAt)
		if err != nil {
			return fmt.Errorf("storing activation code: %w", err)
		}
		if !ok {
			return errors.New("activation code update affected no rows")
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "register failed", "error", err)
		return models.Failure(ReasonRegistrationFailed)
	}

	accepted, err := s.notifier.Send(ctx, email, notify.ActivationMail(code))
	if err != nil || !accepted {
		s.logger.Error(ctx, "register: activation mail not accepted", "error", err)
		return models.Failure(ReasonSendActivationFailed)
	}

	return models.Success()
}

// Activate consumes the activation code for the user. Code mismatch and code
// expiry are indistinguishable to the caller.
func (s *AuthService) Activate(ctx context.Context, email, code string) models.ActionResult {
	repo := s.repos.Users(s.db)

	u, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return models.Failure(ReasonNotRegistered)
		}
		s.logger.Error(ctx, "activate: user lookup failed", "error", err)
		return models.Failure(ReasonActivationFailed)
	}

	if u.EmailActivated {
		return models.Failure(ReasonAlreadyActivated)
	}

	ok, err := repo.ConsumeActivationCode(ctx, u.ID, code)
	if err != nil {
		s.logger.Error(ctx, "activate: consume failed", "error", err)
		return models.Failure(ReasonActivationFailed)
	}
	if !ok {
		return models.Failure(ReasonActivationFailed)
	}

	return models.Success()
}

// Login verifies the credentials, binds a fresh fingerprint into the cookie
// jar and the issued bearer token, and rotates the refresh token. A missing
// account and a wrong password return the same reason.
func (s *AuthService) Login(ctx context.Context, email, password string, jar auth.CookieJar) models.LoginResult {
	repo := s.repos.Users(s.db)

	u, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, users.ErrNotFound) {
			s.logger.Error(ctx, "login: user lookup failed", "error", err)
		}
		return loginFailure(ReasonInvalidCredentials)
	}

	if !u.Password.Valid || !u.PasswordSalt.Valid ||
		!cryptox.VerifyPassword(password, u.PasswordSalt.String, u.Password.String) {
		return loginFailure(ReasonInvalidCredentials)
	}

	if !u.EmailActivated {
		return loginFailure(ReasonNotActivated)
	}

	return s.issueSession(ctx, repo, u.ID, jar, ReasonInvalidCredentials)
}

// Refresh exchanges a refresh token plus the fingerprint cookie for a new
// token pair. The presented bearer token may be expired; its claims are only
// used to locate server-side state, which is then verified. Every failure
// collapses onto one reason.
func (s *AuthService) Refresh(ctx context.Context, refreshToken, token string, jar auth.CookieJar) models.LoginResult {
	claims, err := auth.DecodeTokenUnverified(token)
	if err != nil {
		return loginFailure(ReasonRefreshFailed)
	}

	cookieFingerprint, ok := auth.FingerprintFromCookie(jar, s.cfg.FingerprintCookieName)
	if !ok || !auth.VerifyFingerprint(cookieFingerprint, claims.HashedFingerprint) {
		return loginFailure(ReasonRefreshFailed)
	}

	repo := s.repos.Users(s.db)
	ok, err = repo.VerifyRefreshToken(ctx, refreshToken, claims.UserID)
	if err != nil {
		s.logger.Error(ctx, "refresh: store verification failed", "error", err)
		return loginFailure(ReasonRefreshFailed)
	}
	if !ok {
		return loginFailure(ReasonRefreshFailed)
	}

	return s.issueSession(ctx, repo, claims.UserID, jar, ReasonRefreshFailed)
}

// ChangePassword re-salts and stores a new credential after verifying the
// bearer token, the fingerprint, and the old password. Existing tokens stay
// valid until natural expiry; only LogoutAll revokes the refresh token.
func (s *AuthService) ChangePassword(ctx context.Context, token string, jar auth.CookieJar, oldPassword, newPassword string) models.ActionResult {
	userID, ok := s.verifyTokenAndFingerprint(token, jar)
	if !ok {
		return models.Failure(ReasonChangePasswordFailed)
	}

	repo := s.repos.Users(s.db)
	u, err := repo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, users.ErrNotFound) {
			s.logger.Error(ctx, "change password: user lookup failed", "error", err)
		}
		return models.Failure(ReasonChangePasswordFailed)
	}

	if !u.Password.Valid || !u.PasswordSalt.Valid ||
		!cryptox.VerifyPassword(oldPassword, u.PasswordSalt.String, u.Password.String) {
		return models.Failure(ReasonOldPasswordIncorrect)
	}

	if !s.storePassword(ctx, repo, userID, newPassword) {
		return models.Failure(ReasonChangePasswordFailed)
	}

	return models.Success()
}

// RequestPasswordReset stores a one-time reset code and mails a link
// embedding it.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) models.ActionResult {
	repo := s.repos.Users(s.db)

	u, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return models.Failure(ReasonEmailNotFound)
		}
		s.logger.Error(ctx, "reset request: user lookup failed", "error", err)
		return models.Failure(ReasonResetFailed)
	}

	code, err := codes.GeneratePasswordResetCode()
	if err != nil {
		s.logger.Error(ctx, "reset request: code generation failed", "error", err)
		return models.Failure(ReasonResetFailed)
	}

	expiresAt := time.Now().Add(s.cfg.ResetCodeValidityDuration)
	ok, err := repo.SetResetCode(ctx, u.ID, code, expiresAt)
	if err != nil || !ok {
		s.logger.Error(ctx, "reset request: storing code failed", "error", err)
		return models.Failure(ReasonResetFailed)
	}

	link := fmt.Sprintf("%s?code=%s", s.cfg.PasswordResetURLBase, code)
	accepted, err := s.notifier.Send(ctx, email, notify.PasswordResetMail(link))
	if err != nil || !accepted {
		s.logger.Error(ctx, "reset request: mail not accepted", "error", err)
		return models.Failure(ReasonSendResetFailed)
	}

	return models.Success()
}

// ResetPassword consumes the reset code and stores a new credential. An
// invalid or expired code returns the same reason as an unknown email so the
// caller cannot tell which check failed.
func (s *AuthService) ResetPassword(ctx context.Context, email, resetCode, newPassword string) models.ActionResult {
	repo := s.repos.Users(s.db)

	u, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, users.ErrNotFound) {
			s.logger.Error(ctx, "reset: user lookup failed", "error", err)
		}
		return models.Failure(ReasonEmailNotFound)
	}

	ok, err := repo.ConsumeResetCode(ctx, u.ID, resetCode)
	if err != nil {
		s.logger.Error(ctx, "reset: consume failed", "error", err)
		return models.Failure(ReasonEmailNotFound)
	}
	if !ok {
		return models.Failure(ReasonEmailNotFound)
	}

	if !s.storePassword(ctx, repo, u.ID, newPassword) {
		return models.Failure(ReasonUpdatePasswordFailed)
	}

	return models.Success()
}

// ChangeProfile overwrites only the profile fields that differ from the
// current values.
func (s *AuthService) ChangeProfile(ctx context.Context, token string, jar auth.CookieJar, profile models.UserProfile) models.ActionResult {
	userID, ok := s.verifyTokenAndFingerprint(token, jar)
	if !ok {
		return models.Failure(ReasonChangeProfileFailed)
	}

	repo := s.repos.Users(s.db)
	u, err := repo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, users.ErrNotFound) {
			s.logger.Error(ctx, "change profile: user lookup failed", "error", err)
		}
		return models.Failure(ReasonChangeProfileFailed)
	}

	merged, changed := profile.MergeInto(u)
	if !changed {
		return models.Success()
	}

	ok, err = repo.UpdateProfile(ctx, userID, merged)
	if err != nil || !ok {
		s.logger.Error(ctx, "change profile: update failed", "error", err)
		return models.Failure(ReasonChangeProfileFailed)
	}

	return models.Success()
}

// LogoutAll revokes the stored refresh token so every refresh attempt fails.
// Already-issued bearer tokens remain valid until natural expiry: they are
// stateless and only the refresh path consults the store.
func (s *AuthService) LogoutAll(ctx context.Context, token string, jar auth.CookieJar) models.ActionResult {
	userID, ok := s.verifyTokenAndFingerprint(token, jar)
	if !ok {
		return models.Failure(ReasonLogoutFailed)
	}

	repo := s.repos.Users(s.db)
	ok, err := repo.ClearRefreshToken(ctx, userID)
	if err != nil || !ok {
		s.logger.Error(ctx, "logout: revoke failed", "error", err)
		return models.Failure(ReasonLogoutFailed)
	}

	return models.Success()
}

// --- helpers below ---

func loginFailure(reason string) models.LoginResult {
	return models.LoginResult{ActionResult: models.Failure(reason)}
}

// verifyTokenAndFingerprint checks the bearer token's signature and expiry
// and the client-presented fingerprint against the token's embedded hash.
func (s *AuthService) verifyTokenAndFingerprint(token string, jar auth.CookieJar) (string, bool) {
	claims, err := auth.VerifyToken(token, s.secretKey)
	if err != nil {
		return "", false
	}

	fingerprint, ok := auth.FingerprintFromCookie(jar, s.cfg.FingerprintCookieName)
	if !ok || !auth.VerifyFingerprint(fingerprint, claims.HashedFingerprint) {
		return "", false
	}

	return claims.UserID, true
}

// issueSession mints a fingerprint, sets its cookie, issues a bearer token
// carrying the fingerprint hash, and rotates the stored refresh token.
// Used by both login and refresh; concurrent rotations race at the store and
// the last writer wins, invalidating the loser's pair.
func (s *AuthService) issueSession(ctx context.Context, repo users.Repository, userID string, jar auth.CookieJar, failReason string) models.LoginResult {
	fp, err := auth.GenerateFingerprint()
	if err != nil {
		s.logger.Error(ctx, "session: fingerprint generation failed", "error", err)
		return loginFailure(failReason)
	}

	token, err := auth.IssueToken(userID, fp.Hashed, s.secretKey, s.cfg.JWTValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "session: token signing failed", "error", err)
		return loginFailure(failReason)
	}

	refreshToken, expiresAt := codes.GenerateRefreshTokenID(s.cfg.RefreshTokenValidityDuration)
	ok, err := repo.UpdateRefreshToken(ctx, userID, refreshToken, expiresAt)
	if err != nil || !ok {
		s.logger.Error(ctx, "session: refresh token rotation failed", "error", err)
		return loginFailure(failReason)
	}

	auth.SetFingerprintCookie(jar, s.cfg.FingerprintCookieName, fp.Value, s.cfg.FingerprintCookieMaxAge)

	return models.LoginResult{
		ActionResult:     models.Success(),
		Token:            token,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: expiresAt,
	}
}

// storePassword generates a fresh salt, hashes the password, and persists
// the pair.
func (s *AuthService) storePassword(ctx context.Context, repo users.Repository, userID, password string) bool {
	salt, err := cryptox.GenerateSalt()
	if err != nil {
		s.logger.Error(ctx, "password update: salt generation failed", "error", err)
		return false
	}

	ok, err := repo.UpdatePassword(ctx, userID, cryptox.HashPassword(password, salt), salt)
	if err != nil || !ok {
		s.logger.Error(ctx, "password update failed", "error", err)
		return false
	}
	return true
}
