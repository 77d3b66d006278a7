// Package service implements the business operations of the SGC API:
// authentication, account queries, role permissions and the grading
// calculator.
package service

import (
	"errors"
	"time"

	"github.com/edugestion/sgc-api/config"
	"github.com/edugestion/sgc-api/database"
	"github.com/edugestion/sgc-api/database/model"
	"github.com/edugestion/sgc-api/logger"
	"github.com/edugestion/sgc-api/util/crypto"
	"github.com/edugestion/sgc-api/web/token"
)

var (
	// ErrInvalidCredentials is returned for unknown email and for wrong
	// password alike, so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordRequired signals a missing current or new password.
	ErrPasswordRequired = errors.New("current and new password required")

	// ErrPasswordTooShort signals a new password below the minimum length.
	ErrPasswordTooShort = errors.New("new password too short")

	// ErrWrongCurrentPassword signals a failed current-password check.
	ErrWrongCurrentPassword = errors.New("wrong current password")

	// ErrAccountNotFound signals that an account id no longer resolves.
	ErrAccountNotFound = errors.New("account not found")
)

// minPasswordLength is the minimum accepted new password length.
const minPasswordLength = 6

// AuthService verifies credentials, issues session tokens and changes
// passwords.
type AuthService struct {
	repo   database.AccountRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates an AuthService over the shared account store with
// the process-wide token secret and ttl.
func NewAuthService() *AuthService {
	return &AuthService{
		repo:   database.NewAccountRepository(),
		secret: config.GetJWTSecret(),
		ttl:    config.GetTokenTTL(),
	}
}

// NewAuthServiceWith creates an AuthService with explicit dependencies.
func NewAuthServiceWith(repo database.AccountRepository, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{repo: repo, secret: secret, ttl: ttl}
}

// TokenTTL returns the lifetime applied to issued tokens.
func (s *AuthService) TokenTTL() time.Duration {
	return s.ttl
}

// Login checks the credentials and on success issues a session token
// carrying a snapshot of the account. Unknown email and wrong password
// both return ErrInvalidCredentials.
func (s *AuthService) Login(email string, password string) (string, *model.Account, error) {
	account, err := s.repo.FindByEmail(email)
	if err != nil {
		if !database.IsNotFound(err) {
			logger.Warning("login lookup err:", err)
			return "", nil, err
		}
		return "", nil, ErrInvalidCredentials
	}

	if !crypto.CheckPasswordHash(account.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	tokenString, err := token.Issue(account, s.secret, s.ttl)
	if err != nil {
		return "", nil, err
	}

	logger.Infof("Login exitoso: %s (%s)", account.Email, account.Role)
	return tokenString, account, nil
}

// ChangePassword replaces the stored hash of the session-bound account
// after validating the new password and verifying the current one. The
// length check runs before any hash computation, and a wrong current
// password never mutates the store.
func (s *AuthService) ChangePassword(accountId int, currentPassword string, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrPasswordRequired
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	account, err := s.repo.FindById(accountId)
	if err != nil {
		if !database.IsNotFound(err) {
			logger.Warning("change password lookup err:", err)
			return err
		}
		return ErrAccountNotFound
	}

	if !crypto.CheckPasswordHash(account.Password, currentPassword) {
		return ErrWrongCurrentPassword
	}

	newHash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(account.Id, newHash); err != nil {
		if database.IsNotFound(err) {
			return ErrAccountNotFound
		}
		return err
	}

	logger.Infof("Cambio de contraseña: %s", account.Email)
	return nil
}
