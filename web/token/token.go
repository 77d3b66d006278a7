// Package token implements the signed session token codec. Sessions are
// stateless: everything the server needs to identify a caller lives inside
// the token itself, so there is no server-side session table.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/edugestion/sgc-api/database/model"
)

// ErrInvalidToken is the single verification outcome for every failure
// mode: malformed structure, bad signature and expiry all collapse into it
// so callers cannot distinguish tampering from expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the signed session payload, a snapshot of the account at issue
// time. It is never refreshed: a role change only propagates on re-login.
type Claims struct {
	AccountId int        `json:"id"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	Name      string     `json:"displayName"`
	jwt.RegisteredClaims
}

// Issue creates a signed session token for the account, valid for ttl.
func Issue(account *model.Account, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountId: account.Id,
		Email:     account.Email,
		Role:      account.Role,
		Name:      account.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify parses and validates a session token. It checks structure,
// signature against secret and expiry; any failure yields ErrInvalidToken.
func Verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
