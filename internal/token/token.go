// Package token signs and verifies the compact claim sets used for
// authentication. Two kinds exist: long-lived auth tokens carrying the user
// identity and short-lived reset tokens carrying only an email address.
// Tokens are never stored; validity is purely signature + expiry.
package token

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds, mapped to distinct responses at the HTTP edge.
var (
	// ErrExpired indicates the exp claim has passed.
	ErrExpired = errors.New("token expired")

	// ErrBadSignature indicates the HMAC does not match.
	ErrBadSignature = errors.New("invalid token signature")

	// ErrMalformed indicates the token cannot be parsed into header+claims+signature.
	ErrMalformed = errors.New("malformed token")
)

// Default TTLs applied when the zero value is configured.
const (
	DefaultAuthTTL  = 48 * time.Hour
	DefaultResetTTL = 12 * time.Hour
)

// AuthClaims is the payload of an auth token. The jti makes tokens issued in
// rapid succession for the same subject unique.
type AuthClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// ResetClaims is the payload of a password-reset token. No jti: reset tokens
// are single-purpose and short-lived.
type ResetClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed tokens with a shared secret.
type Codec struct {
	secret   []byte
	authTTL  time.Duration
	resetTTL time.Duration
}

// New constructs a Codec. Non-positive TTLs fall back to the defaults.
func New(secret []byte, authTTL, resetTTL time.Duration) *Codec {
	if authTTL <= 0 {
		authTTL = DefaultAuthTTL
	}
	if resetTTL <= 0 {
		resetTTL = DefaultResetTTL
	}
	return &Codec{secret: secret, authTTL: authTTL, resetTTL: resetTTL}
}

// IssueAuth mints an auth token for the given user.
func (c *Codec) IssueAuth(userID, email string) (string, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        jti.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.authTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// IssueReset mints a password-reset token embedding the email.
func (c *Codec) IssueReset(email string) (string, error) {
	now := time.Now()
	claims := ResetClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.resetTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// VerifyAuth checks signature and expiry and returns the auth claims.
func (c *Codec) VerifyAuth(tok string) (AuthClaims, error) {
	var claims AuthClaims
	if err := c.verify(tok, &claims); err != nil {
		return AuthClaims{}, err
	}
	return claims, nil
}

// VerifyReset checks signature and expiry and returns the reset claims. It
// does not require the token to be of the reset kind: any valid token is
// accepted and the email claim is read directly (absent means empty).
func (c *Codec) VerifyReset(tok string) (ResetClaims, error) {
	var claims ResetClaims
	if err := c.verify(tok, &claims); err != nil {
		return ResetClaims{}, err
	}
	return claims, nil
}

func (c *Codec) verify(tok string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrBadSignature
		}
		return c.secret, nil
	})
	switch {
	case err == nil && parsed.Valid:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrBadSignature):
		return ErrBadSignature
	default:
		return ErrMalformed
	}
}
