package sec

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/prabhatmusic/riyaaz/internal/storage"
)

// TokenTTL is the fixed lifetime of an issued bearer token.
const TokenTTL = 24 * time.Hour

// Validation failure reasons. Call sites only need to distinguish "expired"
// from every other kind of invalidity.
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the identity carried by a validated bearer token.
type Claims struct {
	AdminID  string
	Username string
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Tokens issues and validates signed bearer tokens. Validation is a pure
// function of the signature and expiry; there is no revocation list.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

// NewTokens creates a token service signing with the given secret.
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), now: time.Now}
}

// Issue produces a signed token for the given admin, expiring [TokenTTL]
// after issuance.
func (t *Tokens) Issue(admin storage.Admin) (string, error) {
	now := t.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Username: admin.Username,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Validate checks the signature and expiry of a raw token and returns the
// embedded identity. It returns [ErrTokenExpired] for expired tokens and
// [ErrTokenInvalid] for every other failure; it never panics on malformed
// input.
func (t *Tokens) Validate(raw string) (Claims, error) {
	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(raw, &parsed,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return t.now() }),
		jwt.WithExpirationRequired(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	default:
		return Claims{}, ErrTokenInvalid
	}
	if parsed.Subject == "" || parsed.Username == "" {
		return Claims{}, ErrTokenInvalid
	}
	return Claims{AdminID: parsed.Subject, Username: parsed.Username}, nil
}
