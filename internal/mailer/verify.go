package mailer

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portfolio/internal/domain"
)

// verifyClaims are the claims carried by an email-verification token.
type verifyClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and checks short-lived email-verification tokens with
// a local HS256 secret (VERIFY_SECRET).
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer. ttl bounds token validity.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("verification secret cannot be empty")
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue returns a signed token binding the given email address.
func (t *TokenIssuer) Issue(email string) (string, error) {
	now := time.Now()
	claims := verifyClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign verification token: %w", err)
	}

	return signed, nil
}

// Verify checks a token and returns the email it was issued for.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &verifyClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", tok.Method.Alg())
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*verifyClaims)
	if !ok || claims.Email == "" {
		return "", domain.ErrUnauthorized
	}

	return claims.Email, nil
}
