// Package auth issues and verifies the bearer tokens used by both the HTTP
// and gRPC surfaces. Tokens are self-contained HS256 JWTs; nothing is
// persisted server-side.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of an issued token.
const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims mirrors the user's identity at the moment of issuance plus the
// expiration instant. Field names are part of the wire contract.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	UserID   int64  `json:"id"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies tokens with a process-wide symmetric
// secret loaded at startup. The secret is immutable after construction.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token for the given user, expiring TokenTTL from now.
func (s *TokenService) Issue(username, email string, userID int64) (string, error) {
	claims := Claims{
		Username: username,
		Email:    email,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates tokenString. Bad signature, malformed
// structure and expired tokens all come back as ErrInvalidToken; there is
// no clock-skew leeway.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
