// Package models holds the domain entities. Construction and lifecycle
// rules live here; persistence is the repositories' concern.
package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/goblog/internal/common"
	"github.com/dmitrijs2005/goblog/internal/hashx"
)

// User is an account. PasswordHash is opaque and must never leave the
// process: it is excluded from every response and log line.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser builds a user with a freshly hashed password and the creation
// instant set to now (UTC).
func NewUser(id int64, username, email, password string) (*User, error) {
	hash, err := hashx.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password", common.ErrInternal)
	}

	return &User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// VerifyPassword checks password against the stored hash. A mismatch is
// ErrUnauthorized carrying the username; a hash that cannot be parsed is
// ErrInternal.
func (u *User) VerifyPassword(password string) error {
	ok, err := hashx.Verify(password, u.PasswordHash)
	if err != nil {
		return fmt.Errorf("%w: verifying password", common.ErrInternal)
	}
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, u.Username)
	}
	return nil
}
