// Package services orchestrates the domain operations behind both wire
// surfaces. Services hold shared repository handles and mutate nothing
// in-process; all durable state lives in the database.
package services

import (
	"context"

	"github.com/dmitrijs2005/goblog/internal/logging"
	"github.com/dmitrijs2005/goblog/internal/server/auth"
	"github.com/dmitrijs2005/goblog/internal/server/models"
	"github.com/dmitrijs2005/goblog/internal/server/repositories/users"
)

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisteredUser is the response to both register and login: a bearer
// token for the (new) account.
type RegisteredUser struct {
	Token string `json:"token"`
}

type AuthService struct {
	users  users.Repository
	tokens *auth.TokenService
	logger logging.Logger
}

func NewAuthService(u users.Repository, t *auth.TokenService, l logging.Logger) *AuthService {
	return &AuthService{users: u, tokens: t, logger: l.With("module", "auth_service")}
}

// Register allocates an id, persists the new user and hands back a token.
// The user is persisted before the token is issued; if persistence fails
// no token is returned.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisteredUser, error) {
	id, err := s.users.NextID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := models.NewUser(id, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "username", user.Username, "id", user.ID)
	return s.issueFor(user)
}

// Login verifies the credentials and hands back a fresh token. A missing
// account surfaces as ErrUserNotFound, a bad password as ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*RegisteredUser, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if err := user.VerifyPassword(req.Password); err != nil {
		return nil, err
	}

	return s.issueFor(user)
}

func (s *AuthService) issueFor(user *models.User) (*RegisteredUser, error) {
	token, err := s.tokens.Issue(user.Username, user.Email, user.ID)
	if err != nil {
		return nil, err
	}
	return &RegisteredUser{Token: token}, nil
}
