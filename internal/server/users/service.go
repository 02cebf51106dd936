// Package users registers accounts, checks passwords and resolves bearer
// tokens to their owners.
package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/sealnotes/internal/common"
	"github.com/dmitrijs2005/sealnotes/internal/cryptox"
	"github.com/dmitrijs2005/sealnotes/internal/server/auth"
)

var ErrMissingCredentials = errors.New("username and password are required")

type Service struct {
	repo   Repository
	tokens *auth.Issuer
	now    func() time.Time
}

func NewService(repo Repository, tokens *auth.Issuer) *Service {
	return &Service{repo: repo, tokens: tokens, now: time.Now}
}

// Register creates a user with an argon2id password hash. A taken username
// returns common.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, common.ErrAlreadyExists
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user := &User{
		Username:     username,
		PasswordHash: cryptox.HashPassword(password),
		CreatedAt:    s.now().UTC(),
	}

	user, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks the password and returns a signed access token. Unknown users
// and wrong passwords both return common.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	return s.tokens.GenerateToken(strconv.FormatInt(user.ID, 10), user.Username)
}

// Authenticate resolves a bearer token to its user. Any failure is reported
// as common.ErrUnauthorized wrapping the cause.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subject", common.ErrUnauthorized)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}
