package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sealnotes/internal/client/client"
	"github.com/dmitrijs2005/sealnotes/internal/client/session"
	"github.com/dmitrijs2005/sealnotes/internal/logging"
)

// AuthService drives registration, login and logout. It is the only writer
// of the session store.
type AuthService struct {
	client client.Client
	store  *session.Store
	repo   *NoteRepository
	search *SearchCoordinator
	log    logging.Logger
}

func NewAuthService(c client.Client, store *session.Store, repo *NoteRepository, search *SearchCoordinator, log logging.Logger) *AuthService {
	return &AuthService{client: c, store: store, repo: repo, search: search, log: log.With("component", "auth")}
}

// Register creates an account. The session is never touched; the caller
// still has to log in. Service rejections come back as *client.APIError when
// the service explained itself and as ErrRegistrationFailed otherwise.
func (a *AuthService) Register(ctx context.Context, username, password string) error {
	err := a.client.Register(ctx, username, password)
	if err == nil {
		return nil
	}
	if errors.Is(err, client.ErrUnavailable) {
		return err
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr
	}
	return fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
}

// Login authenticates and stores the issued token. Store observers run
// before Login returns. A failed login leaves the session unchanged. Any
// rejection from the service reads as bad credentials. Logging in over a
// different active session tears that session down first, so nothing of the
// previous account stays displayed.
func (a *AuthService) Login(ctx context.Context, username, password string) error {
	token, err := a.client.Login(ctx, username, password)
	var apiErr *client.APIError
	switch {
	case err == nil:
	case errors.Is(err, client.ErrUnavailable):
		return err
	case errors.As(err, &apiErr):
		return ErrInvalidCredentials
	default:
		return fmt.Errorf("login: %w", err)
	}

	if cur := a.store.Session(); cur.Authenticated() && cur.Token != token {
		a.Logout(ctx)
	}

	a.log.Info(ctx, "logged in", "username", username)
	a.store.Set(ctx, token)
	return nil
}

// Logout ends the session locally. No request is sent.
func (a *AuthService) Logout(ctx context.Context) {
	a.search.Reset()
	a.store.Clear(ctx)
	a.repo.Clear(ctx)
	a.log.Info(ctx, "logged out")
}

// Session returns the current session snapshot.
func (a *AuthService) Session() session.Session {
	return a.store.Session()
}

// Ping probes the service health endpoint.
func (a *AuthService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
