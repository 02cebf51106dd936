package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/sealnotes/internal/client/client"
	"github.com/dmitrijs2005/sealnotes/internal/client/models"
	"github.com/dmitrijs2005/sealnotes/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_LoginFailureNeverMutatesSession(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{"bad credentials", &client.APIError{Status: http.StatusBadRequest, Detail: "Invalid username or password"}, ErrInvalidCredentials, "invalid username or password"},
		{"unauthorized", &client.APIError{Status: http.StatusUnauthorized}, ErrInvalidCredentials, "invalid username or password"},
		{"network", client.ErrUnavailable, client.ErrUnavailable, "network error"},
		{"validation", &client.APIError{Status: http.StatusUnprocessableEntity}, ErrInvalidCredentials, "invalid username or password"},
		{"server error", &client.APIError{Status: http.StatusInternalServerError}, ErrInvalidCredentials, "invalid username or password"},
		{"bad response", errors.New("empty access token"), nil, "login: empty access token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{LoginFn: func(string, string) (string, error) { return "", tt.err }}
			nb := NewNotebook(fc, discard())

			err := nb.Auth.Login(context.Background(), "alice", "bad")
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			assert.Equal(t, tt.wantMsg, err.Error())

			assert.Equal(t, session.Session{}, nb.Auth.Session())
			assert.False(t, nb.Auth.Session().Authenticated())
			assert.Empty(t, fc.listCalls())
		})
	}
}

func TestAuth_Register(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	a := NewNotebook(fc, discard()).Auth

	require.NoError(t, a.Register(ctx, "bob", "pw"))
	assert.False(t, a.Session().Authenticated(), "registration does not log in")

	fc.RegisterFn = func(string, string) error {
		return &client.APIError{Status: 400, Detail: "Username already exists"}
	}
	err := a.Register(ctx, "bob", "pw")
	assert.EqualError(t, err, "Username already exists")

	fc.RegisterFn = func(string, string) error { return &client.APIError{Status: 500} }
	assert.ErrorIs(t, a.Register(ctx, "bob", "pw"), ErrRegistrationFailed)

	fc.RegisterFn = func(string, string) error { return client.ErrUnavailable }
	assert.ErrorIs(t, a.Register(ctx, "bob", "pw"), client.ErrUnavailable)
}

func TestAuth_LogoutClearsEverythingMidSearch(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	started := make(chan struct{})
	fc := &fakeClient{
		LoginFn: func(string, string) (string, error) { return "t1", nil },
		ListFn:  func(session.Session) ([]models.NoteSummary, error) { return notes(1, 2), nil },
		SearchFn: func(context.Context, session.Session, string) ([]models.NoteSummary, error) {
			close(started)
			<-release
			return notes(2), nil
		},
	}
	nb := NewNotebook(fc, discard())
	require.NoError(t, nb.Auth.Login(ctx, "alice", "pw"))
	require.Equal(t, 2, nb.Notes.Len())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = nb.Search.SetQuery(ctx, nb.Store.Session(), "shop")
	}()
	<-started

	nb.Auth.Logout(ctx)
	close(release)
	<-done

	assert.Equal(t, session.Session{}, nb.Store.Session())
	assert.Zero(t, nb.Notes.Len())
	assert.Empty(t, nb.Search.Displayed())
	assert.Empty(t, nb.Search.Term())
}

func TestAuth_Ping(t *testing.T) {
	fc := &fakeClient{PingErr: client.ErrUnavailable}
	a := NewNotebook(fc, discard()).Auth
	assert.ErrorIs(t, a.Ping(context.Background()), client.ErrUnavailable)
}
