package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sealnotes/internal/client/client"
	"github.com/dmitrijs2005/sealnotes/internal/client/services"
)

// getSimpleText and getPassword are indirections swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) promptCredentials() (string, string, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", "", err
	}
	return userName, password, nil
}

// Register creates an account. The user has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		return err
	}

	if err := a.nb.Auth.Register(ctx, userName, password); err != nil {
		a.println(describeError("Registration failed", err))
		return err
	}

	a.println("Registration successful! Please log in.")
	return nil
}

// Login authenticates; the note list is loaded as part of it.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		return err
	}

	if err := a.nb.Auth.Login(ctx, userName, password); err != nil {
		a.println(describeError("Login failed", err))
		return err
	}

	a.userName = userName
	a.printf("Logged in as %s. %d note(s) loaded.\n", userName, a.nb.Notes.Len())
	return nil
}

// Logout drops the session and every note held in memory.
func (a *App) Logout(ctx context.Context) error {
	a.nb.Auth.Logout(ctx)
	a.userName = ""
	a.println("Logged out.")
	return nil
}

// describeError turns a core error into the line shown to the user.
func describeError(action string, err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return action + ": invalid credentials"
	case errors.Is(err, client.ErrUnavailable):
		return action + ": network error, is the server running?"
	case errors.Is(err, client.ErrUnauthorized):
		return action + ": session is no longer valid, please log in again"
	default:
		return action + ": " + err.Error()
	}
}
