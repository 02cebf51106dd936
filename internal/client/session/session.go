// Package session holds the client's credential: the bearer token issued at
// login and the observers that react when it changes.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is an immutable snapshot of the credential. The zero value is the
// logged-out session.
type Session struct {
	Token string
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Claims is what the client can read from its own token without the signing
// key. It is informational only; the service stays the authority.
type Claims struct {
	Subject   string
	Username  string
	ExpiresAt time.Time
}

var ErrNoToken = errors.New("no token")

type tokenClaims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Claims decodes the token payload without verifying its signature.
func (s Session) Claims() (Claims, error) {
	if !s.Authenticated() {
		return Claims{}, ErrNoToken
	}

	var tc tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, &tc); err != nil {
		return Claims{}, err
	}

	c := Claims{Subject: tc.Subject, Username: tc.Username}
	if tc.ExpiresAt != nil {
		c.ExpiresAt = tc.ExpiresAt.Time
	}
	return c, nil
}

// Observer is notified after the stored session changes.
type Observer func(ctx context.Context, prev, next Session)

// Store is the single writable holder of the Session. Observers run after
// the write is committed and the lock released, in subscription order.
type Store struct {
	mu        sync.RWMutex
	current   Session
	observers []Observer
}

func NewStore() *Store {
	return &Store{}
}

// Session returns the current snapshot.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers o for every subsequent change.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Set stores a session carrying token.
func (s *Store) Set(ctx context.Context, token string) {
	s.swap(ctx, Session{Token: token})
}

// Clear resets to the logged-out session.
func (s *Store) Clear(ctx context.Context) {
	s.swap(ctx, Session{})
}

func (s *Store) swap(ctx context.Context, next Session) {
	s.mu.Lock()
	prev := s.current
	s.current = next
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	if prev == next {
		return
	}
	for _, o := range observers {
		o(ctx, prev, next)
	}
}
