package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/sealnotes/internal/client/models"
	"github.com/dmitrijs2005/sealnotes/internal/client/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/", time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestHTTPClient_Login(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err)

		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "pw" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid username or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access_token": "abc123", "token_type": "bearer"})
	})

	tok, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "abc123", tok)

	_, err = c.Login(context.Background(), "alice", "bad")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid username or password", apiErr.Error())
}

func TestHTTPClient_Login_EmptyToken(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{})
	})
	_, err := c.Login(context.Background(), "a", "b")
	assert.Error(t, err)
}

func TestHTTPClient_BearerOnDataCalls(t *testing.T) {
	var auth []string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		auth = append(auth, r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/notes/":
			writeJSON(w, http.StatusOK, []models.NoteSummary{{ID: 1}, {ID: 2}})
		case r.Method == http.MethodGet && r.URL.Path == "/notes/search":
			assert.Equal(t, " shop & go", r.URL.Query().Get("q"))
			writeJSON(w, http.StatusOK, []models.NoteSummary{{ID: 2}})
		case r.Method == http.MethodGet && r.URL.Path == "/notes/7":
			writeJSON(w, http.StatusOK, models.NoteDetail{ID: 7, Title: "t"})
		case r.Method == http.MethodPost && r.URL.Path == "/notes/":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"title":"t","content":"c","keywords":"k"}`, string(body))
			writeJSON(w, http.StatusCreated, models.NoteSummary{ID: 3, EncryptedTitle: "x"})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()
	sess := session.Session{Token: "t1"}

	list, err := c.ListNotes(ctx, sess)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	found, err := c.SearchNotes(ctx, sess, " shop & go")
	require.NoError(t, err)
	assert.Equal(t, int64(2), found[0].ID)

	detail, err := c.GetNote(ctx, sess, 7)
	require.NoError(t, err)
	assert.Equal(t, "t", detail.Title)

	created, err := c.CreateNote(ctx, sess, models.CreateNoteRequest{Title: "t", Content: "c", Keywords: "k"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	for _, h := range auth {
		assert.Equal(t, "Bearer t1", h)
	}
}

func TestHTTPClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		message  string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`, ErrUnauthorized, "Could not validate credentials"},
		{"forbidden", http.StatusForbidden, `{"detail":"Not authenticated"}`, ErrUnauthorized, "Not authenticated"},
		{"not found", http.StatusNotFound, `{"detail":"Note not found"}`, ErrNotFound, "Note not found"},
		{"validation list", http.StatusUnprocessableEntity, `{"detail":[{"msg":"field required"}]}`, nil, "request failed with status 422"},
		{"not json", http.StatusInternalServerError, `oops`, nil, "request failed with status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.GetNote(context.Background(), session.Session{Token: "x"}, 1)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.False(t, errors.Is(err, ErrUnavailable))
		})
	}
}

func TestHTTPClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second)
	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.ListNotes(context.Background(), session.Session{Token: "t"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_RegisterAndPing(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			writeJSON(w, http.StatusOK, map[string]string{"message": "running"})
		case "/auth/register":
			writeJSON(w, http.StatusOK, map[string]string{"message": "User registered successfully"})
		}
	})
	assert.NoError(t, c.Ping(context.Background()))
	assert.NoError(t, c.Register(context.Background(), "bob", "pw"))
}
