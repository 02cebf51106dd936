package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/sealnotes/internal/client/models"
	"github.com/dmitrijs2005/sealnotes/internal/client/session"
	"github.com/dmitrijs2005/sealnotes/internal/common"
	"github.com/google/uuid"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// HTTPClient implements Client against the notes service REST API.
// It is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for baseURL (e.g. "http://localhost:8000").
// timeout bounds each request; zero means no client-side limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", session.Session{},
		models.Credentials{Username: username, Password: password}, nil)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var out models.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", session.Session{},
		models.Credentials{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("login: empty access token")
	}
	return out.AccessToken, nil
}

// Ping checks that the service answers its health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", session.Session{}, nil, nil)
}

func (c *HTTPClient) ListNotes(ctx context.Context, sess session.Session) ([]models.NoteSummary, error) {
	var out []models.NoteSummary
	if err := c.do(ctx, http.MethodGet, "/notes/", sess, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetNote(ctx context.Context, sess session.Session, id int64) (*models.NoteDetail, error) {
	var out models.NoteDetail
	if err := c.do(ctx, http.MethodGet, "/notes/"+strconv.FormatInt(id, 10), sess, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, sess session.Session, req models.CreateNoteRequest) (*models.NoteSummary, error) {
	var out models.NoteSummary
	if err := c.do(ctx, http.MethodPost, "/notes/", sess, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchNotes sends term as given; trimming is the caller's decision.
func (c *HTTPClient) SearchNotes(ctx context.Context, sess session.Session, term string) ([]models.NoteSummary, error) {
	var out []models.NoteSummary
	path := "/notes/search?" + url.Values{"q": {term}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, sess, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do sends one request and decodes a 2xx JSON body into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, sess session.Session, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess.Authenticated() {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError reads {"detail": "..."}. FastAPI-style validation errors carry
// a list in detail; those fall back to the generic message.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if json.Unmarshal(data, &payload) == nil && len(payload.Detail) > 0 {
		var s string
		if json.Unmarshal(payload.Detail, &s) == nil {
			apiErr.Detail = s
		}
	}
	return apiErr
}
