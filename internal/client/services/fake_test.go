package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/sealnotes/internal/client/client"
	"github.com/dmitrijs2005/sealnotes/internal/client/models"
	"github.com/dmitrijs2005/sealnotes/internal/client/session"
	"github.com/dmitrijs2005/sealnotes/internal/logging"
)

var _ client.Client = (*fakeClient)(nil)

// fakeClient implements client.Client with overridable behaviour and
// records every data call.
type fakeClient struct {
	mu sync.Mutex

	RegisterFn func(username, password string) error
	LoginFn    func(username, password string) (string, error)
	PingErr    error
	ListFn     func(sess session.Session) ([]models.NoteSummary, error)
	GetFn      func(sess session.Session, id int64) (*models.NoteDetail, error)
	CreateFn   func(sess session.Session, req models.CreateNoteRequest) (*models.NoteSummary, error)
	SearchFn   func(ctx context.Context, sess session.Session, term string) ([]models.NoteSummary, error)

	ListCalls   []session.Session
	SearchCalls []string
	CreateCalls []models.CreateNoteRequest
}

func (f *fakeClient) Register(_ context.Context, username, password string) error {
	if f.RegisterFn != nil {
		return f.RegisterFn(username, password)
	}
	return nil
}

func (f *fakeClient) Login(_ context.Context, username, password string) (string, error) {
	if f.LoginFn != nil {
		return f.LoginFn(username, password)
	}
	return "token", nil
}

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }

func (f *fakeClient) ListNotes(_ context.Context, sess session.Session) ([]models.NoteSummary, error) {
	f.mu.Lock()
	f.ListCalls = append(f.ListCalls, sess)
	fn := f.ListFn
	f.mu.Unlock()
	if fn != nil {
		return fn(sess)
	}
	return nil, nil
}

func (f *fakeClient) GetNote(_ context.Context, sess session.Session, id int64) (*models.NoteDetail, error) {
	if f.GetFn != nil {
		return f.GetFn(sess, id)
	}
	return &models.NoteDetail{ID: id}, nil
}

func (f *fakeClient) CreateNote(_ context.Context, sess session.Session, req models.CreateNoteRequest) (*models.NoteSummary, error) {
	f.mu.Lock()
	f.CreateCalls = append(f.CreateCalls, req)
	fn := f.CreateFn
	f.mu.Unlock()
	if fn != nil {
		return fn(sess, req)
	}
	return &models.NoteSummary{ID: 100, EncryptedTitle: "sealed:" + req.Title}, nil
}

func (f *fakeClient) SearchNotes(ctx context.Context, sess session.Session, term string) ([]models.NoteSummary, error) {
	f.mu.Lock()
	f.SearchCalls = append(f.SearchCalls, term)
	fn := f.SearchFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, sess, term)
	}
	return nil, nil
}

func (f *fakeClient) listCalls() []session.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]session.Session(nil), f.ListCalls...)
}

func (f *fakeClient) searchCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.SearchCalls...)
}

func notes(ids ...int64) []models.NoteSummary {
	out := make([]models.NoteSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.NoteSummary{ID: id})
	}
	return out
}

func ids(ns []models.NoteSummary) []int64 {
	out := make([]int64, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.ID)
	}
	return out
}

func discard() logging.Logger { return logging.Discard() }
