package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/sealnotes/internal/client/client"
	"github.com/dmitrijs2005/sealnotes/internal/client/models"
	"github.com/dmitrijs2005/sealnotes/internal/client/session"
	"github.com/dmitrijs2005/sealnotes/internal/logging"
)

type observer func(ctx context.Context)

// NoteRepository is the in-memory, ordered list of note summaries fetched
// from the service. It is only mutated by Reload (wholesale), Append and Clear.
type NoteRepository struct {
	client client.Client
	log    logging.Logger

	mu        sync.RWMutex
	notes     []models.NoteSummary
	version   uint64
	epoch     uint64
	observers []observer
}

func NewNoteRepository(c client.Client, log logging.Logger) *NoteRepository {
	return &NoteRepository{client: c, log: log.With("component", "notes")}
}

// Subscribe registers fn to run after every change of the contents.
func (r *NoteRepository) Subscribe(fn observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

// Reload replaces the contents with the service's list, keeping its order.
// It does nothing for a logged-out session. On failure the contents stay as
// they were. A Clear issued while the request is in flight wins.
func (r *NoteRepository) Reload(ctx context.Context, sess session.Session) error {
	if !sess.Authenticated() {
		return nil
	}

	r.mu.RLock()
	epoch := r.epoch
	r.mu.RUnlock()

	notes, err := r.client.ListNotes(ctx, sess)
	if err != nil {
		r.log.Warn(ctx, "reload failed", "error", err)
		return fmt.Errorf("reload notes: %w", err)
	}
	if notes == nil {
		notes = []models.NoteSummary{}
	}

	r.mu.Lock()
	if r.epoch != epoch {
		r.mu.Unlock()
		r.log.Debug(ctx, "discarding reload after clear")
		return nil
	}
	r.notes = notes
	r.version++
	r.mu.Unlock()

	r.log.Debug(ctx, "notes reloaded", "count", len(notes))
	r.notify(ctx)
	return nil
}

// FetchDetail returns the decrypted note. The repository is not touched.
func (r *NoteRepository) FetchDetail(ctx context.Context, sess session.Session, id int64) (*models.NoteDetail, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	return r.client.GetNote(ctx, sess, id)
}

// Append adds a freshly created note at the end.
func (r *NoteRepository) Append(ctx context.Context, note models.NoteSummary) {
	r.mu.Lock()
	r.notes = append(r.notes, note)
	r.version++
	r.mu.Unlock()

	r.notify(ctx)
}

// Clear empties the repository and invalidates in-flight reloads.
func (r *NoteRepository) Clear(ctx context.Context) {
	r.mu.Lock()
	r.notes = nil
	r.version++
	r.epoch++
	r.mu.Unlock()

	r.notify(ctx)
}

// Notes returns a copy of the ordered contents.
func (r *NoteRepository) Notes() []models.NoteSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.NoteSummary, len(r.notes))
	copy(out, r.notes)
	return out
}

func (r *NoteRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notes)
}

// Version increases on every change of the contents.
func (r *NoteRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *NoteRepository) notify(ctx context.Context) {
	r.mu.RLock()
	observers := append([]observer(nil), r.observers...)
	r.mu.RUnlock()

	for _, fn := range observers {
		fn(ctx)
	}
}
