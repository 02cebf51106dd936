package services

import (
	"context"

	"github.com/dmitrijs2005/sealnotes/internal/client/client"
	"github.com/dmitrijs2005/sealnotes/internal/client/session"
	"github.com/dmitrijs2005/sealnotes/internal/logging"
)

// Notebook assembles the client core and wires its reactions:
//
//   - a session that becomes authenticated with a new token reloads the notes;
//   - any change of the notes recomputes the displayed set.
type Notebook struct {
	Store    *session.Store
	Notes    *NoteRepository
	Search   *SearchCoordinator
	Composer *Composer
	Auth     *AuthService

	log logging.Logger
}

func NewNotebook(c client.Client, log logging.Logger) *Notebook {
	store := session.NewStore()
	notes := NewNoteRepository(c, log)
	search := NewSearchCoordinator(c, notes, log)

	nb := &Notebook{
		Store:    store,
		Notes:    notes,
		Search:   search,
		Composer: NewComposer(c, notes),
		Auth:     NewAuthService(c, store, notes, search, log),
		log:      log,
	}

	store.Subscribe(nb.onSessionChange)
	notes.Subscribe(nb.onNotesChange)
	return nb
}

func (nb *Notebook) onSessionChange(ctx context.Context, prev, next session.Session) {
	if !next.Authenticated() || next.Token == prev.Token {
		return
	}
	if err := nb.Notes.Reload(ctx, next); err != nil {
		nb.log.Error(ctx, "initial note load failed", "error", err)
	}
}

func (nb *Notebook) onNotesChange(ctx context.Context) {
	if err := nb.Search.Recompute(ctx, nb.Store.Session()); err != nil {
		nb.log.Warn(ctx, "search refresh failed", "error", err)
	}
}
