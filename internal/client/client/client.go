package client

import (
	"context"

	"github.com/dmitrijs2005/sealnotes/internal/client/models"
	"github.com/dmitrijs2005/sealnotes/internal/client/session"
)

// Client is the notes service API as the client core consumes it. Data calls
// take the session explicitly; the client holds no credential of its own.
type Client interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Ping(ctx context.Context) error

	ListNotes(ctx context.Context, sess session.Session) ([]models.NoteSummary, error)
	GetNote(ctx context.Context, sess session.Session, id int64) (*models.NoteDetail, error)
	CreateNote(ctx context.Context, sess session.Session, req models.CreateNoteRequest) (*models.NoteSummary, error)
	SearchNotes(ctx context.Context, sess session.Session, term string) ([]models.NoteSummary, error)
}
