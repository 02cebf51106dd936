package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/sealnotes/internal/client/client"
	"github.com/dmitrijs2005/sealnotes/internal/client/models"
	"github.com/dmitrijs2005/sealnotes/internal/client/session"
)

// DrawingCapturedNotice is shown after a drawing has been captured.
const DrawingCapturedNotice = `Drawing saved! Add a title and keywords, then run "save" to store the encrypted note.`

// Composer owns the draft being authored and submits it as a new note.
type Composer struct {
	client client.Client
	repo   *NoteRepository

	mu         sync.Mutex
	draft      models.Draft
	submitting bool
}

func NewComposer(c client.Client, repo *NoteRepository) *Composer {
	return &Composer{client: c, repo: repo, draft: models.Draft{Mode: models.ModeText}}
}

// Draft returns a snapshot of the current draft.
func (c *Composer) Draft() models.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

func (c *Composer) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Title = title
}

func (c *Composer) SetKeywords(keywords string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Keywords = keywords
}

func (c *Composer) SetContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Content = content
}

// SetMode switches authoring mode. Title and keywords are kept; leaving
// drawing mode discards the pending drawing.
func (c *Composer) SetMode(mode models.Mode) error {
	if mode != models.ModeText && mode != models.ModeDrawing {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft.Mode == models.ModeDrawing && mode != models.ModeDrawing {
		c.draft.PendingDrawing = ""
	}
	c.draft.Mode = mode
	return nil
}

// CaptureDrawing stores img as the pending drawing. The draft must be in
// drawing mode.
func (c *Composer) CaptureDrawing(img models.Image) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft.Mode != models.ModeDrawing {
		return ErrNotDrawingMode
	}
	c.draft.PendingDrawing = img
	return nil
}

// Submit sends the draft to the service. On success the created note is
// appended to the repository and the fields that were sent are emptied;
// edits made while the request was in flight survive. On any failure the
// draft is left exactly as it was.
func (c *Composer) Submit(ctx context.Context, sess session.Session) (*models.NoteSummary, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	draft := c.draft
	if strings.TrimSpace(draft.Title) == "" {
		c.mu.Unlock()
		return nil, ErrTitleRequired
	}
	if !sess.Authenticated() {
		c.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	c.submitting = true
	c.mu.Unlock()

	req := models.NewCreateNoteRequest(draft.Title, draft.Keywords, draft.Body())
	created, err := c.client.CreateNote(ctx, sess, req)

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("create note: %w", err)
	}
	c.draft = clearSent(c.draft, draft)
	c.mu.Unlock()

	c.repo.Append(ctx, *created)
	return created, nil
}

// clearSent empties the fields of cur that still hold what sent carried.
func clearSent(cur, sent models.Draft) models.Draft {
	if cur.Title == sent.Title {
		cur.Title = ""
	}
	if cur.Keywords == sent.Keywords {
		cur.Keywords = ""
	}
	if cur.Content == sent.Content {
		cur.Content = ""
	}
	if cur.PendingDrawing == sent.PendingDrawing {
		cur.PendingDrawing = ""
	}
	return cur
}
