// Package notes seals, signs and stores notes, and opens them again for
// their owners.
package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/sealnotes/internal/cryptox"
	"github.com/dmitrijs2005/sealnotes/internal/logging"
	"github.com/dmitrijs2005/sealnotes/internal/server/blobstore"
)

type Service struct {
	repo     Repository
	cipher   *cryptox.FieldCipher
	signer   *cryptox.Signer
	drawings blobstore.Store
	logger   logging.Logger
	now      func() time.Time
}

func NewService(repo Repository, cipher *cryptox.FieldCipher, signer *cryptox.Signer, drawings blobstore.Store, l logging.Logger) *Service {
	return &Service{
		repo:     repo,
		cipher:   cipher,
		signer:   signer,
		drawings: drawings,
		logger:   l.With("module", "notes"),
		now:      time.Now,
	}
}

// Create seals every field of d, signs the sealed content and stores the
// note under userID.
func (s *Service) Create(ctx context.Context, userID int64, d Draft) (*Note, error) {
	now := s.now().UTC()

	note := &Note{
		UserID:            userID,
		EncryptedTitle:    s.cipher.Seal(d.Title),
		EncryptedContent:  s.cipher.Seal(d.Content),
		EncryptedKeywords: s.cipher.Seal(d.Keywords),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	note.Signature = s.signer.Sign(note.EncryptedContent)

	if d.Drawing != "" {
		ref, err := s.drawings.Put(ctx, s.cipher.Seal(d.Drawing))
		if err != nil {
			return nil, fmt.Errorf("store drawing: %w", err)
		}
		note.EncryptedDrawing = ref
	}

	note, err := s.repo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	s.logger.Debug(ctx, "note created", "note_id", note.ID, "user_id", userID, "drawing", d.Drawing != "")
	return note, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]Note, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get verifies the content signature and returns the opened note.
// Missing or foreign notes return common.ErrNotFound. A signature mismatch
// returns common.ErrInvalidSignature.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Detail, error) {
	note, err := s.repo.GetByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.signer.Verify(note.EncryptedContent, note.Signature); err != nil {
		s.logger.Warn(ctx, "signature mismatch", "note_id", id, "user_id", userID)
		return nil, err
	}

	d := &Detail{ID: note.ID, CreatedAt: note.CreatedAt, UpdatedAt: note.UpdatedAt}
	fields := []struct {
		dst    *string
		sealed string
	}{
		{&d.Title, note.EncryptedTitle},
		{&d.Content, note.EncryptedContent},
		{&d.Keywords, note.EncryptedKeywords},
	}
	for _, f := range fields {
		if *f.dst, err = s.cipher.Open(f.sealed); err != nil {
			return nil, fmt.Errorf("open note %d: %w", id, err)
		}
	}

	if note.EncryptedDrawing != "" {
		sealed, err := s.drawings.Get(ctx, note.EncryptedDrawing)
		if err != nil {
			return nil, fmt.Errorf("load drawing: %w", err)
		}
		if d.Drawing, err = s.cipher.Open(sealed); err != nil {
			return nil, fmt.Errorf("open drawing %d: %w", id, err)
		}
	}

	return d, nil
}

// Search returns the user's notes whose keywords contain q, ignoring case.
// A blank q matches nothing. Notes whose keywords cannot be opened are skipped.
func (s *Service) Search(ctx context.Context, userID int64, q string) ([]Note, error) {
	result := make([]Note, 0)
	if strings.TrimSpace(q) == "" {
		return result, nil
	}

	all, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(q)
	for _, n := range all {
		keywords, err := s.cipher.Open(n.EncryptedKeywords)
		if err != nil {
			s.logger.Debug(ctx, "skipping unreadable note", "note_id", n.ID, "error", err)
			continue
		}
		if strings.Contains(strings.ToLower(keywords), term) {
			result = append(result, n)
		}
	}
	return result, nil
}

// Purge deletes every note of every user together with stored drawings and
// returns how many notes were removed. Drawing deletion errors are joined.
func (s *Service) Purge(ctx context.Context) (int64, error) {
	deleted, refs, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	var errs []error
	for _, ref := range refs {
		if err := s.drawings.Delete(ctx, ref); err != nil {
			errs = append(errs, err)
		}
	}
	s.logger.Info(ctx, "notes purged", "notes", deleted, "drawings", len(refs))
	return deleted, errors.Join(errs...)
}
