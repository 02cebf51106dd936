package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sealnotes/internal/common"
	"github.com/dmitrijs2005/sealnotes/internal/dbx"
)

const noteColumns = `id, user_id, encrypted_title, encrypted_content, encrypted_keywords,
	encrypted_drawing, signature, created_at, updated_at`

// SQLRepository stores notes in SQLite or PostgreSQL.
type SQLRepository struct {
	db      *sql.DB
	dialect dbx.Dialect
}

func NewSQLRepository(db *sql.DB, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, note *Note) (*Note, error) {
	query := r.dialect.Rebind(
		`INSERT INTO notes (user_id, encrypted_title, encrypted_content, encrypted_keywords,
			encrypted_drawing, signature, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		note.UserID, note.EncryptedTitle, note.EncryptedContent, note.EncryptedKeywords,
		nullable(note.EncryptedDrawing), note.Signature, note.CreatedAt.UTC(), note.UpdatedAt.UTC(),
	).Scan(&note.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

// ListByUser returns the user's notes oldest first.
func (r *SQLRepository) ListByUser(ctx context.Context, userID int64) ([]Note, error) {
	query := r.dialect.Rebind(
		`SELECT ` + noteColumns + ` FROM notes
		 WHERE user_id = ?
		 ORDER BY id`)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetByIDForUser returns common.ErrNotFound for missing notes and for notes
// owned by someone else.
func (r *SQLRepository) GetByIDForUser(ctx context.Context, userID, id int64) (*Note, error) {
	query := r.dialect.Rebind(
		`SELECT ` + noteColumns + ` FROM notes
		 WHERE id = ? AND user_id = ?`)

	n, err := scanNote(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *SQLRepository) DeleteAll(ctx context.Context) (int64, []string, error) {
	var (
		refs    []string
		deleted int64
	)

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if refs, err = drawingRefs(ctx, tx); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM notes`)
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, nil, fmt.Errorf("db error: %w", err)
	}
	return deleted, refs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (*Note, error) {
	n := &Note{}
	var drawing sql.NullString
	err := s.Scan(&n.ID, &n.UserID, &n.EncryptedTitle, &n.EncryptedContent, &n.EncryptedKeywords,
		&drawing, &n.Signature, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	n.EncryptedDrawing = drawing.String
	return n, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func drawingRefs(ctx context.Context, q dbx.DBTX) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT encrypted_drawing FROM notes WHERE encrypted_drawing IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}
