package notes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/sealnotes/internal/common"
	"github.com/dmitrijs2005/sealnotes/internal/dbx"
	"github.com/dmitrijs2005/sealnotes/internal/server/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) (*sql.DB, dbx.Dialect) {
	t.Helper()
	db, d, err := dbx.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db, d))
	return db, d
}

func addUser(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`INSERT INTO users (username, password_hash, created_at) VALUES (?, 'x', ?) RETURNING id`,
		name, time.Now().UTC()).Scan(&id)
	require.NoError(t, err)
	return id
}

func sampleNote(userID int64, title, drawing string) *Note {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Note{
		UserID:            userID,
		EncryptedTitle:    title,
		EncryptedContent:  "c",
		EncryptedKeywords: "k",
		EncryptedDrawing:  drawing,
		Signature:         "sig",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestSQLRepository_CreateListGet(t *testing.T) {
	db, d := openDB(t)
	repo := NewSQLRepository(db, d)
	ctx := context.Background()

	alice := addUser(t, db, "alice")
	bob := addUser(t, db, "bob")

	first, err := repo.Create(ctx, sampleNote(alice, "t1", ""))
	require.NoError(t, err)
	second, err := repo.Create(ctx, sampleNote(alice, "t2", "ref"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleNote(bob, "bob's", ""))
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID, "insertion order")
	assert.Equal(t, "", list[0].EncryptedDrawing)
	assert.Equal(t, "ref", list[1].EncryptedDrawing)

	got, err := repo.GetByIDForUser(ctx, alice, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.EncryptedTitle)
	assert.True(t, got.CreatedAt.Equal(second.CreatedAt))

	_, err = repo.GetByIDForUser(ctx, bob, second.ID)
	assert.ErrorIs(t, err, common.ErrNotFound, "other users' notes are invisible")

	empty, err := repo.ListByUser(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSQLRepository_DeleteAll(t *testing.T) {
	db, d := openDB(t)
	repo := NewSQLRepository(db, d)
	ctx := context.Background()
	alice := addUser(t, db, "alice")

	for _, ref := range []string{"", "s3:a", "inline"} {
		_, err := repo.Create(ctx, sampleNote(alice, "t", ref))
		require.NoError(t, err)
	}

	deleted, refs, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.ElementsMatch(t, []string{"s3:a", "inline"}, refs)

	list, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSQLRepository_DeleteAll_RowErrorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT encrypted_drawing FROM notes`).WillReturnRows(
		sqlmock.NewRows([]string{"encrypted_drawing"}).
			AddRow("s3:a").
			AddRow("s3:b").
			RowError(1, errors.New("connection reset")))
	mock.ExpectRollback()

	repo := NewSQLRepository(db, dbx.Postgres)
	deleted, refs, err := repo.DeleteAll(context.Background())
	require.ErrorContains(t, err, "connection reset")
	assert.Zero(t, deleted)
	assert.Nil(t, refs)
	assert.NoError(t, mock.ExpectationsWereMet(), "nothing is deleted after a failed scan")
}
