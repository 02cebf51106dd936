package notes

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, note *Note) (*Note, error)
	ListByUser(ctx context.Context, userID int64) ([]Note, error)
	GetByIDForUser(ctx context.Context, userID, id int64) (*Note, error)
	// DeleteAll removes every note and returns the count and the drawing
	// references they held.
	DeleteAll(ctx context.Context) (int64, []string, error)
}
