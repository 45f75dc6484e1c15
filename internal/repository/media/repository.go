package media

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Image upload states
const (
	StatusPending  = "pending"
	StatusUploaded = "uploaded"
	StatusDeleted  = "deleted"
)

// Image is one row of profile_images
type Image struct {
	ID          int            `db:"id"`
	UserID      int            `db:"user_id"`
	Position    int            `db:"position"`
	URL         sql.NullString `db:"url"`
	StoragePath sql.NullString `db:"storage_path"`
	Status      string         `db:"status"`
}

// RepositoryImpl reads profile images from PostgreSQL
type RepositoryImpl struct {
	db *sqlx.DB
}

// NewRepository creates a new media repository
func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{
		db: sqlx.NewDb(db, "postgres"),
	}
}

// GetProfileImages returns the images of a user in display order.
// Deleted images are never returned.
func (r *RepositoryImpl) GetProfileImages(ctx context.Context, userID int) ([]Image, error) {
	var images []Image
	err := r.db.SelectContext(ctx, &images, `
        SELECT id, user_id, position, url, storage_path, status
        FROM profile_images
        WHERE user_id = $1 AND status <> $2
        ORDER BY position, id
    `, userID, StatusDeleted)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get images of user %d", userID)
	}
	return images, nil
}
