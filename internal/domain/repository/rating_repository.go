package repository

import (
	"context"
	"time"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
)

// UserRatingRow is a rating joined with the startup name, for "my ratings"
// listings.
type UserRatingRow struct {
	StartupID   string
	StartupName string
	Score       int
	Comment     string
	UpdatedAt   time.Time
}

// RatingExportRow is a rating joined with startup name and username, the raw
// shape behind the admin ratings export.
type RatingExportRow struct {
	StartupName string
	Username    string
	Score       int
	Comment     string
	UpdatedAt   time.Time
}

// RatingRepository is the persistence port for ratings.
// Upsert keys on (startup_id, user_id): one active rating per pair.
type RatingRepository interface {
	Upsert(ctx context.Context, r *entity.Rating) error
	GetByUserAndStartup(ctx context.Context, userID, startupID string) (*entity.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]UserRatingRow, error)
	ListForExport(ctx context.Context) ([]RatingExportRow, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
