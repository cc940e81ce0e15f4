package repository

import (
	"context"
	"time"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
)

// ShortlistRow is a shortlist entry joined with the startup, for "my
// shortlist" listings.
type ShortlistRow struct {
	Startup entity.Startup
	AddedAt time.Time
}

// ShortlistExportRow is a shortlist entry joined with startup name and
// username, the raw shape behind the admin shortlist export.
type ShortlistExportRow struct {
	StartupName string
	Username    string
	CreatedAt   time.Time
}

// ShortlistRepository is the persistence port for shortlist membership.
// Add and Remove are idempotent at the store level: adding an existing entry
// or removing a missing one is not an error.
type ShortlistRepository interface {
	Exists(ctx context.Context, userID, startupID string) (bool, error)
	Add(ctx context.Context, e *entity.ShortlistEntry) error
	Remove(ctx context.Context, userID, startupID string) error
	ListByUser(ctx context.Context, userID string) ([]ShortlistRow, error)
	ListForExport(ctx context.Context) ([]ShortlistExportRow, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
