package repository

import (
	"context"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
)

// StartupFilter narrows List results. Zero values mean "no filter".
type StartupFilter struct {
	Query  string // case-insensitive substring match on name
	Sector string
	City   string
	Year   int
	Limit  int
	Offset int
}

// StartupRepository is the persistence port for the startup master.
// Upsert keys on name (last-write-wins across uploads).
type StartupRepository interface {
	Upsert(ctx context.Context, s *entity.Startup) error
	DeleteAll(ctx context.Context) error
	GetByID(ctx context.Context, id string) (*entity.Startup, error)
	GetByName(ctx context.Context, name string) (*entity.Startup, error)
	List(ctx context.Context, filter StartupFilter) ([]*entity.Startup, error)
	ListAll(ctx context.Context) ([]*entity.Startup, error)
	// ExistingNames returns which of the given names are already present,
	// used by the upload report to count overwritten rows.
	ExistingNames(ctx context.Context, names []string) (map[string]bool, error)
	Count(ctx context.Context) (int, error)
}
