package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

var _ repository.MetaRepository = (*MetaRepo)(nil)

// MetaRepo key/value adapter over app_meta.
type MetaRepo struct {
	db querier
}

// NewMetaRepository builds the meta adapter.
func NewMetaRepository(db querier) *MetaRepo {
	return &MetaRepo{db: db}
}

// Get returns the value for key, or "" when the key is absent.
func (r *MetaRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value FROM app_meta WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get meta %q: %w", key, err)
	}
	return value, nil
}

// Set upserts the key.
func (r *MetaRepo) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO app_meta (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set meta %q: %w", key, err)
	}
	return nil
}
