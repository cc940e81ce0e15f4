package postgres

import (
	"context"
	"fmt"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

var _ repository.ShortlistRepository = (*ShortlistRepo)(nil)

// ShortlistRepo implements the ShortlistRepository port on PostgreSQL.
type ShortlistRepo struct {
	db querier
}

// NewShortlistRepository builds the shortlist persistence adapter.
func NewShortlistRepository(db querier) *ShortlistRepo {
	return &ShortlistRepo{db: db}
}

// Exists reports whether the startup is in the user's shortlist.
func (r *ShortlistRepo) Exists(ctx context.Context, userID, startupID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM shortlists WHERE user_id = $1 AND startup_id = $2)`
	if err := r.db.QueryRow(ctx, query, userID, startupID).Scan(&exists); err != nil {
		return false, fmt.Errorf("shortlist exists: %w", err)
	}
	return exists, nil
}

// Add inserts the membership row. Adding an existing entry is a no-op, which
// makes ensure-style callers retry-safe.
func (r *ShortlistRepo) Add(ctx context.Context, e *entity.ShortlistEntry) error {
	query := `
		INSERT INTO shortlists (id, startup_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (startup_id, user_id) DO NOTHING`
	if _, err := r.db.Exec(ctx, query, e.ID, e.StartupID, e.UserID, e.CreatedAt); err != nil {
		return fmt.Errorf("add shortlist entry: %w", err)
	}
	return nil
}

// Remove deletes the membership row. Removing a missing entry is a no-op.
func (r *ShortlistRepo) Remove(ctx context.Context, userID, startupID string) error {
	query := `DELETE FROM shortlists WHERE user_id = $1 AND startup_id = $2`
	if _, err := r.db.Exec(ctx, query, userID, startupID); err != nil {
		return fmt.Errorf("remove shortlist entry: %w", err)
	}
	return nil
}

// ListByUser returns the user's shortlisted startups, newest first.
func (r *ShortlistRepo) ListByUser(ctx context.Context, userID string) ([]repository.ShortlistRow, error) {
	query := `
		SELECT ` + prefixedStartupColumns("s") + `, sh.created_at
		FROM shortlists sh
		JOIN startups s ON s.id = sh.startup_id
		WHERE sh.user_id = $1
		ORDER BY sh.created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list shortlist: %w", err)
	}
	defer rows.Close()
	var list []repository.ShortlistRow
	for rows.Next() {
		var row repository.ShortlistRow
		s := &row.Startup
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Sector, &s.City, &s.Year, &s.Amount, &s.Website,
			&s.Leadership, &s.SourceLink, &s.Address, &s.Contact, &s.RawAttrs,
			&s.CreatedAt, &s.UpdatedAt, &row.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("scan shortlist row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListForExport returns every shortlist entry joined with startup name and
// username, newest first.
func (r *ShortlistRepo) ListForExport(ctx context.Context) ([]repository.ShortlistExportRow, error) {
	query := `
		SELECT s.name, u.username, sh.created_at
		FROM shortlists sh
		JOIN startups s ON s.id = sh.startup_id
		JOIN users u ON u.id = sh.user_id
		ORDER BY sh.created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shortlists for export: %w", err)
	}
	defer rows.Close()
	var list []repository.ShortlistExportRow
	for rows.Next() {
		var row repository.ShortlistExportRow
		if err := rows.Scan(&row.StartupName, &row.Username, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan export row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountByUser returns how many startups the user has shortlisted.
func (r *ShortlistRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM shortlists WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count shortlist: %w", err)
	}
	return n, nil
}
