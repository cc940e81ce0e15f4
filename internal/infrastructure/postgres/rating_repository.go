package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

var _ repository.RatingRepository = (*RatingRepo)(nil)

// RatingRepo implements the RatingRepository port on PostgreSQL.
type RatingRepo struct {
	db querier
}

// NewRatingRepository builds the rating persistence adapter.
func NewRatingRepository(db querier) *RatingRepo {
	return &RatingRepo{db: db}
}

// Upsert writes the rating; a second rating from the same user for the same
// startup overwrites score, comment and timestamp in place.
func (r *RatingRepo) Upsert(ctx context.Context, rt *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, startup_id, user_id, score, comment, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (startup_id, user_id) DO UPDATE SET
			score      = EXCLUDED.score,
			comment    = EXCLUDED.comment,
			updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, rt.ID, rt.StartupID, rt.UserID, rt.Score, rt.Comment, rt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

// GetByUserAndStartup fetches the user's rating for a startup; nil when absent.
func (r *RatingRepo) GetByUserAndStartup(ctx context.Context, userID, startupID string) (*entity.Rating, error) {
	query := `
		SELECT id, startup_id, user_id, score, comment, updated_at
		FROM ratings WHERE user_id = $1 AND startup_id = $2`
	var rt entity.Rating
	err := r.db.QueryRow(ctx, query, userID, startupID).Scan(
		&rt.ID, &rt.StartupID, &rt.UserID, &rt.Score, &rt.Comment, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &rt, nil
}

// ListByUser returns the user's ratings joined with startup names, newest first.
func (r *RatingRepo) ListByUser(ctx context.Context, userID string) ([]repository.UserRatingRow, error) {
	query := `
		SELECT r.startup_id, s.name, r.score, r.comment, r.updated_at
		FROM ratings r
		JOIN startups s ON s.id = r.startup_id
		WHERE r.user_id = $1
		ORDER BY r.updated_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list ratings by user: %w", err)
	}
	defer rows.Close()
	var list []repository.UserRatingRow
	for rows.Next() {
		var row repository.UserRatingRow
		if err := rows.Scan(&row.StartupID, &row.StartupName, &row.Score, &row.Comment, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListForExport returns every rating joined with startup name and username,
// newest first. Read-only; feeds the admin CSV export.
func (r *RatingRepo) ListForExport(ctx context.Context) ([]repository.RatingExportRow, error) {
	query := `
		SELECT s.name, u.username, r.score, r.comment, r.updated_at
		FROM ratings r
		JOIN startups s ON s.id = r.startup_id
		JOIN users u ON u.id = r.user_id
		ORDER BY r.updated_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ratings for export: %w", err)
	}
	defer rows.Close()
	var list []repository.RatingExportRow
	for rows.Next() {
		var row repository.RatingExportRow
		if err := rows.Scan(&row.StartupName, &row.Username, &row.Score, &row.Comment, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan export row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountByUser returns how many startups the user has rated.
func (r *RatingRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ratings WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return n, nil
}
