package postgres

import (
	"context"
	"fmt"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only aggregation queries behind the leaderboard and the
// per-user dashboard counters.
type AnalyticsRepo struct {
	db querier
}

// NewAnalyticsRepository builds the analytics adapter.
func NewAnalyticsRepository(db querier) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// GetRatingAggregates returns count and score sum per rated startup.
// Ordering is left to the use case, which applies the full tie-break rules
// on the rounded means.
func (r *AnalyticsRepo) GetRatingAggregates(ctx context.Context) ([]repository.RatingAggregate, error) {
	const query = `
		SELECT s.id, s.name, COUNT(r.id), SUM(r.score)
		FROM ratings r
		JOIN startups s ON s.id = r.startup_id
		GROUP BY s.id, s.name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetRatingAggregates: %w", err)
	}
	defer rows.Close()
	var results []repository.RatingAggregate
	for rows.Next() {
		var a repository.RatingAggregate
		if err := rows.Scan(&a.StartupID, &a.StartupName, &a.RatingCount, &a.ScoreSum); err != nil {
			return nil, fmt.Errorf("analytics.GetRatingAggregates scan: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// GetUnratedStartups returns startups with no ratings, ordered by name.
func (r *AnalyticsRepo) GetUnratedStartups(ctx context.Context) ([]repository.RatingAggregate, error) {
	const query = `
		SELECT s.id, s.name
		FROM startups s
		LEFT JOIN ratings r ON r.startup_id = s.id
		WHERE r.id IS NULL
		ORDER BY s.name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetUnratedStartups: %w", err)
	}
	defer rows.Close()
	var results []repository.RatingAggregate
	for rows.Next() {
		var a repository.RatingAggregate
		if err := rows.Scan(&a.StartupID, &a.StartupName); err != nil {
			return nil, fmt.Errorf("analytics.GetUnratedStartups scan: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// GetUserStats returns the rated/shortlisted counters for one user in a
// single round trip.
func (r *AnalyticsRepo) GetUserStats(ctx context.Context, userID string) (repository.UserStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM ratings WHERE user_id = $1),
			(SELECT COUNT(*) FROM shortlists WHERE user_id = $1)`
	var stats repository.UserStats
	if err := r.db.QueryRow(ctx, query, userID).Scan(&stats.RatingsCount, &stats.ShortlistCount); err != nil {
		return repository.UserStats{}, fmt.Errorf("analytics.GetUserStats: %w", err)
	}
	return stats, nil
}
