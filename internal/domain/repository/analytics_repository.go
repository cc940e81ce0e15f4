package repository

import "context"

// RatingAggregate is the raw per-startup aggregation the DB produces.
// The use case turns it into the ranked leaderboard (rounding, tie-breaks).
type RatingAggregate struct {
	StartupID   string
	StartupName string
	RatingCount int
	ScoreSum    int64
}

// UserStats counters shown on the dashboard for one user.
type UserStats struct {
	RatingsCount   int
	ShortlistCount int
}

// AnalyticsRepository defines the read-only aggregation queries.
// Implementations never modify data.
type AnalyticsRepository interface {
	// GetRatingAggregates returns count and score sum per rated startup.
	// Startups with zero ratings are not included.
	GetRatingAggregates(ctx context.Context) ([]RatingAggregate, error)

	// GetUnratedStartups returns id and name of startups with no ratings,
	// ordered by name.
	GetUnratedStartups(ctx context.Context) ([]RatingAggregate, error)

	// GetUserStats returns how many startups the user has rated and shortlisted.
	GetUserStats(ctx context.Context, userID string) (UserStats, error)
}
