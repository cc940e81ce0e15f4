// Package analytics holds the read-only aggregation use cases behind the
// leaderboard and the per-user dashboard counters.
package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

// LeaderboardUseCase ranks startups by their rating aggregates.
//
// The leaderboard is recomputed on demand from the current rating set; the
// dataset is small enough that no incremental maintenance or caching is
// worth carrying.
type LeaderboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewLeaderboardUseCase builds the use case.
func NewLeaderboardUseCase(analyticsRepo repository.AnalyticsRepository) *LeaderboardUseCase {
	return &LeaderboardUseCase{analyticsRepo: analyticsRepo}
}

// Leaderboard returns the ranked startups plus the unrated remainder.
//
// Ordering is a total order: mean score descending, then rating count
// descending, then name ascending. Means are rounded to 2 decimals; the
// rounded value is what ranks, so the displayed order never contradicts the
// displayed numbers.
func (uc *LeaderboardUseCase) Leaderboard(ctx context.Context) (*dto.LeaderboardResponse, error) {
	aggs, err := uc.analyticsRepo.GetRatingAggregates(ctx)
	if err != nil {
		return nil, err
	}
	unratedRows, err := uc.analyticsRepo.GetUnratedStartups(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(aggs))
	for _, a := range aggs {
		mean := decimal.NewFromInt(a.ScoreSum).
			Div(decimal.NewFromInt(int64(a.RatingCount))).
			Round(2)
		entries = append(entries, dto.LeaderboardEntry{
			StartupID:   a.StartupID,
			StartupName: a.StartupName,
			MeanScore:   mean,
			RatingCount: a.RatingCount,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].MeanScore.Equal(entries[j].MeanScore) {
			return entries[i].MeanScore.GreaterThan(entries[j].MeanScore)
		}
		if entries[i].RatingCount != entries[j].RatingCount {
			return entries[i].RatingCount > entries[j].RatingCount
		}
		return entries[i].StartupName < entries[j].StartupName
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	unrated := make([]dto.UnratedEntry, 0, len(unratedRows))
	for _, u := range unratedRows {
		unrated = append(unrated, dto.UnratedEntry{
			StartupID:   u.StartupID,
			StartupName: u.StartupName,
		})
	}

	return &dto.LeaderboardResponse{Entries: entries, Unrated: unrated}, nil
}

// UserStats returns the rated/shortlisted counters for one user.
func (uc *LeaderboardUseCase) UserStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error) {
	stats, err := uc.analyticsRepo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UserStatsResponse{
		RatingsCount:   stats.RatingsCount,
		ShortlistCount: stats.ShortlistCount,
	}, nil
}
