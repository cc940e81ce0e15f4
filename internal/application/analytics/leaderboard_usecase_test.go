package analytics

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	aggregates []repository.RatingAggregate
	unrated    []repository.RatingAggregate
	stats      map[string]repository.UserStats
}

func (f *fakeAnalyticsRepo) GetRatingAggregates(context.Context) ([]repository.RatingAggregate, error) {
	return f.aggregates, nil
}
func (f *fakeAnalyticsRepo) GetUnratedStartups(context.Context) ([]repository.RatingAggregate, error) {
	return f.unrated, nil
}
func (f *fakeAnalyticsRepo) GetUserStats(_ context.Context, userID string) (repository.UserStats, error) {
	return f.stats[userID], nil
}

func mean(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestLeaderboard_RanksByMeanScore(t *testing.T) {
	// S1 rated 4 and 5 (mean 4.5), S2 rated 5 once (mean 5): S2 ranks first
	// even with fewer ratings.
	repo := &fakeAnalyticsRepo{
		aggregates: []repository.RatingAggregate{
			{StartupID: "s1", StartupName: "Alpha", RatingCount: 2, ScoreSum: 9},
			{StartupID: "s2", StartupName: "Beta", RatingCount: 1, ScoreSum: 5},
		},
	}
	uc := NewLeaderboardUseCase(repo)

	out, err := uc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Entries, 2)

	assert.Equal(t, 1, out.Entries[0].Rank)
	assert.Equal(t, "Beta", out.Entries[0].StartupName)
	assert.True(t, out.Entries[0].MeanScore.Equal(mean("5")))

	assert.Equal(t, 2, out.Entries[1].Rank)
	assert.Equal(t, "Alpha", out.Entries[1].StartupName)
	assert.True(t, out.Entries[1].MeanScore.Equal(mean("4.5")))
}

func TestLeaderboard_TieBrokenByCountThenName(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		aggregates: []repository.RatingAggregate{
			{StartupID: "s1", StartupName: "Zeta", RatingCount: 2, ScoreSum: 8},  // mean 4
			{StartupID: "s2", StartupName: "Alpha", RatingCount: 3, ScoreSum: 12}, // mean 4, more ratings
			{StartupID: "s3", StartupName: "Mid", RatingCount: 2, ScoreSum: 8},   // mean 4, ties with Zeta
		},
	}
	uc := NewLeaderboardUseCase(repo)

	out, err := uc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Entries, 3)

	assert.Equal(t, "Alpha", out.Entries[0].StartupName, "higher count wins the mean tie")
	assert.Equal(t, "Mid", out.Entries[1].StartupName, "name ascending breaks the full tie")
	assert.Equal(t, "Zeta", out.Entries[2].StartupName)
}

func TestLeaderboard_MeanRoundedToTwoDecimals(t *testing.T) {
	// 1+2+5 = 8 over 3 ratings: 2.666... rounds to 2.67.
	repo := &fakeAnalyticsRepo{
		aggregates: []repository.RatingAggregate{
			{StartupID: "s1", StartupName: "Alpha", RatingCount: 3, ScoreSum: 8},
		},
	}
	uc := NewLeaderboardUseCase(repo)

	out, err := uc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "2.67", out.Entries[0].MeanScore.String())
}

func TestLeaderboard_RoundedMeanDecidesOrder(t *testing.T) {
	// 2.666... and 2.671 both display as 2.67; the tie must then fall through
	// to count so the order never contradicts the displayed numbers.
	repo := &fakeAnalyticsRepo{
		aggregates: []repository.RatingAggregate{
			{StartupID: "s1", StartupName: "Alpha", RatingCount: 3, ScoreSum: 8},     // 2.67 displayed
			{StartupID: "s2", StartupName: "Beta", RatingCount: 1000, ScoreSum: 2670}, // 2.67 exactly
		},
	}
	uc := NewLeaderboardUseCase(repo)

	out, err := uc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Entries, 2)
	assert.Equal(t, "Beta", out.Entries[0].StartupName, "equal rounded means fall back to rating count")
}

func TestLeaderboard_UnratedListedApart(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		aggregates: []repository.RatingAggregate{
			{StartupID: "s1", StartupName: "Alpha", RatingCount: 1, ScoreSum: 3},
		},
		unrated: []repository.RatingAggregate{
			{StartupID: "s2", StartupName: "Beta"},
			{StartupID: "s3", StartupName: "Gamma"},
		},
	}
	uc := NewLeaderboardUseCase(repo)

	out, err := uc.Leaderboard(context.Background())
	require.NoError(t, err)

	assert.Len(t, out.Entries, 1)
	require.Len(t, out.Unrated, 2)
	assert.Equal(t, "Beta", out.Unrated[0].StartupName)
	assert.Equal(t, "Gamma", out.Unrated[1].StartupName)
}

func TestLeaderboard_EmptyStore(t *testing.T) {
	uc := NewLeaderboardUseCase(&fakeAnalyticsRepo{})

	out, err := uc.Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Entries)
	assert.Empty(t, out.Unrated)
}

func TestUserStats(t *testing.T) {
	repo := &fakeAnalyticsRepo{stats: map[string]repository.UserStats{
		"u1": {RatingsCount: 7, ShortlistCount: 3},
	}}
	uc := NewLeaderboardUseCase(repo)

	out, err := uc.UserStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 7, out.RatingsCount)
	assert.Equal(t, 3, out.ShortlistCount)
}
