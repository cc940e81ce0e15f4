package dto

import "github.com/shopspring/decimal"

// LeaderboardEntry one ranked startup.
// Mean is rounded to 2 decimals; Rank is 1-based.
type LeaderboardEntry struct {
	Rank        int             `json:"rank"`
	StartupID   string          `json:"startup_id"`
	StartupName string          `json:"startup_name"`
	MeanScore   decimal.Decimal `json:"mean_score"`
	RatingCount int             `json:"rating_count"`
}

// UnratedEntry a startup with no ratings yet, listed apart from the ranking.
type UnratedEntry struct {
	StartupID   string `json:"startup_id"`
	StartupName string `json:"startup_name"`
}

// LeaderboardResponse full leaderboard view: ranked startups plus the
// unrated remainder.
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
	Unrated []UnratedEntry     `json:"unrated"`
}
