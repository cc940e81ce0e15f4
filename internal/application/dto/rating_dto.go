package dto

import "time"

// RateRequest score + comment for one startup.
type RateRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// RatingResponse the stored rating after an upsert.
type RatingResponse struct {
	StartupID string    `json:"startup_id"`
	UserID    string    `json:"user_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRatingItem one row of "my ratings".
type UserRatingItem struct {
	StartupID   string    `json:"startup_id"`
	StartupName string    `json:"startup_name"`
	Score       int       `json:"score"`
	Comment     string    `json:"comment,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ShortlistStateResponse membership state after a toggle/ensure call.
type ShortlistStateResponse struct {
	StartupID   string `json:"startup_id"`
	Shortlisted bool   `json:"shortlisted"`
}

// ShortlistItem one row of "my shortlist".
type ShortlistItem struct {
	Startup StartupResponse `json:"startup"`
	AddedAt time.Time       `json:"added_at"`
}

// UserStatsResponse dashboard counters for the authenticated user.
type UserStatsResponse struct {
	RatingsCount   int `json:"ratings_count"`
	ShortlistCount int `json:"shortlist_count"`
}
