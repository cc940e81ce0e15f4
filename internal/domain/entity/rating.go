package entity

import "time"

// Rating is one user's score and comment for one startup.
// (StartupID, UserID) is unique: re-rating overwrites, it never appends.
type Rating struct {
	ID        string
	StartupID string
	UserID    string
	Score     int
	Comment   string
	UpdatedAt time.Time
}
