package entity

import "time"

// ShortlistEntry marks a startup as shortlisted by a user.
// Presence of the row means shortlisted; absence means not.
type ShortlistEntry struct {
	ID        string
	StartupID string
	UserID    string
	CreatedAt time.Time
}
