package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin          = "admin"
	RoleFranchiseOwner = "franchise_owner"
)

// User is a dashboard account. Accounts are created at seed time and are
// immutable apart from credential changes.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, never plaintext past the auth boundary
	Role         string // admin, franchise_owner
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleFranchiseOwner
}
