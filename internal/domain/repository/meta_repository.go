package repository

import "context"

// Well-known app_meta keys.
const (
	MetaStartupLocked = "startup_locked"
	MetaStartupCount  = "startup_count"
)

// MetaRepository is a small key/value store for application flags, such as
// the startup-master lock set after the first successful upload.
type MetaRepository interface {
	Get(ctx context.Context, key string) (string, error) // "" when absent
	Set(ctx context.Context, key, value string) error
}
