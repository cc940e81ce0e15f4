package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Startup is one row of the startup master, produced by the upload normalizer.
// Name is unique across the table; re-uploads overwrite by name
// (last-write-wins). RawAttrs preserves the original spreadsheet cells so
// nothing from the source file is lost, including columns outside the
// canonical schema.
type Startup struct {
	ID         string
	Name       string
	Sector     string
	City       string
	Year       *int
	Amount     *decimal.Decimal // funding amount, normalized to plain units
	Website    string
	Leadership string
	SourceLink string
	Address    string
	Contact    string
	RawAttrs   map[string]string // original header -> original cell text
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
