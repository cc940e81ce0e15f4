package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartupResponse one startup row for listings and detail views.
// AmountDisplay keeps the original spreadsheet text (e.g. "2.5 crore") while
// Amount carries the normalized numeric value.
type StartupResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Sector        string            `json:"sector,omitempty"`
	City          string            `json:"city,omitempty"`
	Year          *int              `json:"year,omitempty"`
	Amount        *decimal.Decimal  `json:"amount,omitempty"`
	AmountDisplay string            `json:"amount_display,omitempty"`
	Website       string            `json:"website,omitempty"`
	Leadership    string            `json:"leadership,omitempty"`
	SourceLink    string            `json:"source_link,omitempty"`
	Address       string            `json:"address,omitempty"`
	Contact       string            `json:"contact,omitempty"`
	Extras        map[string]string `json:"extras,omitempty"` // source columns outside the canonical schema
	UpdatedAt     time.Time         `json:"updated_at"`
}

// StartupListRequest search/filter parameters for the explorer.
type StartupListRequest struct {
	Query  string `query:"q"`
	Sector string `query:"sector"`
	City   string `query:"city"`
	Year   int    `query:"year"`
	PageRequest
}

// StartupListResponse page of startups.
type StartupListResponse struct {
	Items []StartupResponse `json:"items"`
	Total int               `json:"total"`
}
