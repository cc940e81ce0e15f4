package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/ingest"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

// Export format version 1. The column orders below are part of the format:
// reorder or rename only with a version bump, downstream spreadsheets key on
// these headers.
const FormatVersion = 1

var (
	// RatingColumns fixed header of the ratings export.
	RatingColumns = []string{"startup_name", "username", "score", "comment", "updated_at"}
	// ShortlistColumns fixed header of the shortlist export.
	ShortlistColumns = []string{"startup_name", "username", "created_at"}
	// StartupColumns fixed header of the startup master export. These are the
	// normalizer's canonical field names, so exporting and re-importing the
	// file through the upload path reproduces the same records.
	StartupColumns = ingest.CanonicalFields
)

// UseCase serializes ratings, shortlists and the startup master to flat CSV.
// Reads only; an export never mutates the store.
type UseCase struct {
	startupRepo   repository.StartupRepository
	ratingRepo    repository.RatingRepository
	shortlistRepo repository.ShortlistRepository
}

// NewUseCase builds the export use case.
func NewUseCase(
	startupRepo repository.StartupRepository,
	ratingRepo repository.RatingRepository,
	shortlistRepo repository.ShortlistRepository,
) *UseCase {
	return &UseCase{startupRepo: startupRepo, ratingRepo: ratingRepo, shortlistRepo: shortlistRepo}
}

// Ratings writes the ratings export to w.
func (uc *UseCase) Ratings(ctx context.Context, w io.Writer) error {
	rows, err := uc.ratingRepo.ListForExport(ctx)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(RatingColumns); err != nil {
		return fmt.Errorf("write ratings header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.StartupName,
			r.Username,
			strconv.Itoa(r.Score),
			r.Comment,
			r.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write ratings row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Shortlists writes the shortlist export to w.
func (uc *UseCase) Shortlists(ctx context.Context, w io.Writer) error {
	rows, err := uc.shortlistRepo.ListForExport(ctx)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(ShortlistColumns); err != nil {
		return fmt.Errorf("write shortlists header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.StartupName,
			r.Username,
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write shortlists row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Startups writes the startup master export to w.
// Round-trip stable: the header uses canonical field names and the cell
// formats are exactly what the normalizer parses back.
func (uc *UseCase) Startups(ctx context.Context, w io.Writer) error {
	startups, err := uc.startupRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(StartupColumns); err != nil {
		return fmt.Errorf("write startups header: %w", err)
	}
	for _, s := range startups {
		if err := cw.Write(startupRecord(s)); err != nil {
			return fmt.Errorf("write startups row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func startupRecord(s *entity.Startup) []string {
	rec := make([]string, 0, len(StartupColumns))
	for _, col := range StartupColumns {
		rec = append(rec, startupField(s, col))
	}
	return rec
}

func startupField(s *entity.Startup, col string) string {
	switch col {
	case ingest.FieldName:
		return s.Name
	case ingest.FieldSector:
		return s.Sector
	case ingest.FieldCity:
		return s.City
	case ingest.FieldYear:
		if s.Year == nil {
			return ""
		}
		return strconv.Itoa(*s.Year)
	case ingest.FieldAmount:
		if s.Amount == nil {
			return ""
		}
		return s.Amount.String()
	case ingest.FieldWebsite:
		return s.Website
	case ingest.FieldLeadership:
		return s.Leadership
	case ingest.FieldSourceLink:
		return s.SourceLink
	case ingest.FieldAddress:
		return s.Address
	case ingest.FieldContact:
		return s.Contact
	}
	return ""
}
