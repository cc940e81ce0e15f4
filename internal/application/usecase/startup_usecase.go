package usecase

import (
	"context"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/ingest"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

// StartupUseCase read side of the startup master: search, listing, detail.
type StartupUseCase struct {
	startupRepo repository.StartupRepository
}

// NewStartupUseCase builds the use case.
func NewStartupUseCase(startupRepo repository.StartupRepository) *StartupUseCase {
	return &StartupUseCase{startupRepo: startupRepo}
}

// List returns a filtered page of startups for the explorer.
func (uc *StartupUseCase) List(ctx context.Context, req dto.StartupListRequest) (*dto.StartupListResponse, error) {
	req.DefaultPage()
	startups, err := uc.startupRepo.List(ctx, repository.StartupFilter{
		Query:  req.Query,
		Sector: req.Sector,
		City:   req.City,
		Year:   req.Year,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return nil, err
	}
	total, err := uc.startupRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StartupResponse, 0, len(startups))
	for _, s := range startups {
		items = append(items, ToStartupResponse(s, false))
	}
	return &dto.StartupListResponse{Items: items, Total: total}, nil
}

// GetByID returns one startup with its full detail, including the preserved
// source columns that fall outside the canonical schema.
func (uc *StartupUseCase) GetByID(ctx context.Context, id string) (*dto.StartupResponse, error) {
	s, err := uc.startupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrStartupNotFound
	}
	resp := ToStartupResponse(s, true)
	return &resp, nil
}

// ToStartupResponse converts an entity into the response shape.
// withExtras includes the raw source columns that have no canonical field,
// plus the original amount text when it differs from the normalized number.
func ToStartupResponse(s *entity.Startup, withExtras bool) dto.StartupResponse {
	resp := dto.StartupResponse{
		ID:         s.ID,
		Name:       s.Name,
		Sector:     s.Sector,
		City:       s.City,
		Year:       s.Year,
		Amount:     s.Amount,
		Website:    s.Website,
		Leadership: s.Leadership,
		SourceLink: s.SourceLink,
		Address:    s.Address,
		Contact:    s.Contact,
		UpdatedAt:  s.UpdatedAt,
	}
	resp.AmountDisplay = rawAmountDisplay(s)
	if withExtras {
		resp.Extras = extraAttrs(s)
	}
	return resp
}

// rawAmountDisplay prefers the original spreadsheet text ("2.5 crore") over
// the normalized number for display.
func rawAmountDisplay(s *entity.Startup) string {
	for _, key := range append([]string{ingest.FieldAmount}, ingest.ColumnMapping[ingest.FieldAmount]...) {
		if v, ok := s.RawAttrs[key]; ok && v != "" {
			return v
		}
	}
	if s.Amount != nil {
		return s.Amount.String()
	}
	return ""
}

// extraAttrs returns the preserved source columns that are not already shown
// through a canonical field.
func extraAttrs(s *entity.Startup) map[string]string {
	if len(s.RawAttrs) == 0 {
		return nil
	}
	canonical := map[string]bool{}
	for field, aliases := range ingest.ColumnMapping {
		canonical[field] = true
		for _, a := range aliases {
			canonical[a] = true
		}
	}
	extras := map[string]string{}
	for k, v := range s.RawAttrs {
		if canonical[k] {
			continue
		}
		extras[k] = v
	}
	if len(extras) == 0 {
		return nil
	}
	return extras
}
