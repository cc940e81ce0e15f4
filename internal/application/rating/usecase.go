package rating

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

// Bounds are the configured score limits, inclusive.
type Bounds struct {
	Min int
	Max int
}

// UseCase covers ratings and shortlist membership for the authenticated user.
//
// Rate is an upsert: one active rating per (user, startup), retries with the
// same arguments converge on the same stored row. ToggleShortlist is a true
// toggle; callers that need retry-safe semantics use EnsureShortlisted /
// RemoveShortlisted instead.
type UseCase struct {
	userRepo      repository.UserRepository
	startupRepo   repository.StartupRepository
	ratingRepo    repository.RatingRepository
	shortlistRepo repository.ShortlistRepository
	bounds        Bounds
}

// NewUseCase builds the rating/shortlist use case.
func NewUseCase(
	userRepo repository.UserRepository,
	startupRepo repository.StartupRepository,
	ratingRepo repository.RatingRepository,
	shortlistRepo repository.ShortlistRepository,
	bounds Bounds,
) *UseCase {
	return &UseCase{
		userRepo:      userRepo,
		startupRepo:   startupRepo,
		ratingRepo:    ratingRepo,
		shortlistRepo: shortlistRepo,
		bounds:        bounds,
	}
}

// Rate upserts the user's rating for a startup. The previous score, comment
// and timestamp are replaced, never appended to.
func (uc *UseCase) Rate(ctx context.Context, userID, startupID string, in dto.RateRequest) (*dto.RatingResponse, error) {
	if in.Score < uc.bounds.Min || in.Score > uc.bounds.Max {
		return nil, fmt.Errorf("%w: score %d not in [%d, %d]",
			domain.ErrScoreOutOfRange, in.Score, uc.bounds.Min, uc.bounds.Max)
	}
	if err := uc.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := uc.checkStartup(ctx, startupID); err != nil {
		return nil, err
	}

	r := &entity.Rating{
		ID:        uuid.New().String(),
		StartupID: startupID,
		UserID:    userID,
		Score:     in.Score,
		Comment:   in.Comment,
		UpdatedAt: time.Now().UTC(),
	}
	if err := uc.ratingRepo.Upsert(ctx, r); err != nil {
		return nil, err
	}
	return &dto.RatingResponse{
		StartupID: r.StartupID,
		UserID:    r.UserID,
		Score:     r.Score,
		Comment:   r.Comment,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// ToggleShortlist flips membership and returns the resulting state.
// Calling it twice returns membership to its original value.
func (uc *UseCase) ToggleShortlist(ctx context.Context, userID, startupID string) (*dto.ShortlistStateResponse, error) {
	if err := uc.checkStartup(ctx, startupID); err != nil {
		return nil, err
	}
	exists, err := uc.shortlistRepo.Exists(ctx, userID, startupID)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := uc.shortlistRepo.Remove(ctx, userID, startupID); err != nil {
			return nil, err
		}
		return &dto.ShortlistStateResponse{StartupID: startupID, Shortlisted: false}, nil
	}
	if err := uc.shortlistRepo.Add(ctx, newEntry(userID, startupID)); err != nil {
		return nil, err
	}
	return &dto.ShortlistStateResponse{StartupID: startupID, Shortlisted: true}, nil
}

// EnsureShortlisted makes membership present, idempotently.
func (uc *UseCase) EnsureShortlisted(ctx context.Context, userID, startupID string) (*dto.ShortlistStateResponse, error) {
	if err := uc.checkStartup(ctx, startupID); err != nil {
		return nil, err
	}
	if err := uc.shortlistRepo.Add(ctx, newEntry(userID, startupID)); err != nil {
		return nil, err
	}
	return &dto.ShortlistStateResponse{StartupID: startupID, Shortlisted: true}, nil
}

// RemoveShortlisted makes membership absent, idempotently.
func (uc *UseCase) RemoveShortlisted(ctx context.Context, userID, startupID string) (*dto.ShortlistStateResponse, error) {
	if err := uc.checkStartup(ctx, startupID); err != nil {
		return nil, err
	}
	if err := uc.shortlistRepo.Remove(ctx, userID, startupID); err != nil {
		return nil, err
	}
	return &dto.ShortlistStateResponse{StartupID: startupID, Shortlisted: false}, nil
}

// MyRatings lists the user's ratings, newest first.
func (uc *UseCase) MyRatings(ctx context.Context, userID string) ([]dto.UserRatingItem, error) {
	rows, err := uc.ratingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserRatingItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.UserRatingItem{
			StartupID:   r.StartupID,
			StartupName: r.StartupName,
			Score:       r.Score,
			Comment:     r.Comment,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return items, nil
}

// MyShortlist lists the user's shortlisted startups, newest first.
func (uc *UseCase) MyShortlist(ctx context.Context, userID string) ([]dto.ShortlistItem, error) {
	rows, err := uc.shortlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShortlistItem, 0, len(rows))
	for _, r := range rows {
		s := r.Startup
		items = append(items, dto.ShortlistItem{
			Startup: dto.StartupResponse{
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
			},
			AddedAt: r.AddedAt,
		})
	}
	return items, nil
}

func (uc *UseCase) checkUser(ctx context.Context, userID string) error {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	return nil
}

func (uc *UseCase) checkStartup(ctx context.Context, startupID string) error {
	s, err := uc.startupRepo.GetByID(ctx, startupID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrStartupNotFound
	}
	return nil
}

func newEntry(userID, startupID string) *entity.ShortlistEntry {
	return &entity.ShortlistEntry{
		ID:        uuid.New().String(),
		StartupID: startupID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}
