package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase authentication: login, credential change, first-run seeding.
// There is no self-service registration; accounts are provisioned by seeding.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies username/password and returns a signed JWT plus the user.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// ChangePassword verifies the current credential and stores a new bcrypt hash.
func (uc *UseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, user.ID, string(hash))
}

// SeedUser is one account to provision at setup time.
type SeedUser struct {
	Username string
	Password string
	Role     string
}

// SeedDefaults creates the given accounts if the users table is empty.
// Running it against a populated table is a no-op, so the seeder is safe to
// invoke on every deploy.
func (uc *UseCase) SeedDefaults(ctx context.Context, users []SeedUser) (created int, err error) {
	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	for _, su := range users {
		if !entity.ValidRole(su.Role) {
			return created, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, err
		}
		u := &entity.User{
			ID:           uuid.New().String(),
			Username:     su.Username,
			PasswordHash: string(hash),
			Role:         su.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.userRepo.Create(ctx, u); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
