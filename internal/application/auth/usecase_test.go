package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
	pkgjwt "github.com/nikhilbasfor45/jvl-franchise-dashboard/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // keyed by id
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	if u, ok := f.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}
func (f *fakeUserRepo) Count(_ context.Context) (int, error) { return len(f.users), nil }

var testJWTCfg = JWTConfig{Secret: "auth-test-secret", ExpMinutes: 60, Issuer: "jvl-test"}

func newFixture(t *testing.T) (*UseCase, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Username: "owner", PasswordHash: string(hash), Role: entity.RoleFranchiseOwner},
	}}
	return NewUseCase(repo, testJWTCfg), repo
}

func TestLogin_Success(t *testing.T) {
	uc, _ := newFixture(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "owner", Password: "correct horse"})
	require.NoError(t, err)

	assert.Equal(t, "owner", out.User.Username)
	assert.Equal(t, entity.RoleFranchiseOwner, out.User.Role)

	userID, username, role, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "owner", username)
	assert.Equal(t, entity.RoleFranchiseOwner, role)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "owner", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangePassword(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	err := uc.ChangePassword(ctx, "u1", dto.ChangePasswordRequest{
		CurrentPassword: "correct horse",
		NewPassword:     "battery staple",
	})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "owner", Password: "battery staple"})
	assert.NoError(t, err, "new password must work")
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "owner", Password: "correct horse"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "old password must stop working")
}

func TestChangePassword_TooShort(t *testing.T) {
	uc, _ := newFixture(t)

	err := uc.ChangePassword(context.Background(), "u1", dto.ChangePasswordRequest{
		CurrentPassword: "correct horse",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	uc, _ := newFixture(t)

	err := uc.ChangePassword(context.Background(), "u1", dto.ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "battery staple",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSeedDefaults_PopulatesEmptyTable(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := NewUseCase(repo, testJWTCfg)

	created, err := uc.SeedDefaults(context.Background(), []SeedUser{
		{Username: "admin", Password: "admin-password", Role: entity.RoleAdmin},
		{Username: "owner", Password: "owner-password", Role: entity.RoleFranchiseOwner},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Len(t, repo.users, 2)
}

func TestSeedDefaults_NoOpWhenPopulated(t *testing.T) {
	uc, repo := newFixture(t)

	created, err := uc.SeedDefaults(context.Background(), []SeedUser{
		{Username: "admin", Password: "admin-password", Role: entity.RoleAdmin},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Len(t, repo.users, 1, "existing accounts are untouched")
}

func TestSeedDefaults_RejectsUnknownRole(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := NewUseCase(repo, testJWTCfg)

	_, err := uc.SeedDefaults(context.Background(), []SeedUser{
		{Username: "root", Password: "password123", Role: "superuser"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
