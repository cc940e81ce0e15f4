// seed provisions the default accounts: one admin and one franchise owner.
// It is a no-op when the users table already has rows, so it is safe to run
// on every deploy.
//
// Usage: go run ./cmd/seed
// Credentials come from SEED_ADMIN_PASSWORD and SEED_OWNER_PASSWORD; without
// them the seeder refuses to run rather than install known defaults.
package main

import (
	"context"
	"os"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/auth"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/infrastructure/postgres"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/pkg/config"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	ownerPassword := os.Getenv("SEED_OWNER_PASSWORD")
	if adminPassword == "" || ownerPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD and SEED_OWNER_PASSWORD are required")
	}

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("database migrations")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	authUC := auth.NewUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	created, err := authUC.SeedDefaults(ctx, []auth.SeedUser{
		{Username: "admin", Password: adminPassword, Role: entity.RoleAdmin},
		{Username: "owner", Password: ownerPassword, Role: entity.RoleFranchiseOwner},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed users")
	}
	if created == 0 {
		log.Info().Msg("users table already populated, nothing to do")
		return
	}
	log.Info().Int("created", created).Msg("default accounts provisioned")
}
