package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/analytics"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/auth"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/export"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/ingest"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/rating"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/usecase"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/interfaces/http"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/pkg/config"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("database migrations")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	startupRepo := postgres.NewStartupRepository(pool)
	ratingRepo := postgres.NewRatingRepository(pool)
	shortlistRepo := postgres.NewShortlistRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	metaRepo := postgres.NewMetaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	startupUC := usecase.NewStartupUseCase(startupRepo)
	ratingUC := rating.NewUseCase(userRepo, startupRepo, ratingRepo, shortlistRepo, rating.Bounds{
		Min: cfg.Rating.Min,
		Max: cfg.Rating.Max,
	})
	leaderboardUC := analytics.NewLeaderboardUseCase(analyticsRepo)
	uploadUC := ingest.NewUploadUseCase(txRunner, metaRepo)
	exportUC := export.NewUseCase(startupRepo, ratingRepo, shortlistRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // exports can be slow on big masters
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // spreadsheet uploads
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "JVL Franchise Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		StartupUC:     startupUC,
		RatingUC:      ratingUC,
		LeaderboardUC: leaderboardUC,
		UploadUC:      uploadUC,
		ExportUC:      exportUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
