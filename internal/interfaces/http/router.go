package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/analytics"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/auth"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/export"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/ingest"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/rating"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/usecase"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	StartupUC     *usecase.StartupUseCase
	RatingUC      *rating.UseCase
	LeaderboardUC *analytics.LeaderboardUseCase
	UploadUC      *ingest.UploadUseCase
	ExportUC      *export.UseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Group("/auth").Post("/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Startup explorer
	startups := protected.Group("/startups")
	startupHandler := NewStartupHandler(deps.StartupUC)
	startups.Get("/", startupHandler.List)
	startups.Get("/:id", startupHandler.GetByID)

	// Ratings and shortlist
	ratingHandler := NewRatingHandler(deps.RatingUC, deps.LeaderboardUC)
	startups.Post("/:id/rating", ratingHandler.Rate)
	startups.Post("/:id/shortlist/toggle", ratingHandler.ToggleShortlist)
	startups.Put("/:id/shortlist", ratingHandler.EnsureShortlisted)
	startups.Delete("/:id/shortlist", ratingHandler.RemoveShortlisted)

	// "My" dashboard
	me := protected.Group("/me")
	me.Get("/ratings", ratingHandler.MyRatings)
	me.Get("/shortlist", ratingHandler.MyShortlist)
	me.Get("/stats", ratingHandler.MyStats)
	me.Put("/password", authHandler.ChangePassword)

	// Leaderboard
	leaderboardHandler := NewLeaderboardHandler(deps.LeaderboardUC)
	protected.Get("/leaderboard", leaderboardHandler.Leaderboard)

	// Admin: master upload and CSV exports
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	uploadHandler := NewUploadHandler(deps.UploadUC)
	admin.Post("/uploads", uploadHandler.Upload)

	exportHandler := NewExportHandler(deps.ExportUC)
	exports := admin.Group("/exports")
	exports.Get("/ratings", exportHandler.Ratings)
	exports.Get("/shortlists", exportHandler.Shortlists)
	exports.Get("/startups", exportHandler.Startups)
}
