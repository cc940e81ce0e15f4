package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/analytics"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
)

// LeaderboardHandler serves the rated ranking plus the unrated remainder.
type LeaderboardHandler struct {
	uc *analytics.LeaderboardUseCase
}

// NewLeaderboardHandler builds the leaderboard handler.
func NewLeaderboardHandler(uc *analytics.LeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{uc: uc}
}

// Leaderboard godoc
// @Summary      Startup leaderboard
// @Tags         leaderboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.LeaderboardResponse
// @Router       /api/leaderboard [get]
func (h *LeaderboardHandler) Leaderboard(c *fiber.Ctx) error {
	out, err := h.uc.Leaderboard(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
