package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/analytics"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/rating"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
)

// RatingHandler ratings, shortlist membership and the "my" read endpoints for
// the authenticated user.
type RatingHandler struct {
	uc      *rating.UseCase
	statsUC *analytics.LeaderboardUseCase
}

// NewRatingHandler builds the rating handler.
func NewRatingHandler(uc *rating.UseCase, statsUC *analytics.LeaderboardUseCase) *RatingHandler {
	return &RatingHandler{uc: uc, statsUC: statsUC}
}

// Rate godoc
// @Summary      Rate a startup (upsert)
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string           true  "startup id"
// @Param        body  body  dto.RateRequest  true  "score, comment"
// @Success      200   {object}  dto.RatingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/startups/{id}/rating [post]
func (h *RatingHandler) Rate(c *fiber.Ctx) error {
	var in dto.RateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Rate(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScoreOutOfRange):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SCORE_OUT_OF_RANGE", Message: err.Error()})
		case errors.Is(err, domain.ErrStartupNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STARTUP_NOT_FOUND", Message: "startup does not exist"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "unknown user"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// MyRatings godoc
// @Summary      My ratings
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.UserRatingItem
// @Router       /api/me/ratings [get]
func (h *RatingHandler) MyRatings(c *fiber.Ctx) error {
	out, err := h.uc.MyRatings(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ToggleShortlist godoc
// @Summary      Toggle shortlist membership
// @Tags         shortlist
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "startup id"
// @Success      200  {object}  dto.ShortlistStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/startups/{id}/shortlist/toggle [post]
func (h *RatingHandler) ToggleShortlist(c *fiber.Ctx) error {
	out, err := h.uc.ToggleShortlist(c.UserContext(), GetUserID(c), c.Params("id"))
	return h.shortlistResult(c, out, err)
}

// EnsureShortlisted godoc
// @Summary      Add to shortlist (idempotent)
// @Tags         shortlist
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "startup id"
// @Success      200  {object}  dto.ShortlistStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/startups/{id}/shortlist [put]
func (h *RatingHandler) EnsureShortlisted(c *fiber.Ctx) error {
	out, err := h.uc.EnsureShortlisted(c.UserContext(), GetUserID(c), c.Params("id"))
	return h.shortlistResult(c, out, err)
}

// RemoveShortlisted godoc
// @Summary      Remove from shortlist (idempotent)
// @Tags         shortlist
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "startup id"
// @Success      200  {object}  dto.ShortlistStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/startups/{id}/shortlist [delete]
func (h *RatingHandler) RemoveShortlisted(c *fiber.Ctx) error {
	out, err := h.uc.RemoveShortlisted(c.UserContext(), GetUserID(c), c.Params("id"))
	return h.shortlistResult(c, out, err)
}

func (h *RatingHandler) shortlistResult(c *fiber.Ctx, out *dto.ShortlistStateResponse, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrStartupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STARTUP_NOT_FOUND", Message: "startup does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MyShortlist godoc
// @Summary      My shortlist
// @Tags         shortlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ShortlistItem
// @Router       /api/me/shortlist [get]
func (h *RatingHandler) MyShortlist(c *fiber.Ctx) error {
	out, err := h.uc.MyShortlist(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MyStats godoc
// @Summary      My dashboard counters
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserStatsResponse
// @Router       /api/me/stats [get]
func (h *RatingHandler) MyStats(c *fiber.Ctx) error {
	out, err := h.statsUC.UserStats(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
