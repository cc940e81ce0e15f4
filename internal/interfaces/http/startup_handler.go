package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/usecase"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
)

// StartupHandler read side of the startup master: explorer and detail view.
type StartupHandler struct {
	uc *usecase.StartupUseCase
}

// NewStartupHandler builds the startup handler.
func NewStartupHandler(uc *usecase.StartupUseCase) *StartupHandler {
	return &StartupHandler{uc: uc}
}

// List godoc
// @Summary      Search startups
// @Tags         startups
// @Produce      json
// @Security     BearerAuth
// @Param        q       query  string  false  "name substring, case-insensitive"
// @Param        sector  query  string  false  "exact sector"
// @Param        city    query  string  false  "exact city"
// @Param        year    query  int     false  "exact year"
// @Param        limit   query  int     false  "page size (default 50, max 200)"
// @Param        offset  query  int     false  "page offset"
// @Success      200     {object}  dto.StartupListResponse
// @Router       /api/startups [get]
func (h *StartupHandler) List(c *fiber.Ctx) error {
	var req dto.StartupListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	out, err := h.uc.List(c.UserContext(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Startup detail
// @Tags         startups
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "startup id"
// @Success      200  {object}  dto.StartupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/startups/{id} [get]
func (h *StartupHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrStartupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STARTUP_NOT_FOUND", Message: "startup does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
