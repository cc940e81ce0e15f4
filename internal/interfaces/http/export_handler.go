package http

import (
	"bytes"
	"context"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/export"
)

// ExportHandler admin CSV downloads.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler builds the export handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Ratings godoc
// @Summary      Export all ratings as CSV
// @Tags         admin
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string  "csv"
// @Router       /api/admin/exports/ratings [get]
func (h *ExportHandler) Ratings(c *fiber.Ctx) error {
	return h.serve(c, "ratings.csv", h.uc.Ratings)
}

// Shortlists godoc
// @Summary      Export all shortlists as CSV
// @Tags         admin
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string  "csv"
// @Router       /api/admin/exports/shortlists [get]
func (h *ExportHandler) Shortlists(c *fiber.Ctx) error {
	return h.serve(c, "shortlists.csv", h.uc.Shortlists)
}

// Startups godoc
// @Summary      Export the startup master as CSV
// @Tags         admin
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string  "csv"
// @Router       /api/admin/exports/startups [get]
func (h *ExportHandler) Startups(c *fiber.Ctx) error {
	return h.serve(c, "startups.csv", h.uc.Startups)
}

// serve buffers the export so a mid-write store error still yields a clean
// error response instead of a truncated download.
func (h *ExportHandler) serve(c *fiber.Ctx, filename string, write func(context.Context, io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(c.UserContext(), &buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
