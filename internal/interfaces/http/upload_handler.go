package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/ingest"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/infrastructure/spreadsheet"
)

// UploadHandler admin upload of the startup master spreadsheet.
type UploadHandler struct {
	uc *ingest.UploadUseCase
}

// NewUploadHandler builds the upload handler.
func NewUploadHandler(uc *ingest.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Upload the startup master (.xlsx or .csv)
// @Description  Merge by name by default. After the first upload the master is
// @Description  locked; set replace=true to clear and reload it.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file     formData  file    true   "spreadsheet file"
// @Param        replace  query     bool    false  "replace the whole master"
// @Success      200      {object}  dto.UploadReport
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/admin/uploads [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "multipart field 'file' is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "cannot open upload"})
	}
	defer f.Close()

	table, err := spreadsheet.Read(fh.Filename, f)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	report, err := h.uc.Upload(c.UserContext(), ingest.UploadInput{
		Header:  table.Header,
		Rows:    table.Rows,
		Replace: c.QueryBool("replace"),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMasterLocked):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MASTER_LOCKED", Message: "startup master already uploaded; pass replace=true to overwrite"})
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrEmptyBatch):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_UPLOAD", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(report)
}
