package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

type UploadHandler struct {
	uploads ports.UploadService
}

func NewUploadHandler(uploads ports.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

type uploadSignatureRequest struct {
	Filename string `json:"filename"  validate:"required"`
	MimeType string `json:"mime_type" validate:"required"`
	Size     int64  `json:"size"      validate:"required,gt=0"`
}

type uploadSignatureResponse struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	Key       string `json:"key"`
}

// Signature handles POST /api/uploads/signature. The client uploads the
// resume directly to object storage with the returned pre-signed URL; the
// file body never passes through the API.
//
// @Summary      Pre-sign a resume upload
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      uploadSignatureRequest  true  "File metadata"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/uploads/signature [post]
func (h *UploadHandler) Signature(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req uploadSignatureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cred, err := h.uploads.PresignResume(c.Request().Context(), req.Filename, req.MimeType, req.Size)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, uploadSignatureResponse{
		UploadURL: cred.UploadURL,
		PublicURL: cred.PublicURL,
		Key:       cred.Key,
	})
}
