package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/handlers/dto"
	"github.com/rafabene/federa-backend/internal/handlers/middleware"
	"github.com/rafabene/federa-backend/internal/services"
)

// UploadHandler emite URLs pré-assinadas de upload
type UploadHandler struct {
	uploads *services.UploadService
	logger  ports.Logger
}

// NewUploadHandler cria um novo UploadHandler
func NewUploadHandler(uploads *services.UploadService, logger ports.Logger) *UploadHandler {
	return &UploadHandler{uploads: uploads, logger: logger}
}

// PresignUpload devolve uma URL PUT para envio direto ao bucket
//
//	@Summary	URL pré-assinada de upload
//	@Tags		uploads
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.PresignUploadRequest	true	"Arquivo"
//	@Success	200		{object}	dto.PresignUploadResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/uploads/presign [post]
func (h *UploadHandler) PresignUpload(c *gin.Context) {
	var req dto.PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	upload, err := h.uploads.PresignUpload(c.Request.Context(), principal, req.FileName, req.ContentType)
	if err != nil {
		dto.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.PresignUploadResponse{
		URL:       upload.URL,
		Method:    upload.Method,
		Key:       upload.Key,
		Headers:   upload.Headers,
		ExpiresAt: upload.ExpiresAt,
	})
}
