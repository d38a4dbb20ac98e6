package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linkboard-api/internal/dto"
	"linkboard-api/internal/response"
	"linkboard-api/internal/service"
)

// UploadHandler handles presigned upload endpoints
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// GeneratePresignedUpload godoc
// @Summary      Generate a presigned upload URL
// @Description  Returns a short-lived URL the client can PUT an image to, plus the public URL the object will be served from
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Param        request body dto.PresignedUploadRequest true "Upload details"
// @Success      200 {object} response.SuccessResponse{data=dto.PresignedUploadResponse}
// @Failure      400 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /uploads/presigned [post]
func (h *UploadHandler) GeneratePresignedUpload(c *gin.Context) {
	var req dto.PresignedUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	upload, err := h.uploadService.GeneratePresignedUpload(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, upload)
}
