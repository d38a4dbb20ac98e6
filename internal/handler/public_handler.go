package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"linkboard-api/internal/response"
	"linkboard-api/internal/service"
)

// PublicHandler handles unauthenticated share endpoints
type PublicHandler struct {
	folderService service.FolderService
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(folderService service.FolderService) *PublicHandler {
	return &PublicHandler{folderService: folderService}
}

// GetPublicFolder godoc
// @Summary      Get a publicly shared folder
// @Description  Returns a folder and its bookmarks without authentication. Responses are cacheable for sixty seconds.
// @Tags         public
// @Produce      json
// @Param        folderId path string true "Folder ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PublicFolderResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /public/folders/{folderId} [get]
func (h *PublicHandler) GetPublicFolder(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid folder ID")
		return
	}

	folder, err := h.folderService.GetPublicFolder(c.Request.Context(), folderID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Cache-Control", "public, s-maxage=60")
	response.SendSuccess(c, http.StatusOK, folder)
}
