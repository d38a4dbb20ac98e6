package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linkboard-api/internal/response"
	"linkboard-api/internal/service"
)

// MetaHandler handles link preview endpoints
type MetaHandler struct {
	metaImageService service.MetaImageService
}

// NewMetaHandler creates a new MetaHandler
func NewMetaHandler(metaImageService service.MetaImageService) *MetaHandler {
	return &MetaHandler{metaImageService: metaImageService}
}

// GetMetaImage godoc
// @Summary      Resolve a preview image for a URL
// @Description  Fetches the page and extracts its og:image (falling back to twitter:image, then the site favicon). Results are cached.
// @Tags         meta
// @Produce      json
// @Param        url query string true "Page URL"
// @Success      200 {object} response.SuccessResponse{data=dto.MetaImageResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /meta-image [get]
func (h *MetaHandler) GetMetaImage(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Missing url parameter")
		return
	}

	meta, err := h.metaImageService.GetMetaImage(c.Request.Context(), rawURL)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meta)
}
