package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"linkboard-api/internal/dto"
	"linkboard-api/internal/response"
	"linkboard-api/internal/service"
)

// BookmarkHandler handles bookmark endpoints
type BookmarkHandler struct {
	bookmarkService service.BookmarkService
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(bookmarkService service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// CreateBookmark godoc
// @Summary      Add a bookmark
// @Description  Adds a bookmark at the end of the folder's ordering. The URL must be absolute http/https; the favicon defaults from the URL host when omitted.
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        folderId path string true "Folder ID (UUID)"
// @Param        request body dto.CreateBookmarkRequest true "Bookmark to create"
// @Success      201 {object} response.SuccessResponse{data=dto.BookmarkResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /folders/{folderId}/bookmarks [post]
func (h *BookmarkHandler) CreateBookmark(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid folder ID")
		return
	}

	var req dto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	bookmark, err := h.bookmarkService.CreateBookmark(c.Request.Context(), folderID, &req, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, bookmark)
}

// UpdateBookmark godoc
// @Summary      Update a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        bookmarkId path string true "Bookmark ID (UUID)"
// @Param        request body dto.UpdateBookmarkRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.BookmarkResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /bookmarks/{bookmarkId} [put]
func (h *BookmarkHandler) UpdateBookmark(c *gin.Context) {
	bookmarkID, err := uuid.Parse(c.Param("bookmarkId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid bookmark ID")
		return
	}

	var req dto.UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	bookmark, err := h.bookmarkService.UpdateBookmark(c.Request.Context(), bookmarkID, &req, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, bookmark)
}

// DeleteBookmark godoc
// @Summary      Delete a bookmark
// @Tags         bookmarks
// @Produce      json
// @Param        bookmarkId path string true "Bookmark ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /bookmarks/{bookmarkId} [delete]
func (h *BookmarkHandler) DeleteBookmark(c *gin.Context) {
	bookmarkID, err := uuid.Parse(c.Param("bookmarkId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid bookmark ID")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.bookmarkService.DeleteBookmark(c.Request.Context(), bookmarkID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Bookmark deleted"})
}

// ReorderBookmarks godoc
// @Summary      Reorder a folder's bookmarks
// @Description  Rewrites bookmark positions to match the given id order. The list must cover the folder's bookmarks exactly.
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        folderId path string true "Folder ID (UUID)"
// @Param        request body dto.ReorderBookmarksRequest true "Full bookmark ordering"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /folders/{folderId}/bookmarks/reorder [put]
func (h *BookmarkHandler) ReorderBookmarks(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid folder ID")
		return
	}

	var req dto.ReorderBookmarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.bookmarkService.ReorderBookmarks(c.Request.Context(), folderID, &req, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Bookmarks reordered"})
}
