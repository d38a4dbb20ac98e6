package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"linkboard-api/internal/dto"
	"linkboard-api/internal/response"
	"linkboard-api/internal/service"
)

// FolderHandler handles folder endpoints
type FolderHandler struct {
	folderService service.FolderService
}

// NewFolderHandler creates a new FolderHandler
func NewFolderHandler(folderService service.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

// CreateFolder godoc
// @Summary      Create a folder
// @Description  Creates a bookmark folder owned by the caller. Folder names are unique per owner.
// @Tags         folders
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateFolderRequest true "Folder to create"
// @Success      201 {object} response.SuccessResponse{data=dto.FolderResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /folders [post]
func (h *FolderHandler) CreateFolder(c *gin.Context) {
	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	folder, err := h.folderService.CreateFolder(c.Request.Context(), &req, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, folder)
}

// GetFolders godoc
// @Summary      List folders
// @Description  Lists the caller's folders plus folders shared with them through accepted invitations
// @Tags         folders
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.FolderResponse}
// @Security     BearerAuth
// @Router       /folders [get]
func (h *FolderHandler) GetFolders(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	folders, err := h.folderService.GetFolders(c.Request.Context(), auth.UserID, auth.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, folders)
}

// GetFolder godoc
// @Summary      Get a folder
// @Description  Returns a folder with its bookmarks in display order
// @Tags         folders
// @Produce      json
// @Param        folderId path string true "Folder ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.FolderDetailResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /folders/{folderId} [get]
func (h *FolderHandler) GetFolder(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid folder ID")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	folder, err := h.folderService.GetFolder(c.Request.Context(), folderID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, folder)
}

// UpdateFolder godoc
// @Summary      Update a folder
// @Description  Updates name, description or color. Requires an editing role.
// @Tags         folders
// @Accept       json
// @Produce      json
// @Param        folderId path string true "Folder ID (UUID)"
// @Param        request body dto.UpdateFolderRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.FolderResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /folders/{folderId} [put]
func (h *FolderHandler) UpdateFolder(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid folder ID")
		return
	}

	var req dto.UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	folder, err := h.folderService.UpdateFolder(c.Request.Context(), folderID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, folder)
}

// DeleteFolder godoc
// @Summary      Delete a folder
// @Description  Deletes a folder with its bookmarks and collaborations. Owner only.
// @Tags         folders
// @Produce      json
// @Param        folderId path string true "Folder ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /folders/{folderId} [delete]
func (h *FolderHandler) DeleteFolder(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid folder ID")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.folderService.DeleteFolder(c.Request.Context(), folderID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Folder deleted"})
}
