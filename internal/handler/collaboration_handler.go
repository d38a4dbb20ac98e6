package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"linkboard-api/internal/dto"
	"linkboard-api/internal/response"
	"linkboard-api/internal/service"
)

// CollaborationHandler handles invitation and collaboration endpoints
// for folders and boards.
type CollaborationHandler struct {
	collabService     service.CollaborationService
	invitationService service.InvitationService
}

// NewCollaborationHandler creates a new CollaborationHandler
func NewCollaborationHandler(collabService service.CollaborationService, invitationService service.InvitationService) *CollaborationHandler {
	return &CollaborationHandler{collabService: collabService, invitationService: invitationService}
}

// InviteToFolder godoc
// @Summary      Invite an email to a folder
// @Description  Creates or refreshes a pending folder invitation. Requires an editing role on the folder.
// @Tags         collaborations
// @Accept       json
// @Produce      json
// @Param        folderId path string true "Folder ID (UUID)"
// @Param        request body dto.InviteRequest true "Invitation"
// @Success      201 {object} response.SuccessResponse{data=dto.FolderCollaborationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /folders/{folderId}/collaborations [post]
func (h *CollaborationHandler) InviteToFolder(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid folder ID")
		return
	}

	var req dto.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	collab, err := h.collabService.InviteToFolder(c.Request.Context(), folderID, &req, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, collab)
}

// InviteToBoard godoc
// @Summary      Invite an email to a board
// @Description  Creates or refreshes a pending board invitation. Requires an editing role on the board.
// @Tags         collaborations
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.InviteRequest true "Invitation"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardCollaborationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /boards/{boardId}/collaborations [post]
func (h *CollaborationHandler) InviteToBoard(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	var req dto.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	collab, err := h.collabService.InviteToBoard(c.Request.Context(), boardID, &req, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, collab)
}

// RespondToFolderInvitation godoc
// @Summary      Accept or decline a folder invitation
// @Description  Only the invitee may respond, and only while the invitation is pending.
// @Tags         collaborations
// @Accept       json
// @Produce      json
// @Param        collaborationId path string true "Collaboration ID (UUID)"
// @Param        request body dto.RespondRequest true "Response"
// @Success      200 {object} response.SuccessResponse{data=dto.FolderCollaborationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /collaborations/folders/{collaborationId}/respond [post]
func (h *CollaborationHandler) RespondToFolderInvitation(c *gin.Context) {
	collabID, err := uuid.Parse(c.Param("collaborationId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid collaboration ID")
		return
	}

	var req dto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	collab, err := h.collabService.RespondToFolderInvitation(c.Request.Context(), collabID, req.Accept, auth.UserID, auth.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, collab)
}

// RespondToBoardInvitation godoc
// @Summary      Accept or decline a board invitation
// @Description  Only the invitee may respond, and only while the invitation is pending.
// @Tags         collaborations
// @Accept       json
// @Produce      json
// @Param        collaborationId path string true "Collaboration ID (UUID)"
// @Param        request body dto.RespondRequest true "Response"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardCollaborationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /collaborations/boards/{collaborationId}/respond [post]
func (h *CollaborationHandler) RespondToBoardInvitation(c *gin.Context) {
	collabID, err := uuid.Parse(c.Param("collaborationId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid collaboration ID")
		return
	}

	var req dto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	collab, err := h.collabService.RespondToBoardInvitation(c.Request.Context(), collabID, req.Accept, auth.UserID, auth.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, collab)
}

// ListFolderCollaborations godoc
// @Summary      List folder collaborations
// @Tags         collaborations
// @Produce      json
// @Param        folderId path string true "Folder ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.FolderCollaborationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /folders/{folderId}/collaborations [get]
func (h *CollaborationHandler) ListFolderCollaborations(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid folder ID")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	collabs, err := h.collabService.ListFolderCollaborations(c.Request.Context(), folderID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, collabs)
}

// ListBoardCollaborations godoc
// @Summary      List board collaborations
// @Tags         collaborations
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.BoardCollaborationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /boards/{boardId}/collaborations [get]
func (h *CollaborationHandler) ListBoardCollaborations(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	collabs, err := h.collabService.ListBoardCollaborations(c.Request.Context(), boardID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, collabs)
}

// RemoveFolderCollaboration godoc
// @Summary      Remove a folder collaboration
// @Description  Removes a collaborator or revokes a pending invitation. Owner only.
// @Tags         collaborations
// @Produce      json
// @Param        collaborationId path string true "Collaboration ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /collaborations/folders/{collaborationId} [delete]
func (h *CollaborationHandler) RemoveFolderCollaboration(c *gin.Context) {
	collabID, err := uuid.Parse(c.Param("collaborationId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid collaboration ID")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.collabService.RemoveFolderCollaboration(c.Request.Context(), collabID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Collaboration removed"})
}

// RemoveBoardCollaboration godoc
// @Summary      Remove a board collaboration
// @Description  Removes a collaborator or revokes a pending invitation. Owner only.
// @Tags         collaborations
// @Produce      json
// @Param        collaborationId path string true "Collaboration ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /collaborations/boards/{collaborationId} [delete]
func (h *CollaborationHandler) RemoveBoardCollaboration(c *gin.Context) {
	collabID, err := uuid.Parse(c.Param("collaborationId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid collaboration ID")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.collabService.RemoveBoardCollaboration(c.Request.Context(), collabID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Collaboration removed"})
}

// GetPendingFolderInvitations godoc
// @Summary      List pending folder invitations
// @Description  Returns the caller's pending folder invitations, matched by user id or invite email
// @Tags         collaborations
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.PendingInvitationsResponse}
// @Security     BearerAuth
// @Router       /collaborations/pending [get]
// @Router       /collaborations/folders/pending [get]
func (h *CollaborationHandler) GetPendingFolderInvitations(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	invitations, err := h.invitationService.GetPendingFolderInvitations(c.Request.Context(), auth.UserID, auth.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invitations)
}

// GetPendingBoardInvitations godoc
// @Summary      List board invitations
// @Description  Returns the caller's non-declined board invitations joined with their boards
// @Tags         collaborations
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.PendingBoardInvitationsResponse}
// @Security     BearerAuth
// @Router       /boards/collaborations/pending [get]
// @Router       /collaborations/boards/pending [get]
func (h *CollaborationHandler) GetPendingBoardInvitations(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	invitations, err := h.invitationService.GetPendingBoardInvitations(c.Request.Context(), auth.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invitations)
}
