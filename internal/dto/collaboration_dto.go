package dto

import (
	"time"

	"github.com/google/uuid"

	"linkboard-api/internal/domain"
)

// InviteRequest represents the request to invite an email to a folder or board
type InviteRequest struct {
	Email string                   `json:"email" binding:"required,email" example:"b@example.com"`
	Role  domain.CollaborationRole `json:"role" binding:"required" example:"editor"`
}

// RespondRequest represents the invitee's answer to a pending invitation
type RespondRequest struct {
	Accept bool `json:"accept"`
}

// FolderCollaborationResponse represents a folder invitation record
type FolderCollaborationResponse struct {
	ID          uuid.UUID                  `json:"id"`
	FolderID    uuid.UUID                  `json:"folderId"`
	UserID      *uuid.UUID                 `json:"userId,omitempty"`
	Email       string                     `json:"email"`
	Role        domain.CollaborationRole   `json:"role"`
	InviterID   uuid.UUID                  `json:"inviterId"`
	InviterName string                     `json:"inviterName"`
	Status      domain.CollaborationStatus `json:"status"`
	CreatedAt   time.Time                  `json:"createdAt"`
	// Folder is present when the owning folder still exists
	Folder *FolderResponse `json:"folder,omitempty"`
}

// BoardCollaborationResponse represents a board invitation record
type BoardCollaborationResponse struct {
	ID          uuid.UUID                  `json:"id"`
	BoardID     uuid.UUID                  `json:"boardId"`
	UserID      *uuid.UUID                 `json:"userId,omitempty"`
	Email       string                     `json:"email"`
	Name        string                     `json:"name"`
	Image       *string                    `json:"image,omitempty"`
	Role        domain.CollaborationRole   `json:"role"`
	InviterID   uuid.UUID                  `json:"inviterId"`
	Status      domain.CollaborationStatus `json:"status"`
	InvitedAt   time.Time                  `json:"invitedAt"`
	RespondedAt *time.Time                 `json:"respondedAt,omitempty"`
	// Board is present when the owning board still exists; a dangling
	// collaboration is returned without it.
	Board *BoardResponse `json:"board,omitempty"`
}

// PendingInvitationsResponse is the merged view of a user's open invitations
type PendingInvitationsResponse struct {
	Invitations []FolderCollaborationResponse `json:"invitations"`
}

// PendingBoardInvitationsResponse is the board-side invitation listing
type PendingBoardInvitationsResponse struct {
	Invitations []BoardCollaborationResponse `json:"invitations"`
}
