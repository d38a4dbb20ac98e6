package domain

import (
	"time"

	"github.com/google/uuid"
)

// CollaborationStatus represents the lifecycle of an invitation
type CollaborationStatus string

const (
	CollaborationPending  CollaborationStatus = "pending"
	CollaborationAccepted CollaborationStatus = "accepted"
	CollaborationDeclined CollaborationStatus = "declined"
)

// Valid reports whether the status is one of the known values
func (s CollaborationStatus) Valid() bool {
	switch s {
	case CollaborationPending, CollaborationAccepted, CollaborationDeclined:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving to the target status is legal.
// Transitions are one-directional: pending may move to accepted or
// declined; accepted and declined are terminal.
func (s CollaborationStatus) CanTransitionTo(target CollaborationStatus) bool {
	if s != CollaborationPending {
		return false
	}
	return target == CollaborationAccepted || target == CollaborationDeclined
}

// CollaborationRole represents the permission level an invitation grants
type CollaborationRole string

const (
	CollaborationRoleOwner  CollaborationRole = "owner"
	CollaborationRoleEditor CollaborationRole = "editor"
	CollaborationRoleViewer CollaborationRole = "viewer"
)

// Valid reports whether the role is one of the known values
func (r CollaborationRole) Valid() bool {
	switch r {
	case CollaborationRoleOwner, CollaborationRoleEditor, CollaborationRoleViewer:
		return true
	}
	return false
}

// CanEdit reports whether the role grants write access
func (r CollaborationRole) CanEdit() bool {
	return r == CollaborationRoleOwner || r == CollaborationRoleEditor
}

// FolderCollaboration represents an invitation granting a role on a folder.
// UserID stays nil until the invitee signs in with the invited email.
type FolderCollaboration struct {
	BaseModel
	FolderID    uuid.UUID           `gorm:"type:uuid;not null;index:idx_folder_collabs_folder_id;uniqueIndex:uq_folder_collabs_folder_email,priority:1" json:"folderId"`
	UserID      *uuid.UUID          `gorm:"type:uuid;index:idx_folder_collabs_user_id" json:"userId,omitempty"`
	Email       string              `gorm:"type:varchar(255);not null;index:idx_folder_collabs_email;uniqueIndex:uq_folder_collabs_folder_email,priority:2" json:"email"`
	Role        CollaborationRole   `gorm:"type:varchar(20);not null;default:'viewer'" json:"role"`
	InviterID   uuid.UUID           `gorm:"type:uuid;not null" json:"inviterId"`
	InviterName string              `gorm:"type:varchar(255)" json:"inviterName"`
	Status      CollaborationStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_folder_collabs_status" json:"status"`
	Folder      Folder              `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE" json:"folder,omitempty"`
}

// TableName specifies the table name for FolderCollaboration
func (FolderCollaboration) TableName() string {
	return "folder_collaborations"
}

// BoardCollaboration represents an invitation granting a role on a board
type BoardCollaboration struct {
	BaseModel
	BoardID     uuid.UUID           `gorm:"type:uuid;not null;index:idx_board_collabs_board_id;uniqueIndex:uq_board_collabs_board_email,priority:1" json:"boardId"`
	UserID      *uuid.UUID          `gorm:"type:uuid;index:idx_board_collabs_user_id" json:"userId,omitempty"`
	Email       string              `gorm:"type:varchar(255);not null;index:idx_board_collabs_email;uniqueIndex:uq_board_collabs_board_email,priority:2" json:"email"`
	Name        string              `gorm:"type:varchar(255)" json:"name"`
	Image       *string             `gorm:"type:text" json:"image,omitempty"`
	Role        CollaborationRole   `gorm:"type:varchar(20);not null;default:'viewer'" json:"role"`
	InviterID   uuid.UUID           `gorm:"type:uuid;not null" json:"inviterId"`
	Status      CollaborationStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_board_collabs_status" json:"status"`
	InvitedAt   time.Time           `gorm:"type:timestamp;not null;default:now()" json:"invitedAt"`
	RespondedAt *time.Time          `gorm:"type:timestamp" json:"respondedAt,omitempty"`
	Board       Board               `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
}

// TableName specifies the table name for BoardCollaboration
func (BoardCollaboration) TableName() string {
	return "board_collaborations"
}
