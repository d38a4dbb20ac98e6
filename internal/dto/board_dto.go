package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBoardRequest represents the request to create a board
type CreateBoardRequest struct {
	Name           string     `json:"name" binding:"required,max=255" example:"Launch plan"`
	Description    string     `json:"description" binding:"max=2000"`
	Content        string     `json:"content"`
	Color          string     `json:"color" binding:"omitempty,hexcolor"`
	LinkedFolderID *uuid.UUID `json:"linkedFolderId,omitempty"`
}

// UpdateBoardRequest represents the request to update a board.
// Nil fields are left unchanged.
type UpdateBoardRequest struct {
	Name           *string    `json:"name,omitempty" binding:"omitempty,max=255"`
	Description    *string    `json:"description,omitempty" binding:"omitempty,max=2000"`
	Content        *string    `json:"content,omitempty"`
	Color          *string    `json:"color,omitempty" binding:"omitempty,hexcolor"`
	LinkedFolderID *uuid.UUID `json:"linkedFolderId,omitempty"`
}

// BoardResponse represents a board without its cards
type BoardResponse struct {
	ID             uuid.UUID  `json:"id"`
	OwnerID        uuid.UUID  `json:"ownerId"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Content        string     `json:"content"`
	Color          string     `json:"color"`
	LinkedFolderID *uuid.UUID `json:"linkedFolderId,omitempty"`
	CardCount      int        `json:"cardCount"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// BoardDetailResponse represents a board with its cards
type BoardDetailResponse struct {
	BoardResponse
	Cards []CardResponse `json:"cards"`
}
