package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateFolderRequest represents the request to create a folder
type CreateFolderRequest struct {
	Name        string `json:"name" binding:"required,max=255" example:"Reading List"`
	Description string `json:"description" binding:"max=2000"`
	Color       string `json:"color" binding:"omitempty,hexcolor" example:"#4f46e5"`
}

// UpdateFolderRequest represents the request to update a folder.
// Nil fields are left unchanged.
type UpdateFolderRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Color       *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
}

// FolderResponse represents a folder without its bookmarks
type FolderResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FolderDetailResponse represents a folder with its ordered bookmarks
type FolderDetailResponse struct {
	FolderResponse
	Bookmarks []BookmarkResponse `json:"bookmarks"`
}

// PublicFolderResponse is the read-only projection served on the public
// share endpoint. Owner identity is withheld.
type PublicFolderResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Color       string             `json:"color"`
	Bookmarks   []BookmarkResponse `json:"bookmarks"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
