package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookmarkRequest represents the request to add a bookmark to a folder
type CreateBookmarkRequest struct {
	Title       string `json:"title" binding:"required,max=255" example:"Go Blog"`
	URL         string `json:"url" binding:"required" example:"https://go.dev/blog"`
	Description string `json:"description" binding:"max=2000"`
	Favicon     string `json:"favicon" binding:"omitempty,max=2000"`
}

// UpdateBookmarkRequest represents the request to update a bookmark.
// Nil fields are left unchanged.
type UpdateBookmarkRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=255"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Favicon     *string `json:"favicon,omitempty" binding:"omitempty,max=2000"`
}

// ReorderBookmarksRequest carries the full ordering of a folder's bookmarks
type ReorderBookmarksRequest struct {
	BookmarkIDs []uuid.UUID `json:"bookmarkIds" binding:"required,min=1"`
}

// BookmarkResponse represents a bookmark
type BookmarkResponse struct {
	ID          uuid.UUID `json:"id"`
	FolderID    uuid.UUID `json:"folderId"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Favicon     string    `json:"favicon"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
