package dto

import (
	"time"

	"github.com/google/uuid"

	"linkboard-api/internal/domain"
)

// CreateCardRequest represents the request to add a card to a board
type CreateCardRequest struct {
	Title          string              `json:"title" binding:"required,max=255" example:"Write announcement"`
	Description    string              `json:"description" binding:"max=2000"`
	Status         domain.CardStatus   `json:"status" binding:"omitempty" example:"todo"`
	Priority       domain.CardPriority `json:"priority" binding:"omitempty" example:"medium"`
	LinkedFolderID *uuid.UUID          `json:"linkedFolderId,omitempty"`
}

// UpdateCardRequest represents the request to update a card.
// Nil fields are left unchanged. A status change is recorded on the
// board timeline.
type UpdateCardRequest struct {
	Title          *string              `json:"title,omitempty" binding:"omitempty,max=255"`
	Description    *string              `json:"description,omitempty" binding:"omitempty,max=2000"`
	Status         *domain.CardStatus   `json:"status,omitempty"`
	Priority       *domain.CardPriority `json:"priority,omitempty"`
	LinkedFolderID *uuid.UUID           `json:"linkedFolderId,omitempty"`
}

// CardResponse represents a card
type CardResponse struct {
	ID             uuid.UUID           `json:"id"`
	BoardID        uuid.UUID           `json:"boardId"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Status         domain.CardStatus   `json:"status"`
	Priority       domain.CardPriority `json:"priority"`
	LinkedFolderID *uuid.UUID          `json:"linkedFolderId,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
