package dto

import (
	"time"

	"github.com/google/uuid"

	"linkboard-api/internal/domain"
)

// CreateTimelineEntryRequest represents a comment posted to a board timeline
type CreateTimelineEntryRequest struct {
	Content string   `json:"content" binding:"required,max=5000"`
	Images  []string `json:"images,omitempty" binding:"omitempty,max=10,dive,url"`
}

// TimelineEntryResponse represents one activity record on a board
type TimelineEntryResponse struct {
	ID              uuid.UUID                `json:"id"`
	BoardID         uuid.UUID                `json:"boardId"`
	AuthorID        uuid.UUID                `json:"authorId"`
	AuthorEmail     string                   `json:"authorEmail"`
	AuthorName      string                   `json:"authorName"`
	AuthorImage     *string                  `json:"authorImage,omitempty"`
	AuthorRole      domain.CollaborationRole `json:"authorRole"`
	Content         string                   `json:"content"`
	Action          domain.TimelineAction    `json:"action"`
	PreviousContent *string                  `json:"previousContent,omitempty"`
	Images          []string                 `json:"images,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
}
