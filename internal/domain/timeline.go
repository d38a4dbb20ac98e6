package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimelineAction represents what a timeline entry records
type TimelineAction string

const (
	TimelineActionCreated   TimelineAction = "created"
	TimelineActionUpdated   TimelineAction = "updated"
	TimelineActionCommented TimelineAction = "commented"
)

// Valid reports whether the action is one of the known values
func (a TimelineAction) Valid() bool {
	switch a {
	case TimelineActionCreated, TimelineActionUpdated, TimelineActionCommented:
		return true
	}
	return false
}

// BoardTimelineEntry is an append-only activity record on a board.
// The author fields are a snapshot taken at write time; they are not
// updated when the user later changes their profile.
type BoardTimelineEntry struct {
	BaseModel
	BoardID         uuid.UUID         `gorm:"type:uuid;not null;index:idx_timeline_board_id" json:"boardId"`
	AuthorID        uuid.UUID         `gorm:"type:uuid;not null" json:"authorId"`
	AuthorEmail     string            `gorm:"type:varchar(255);not null" json:"authorEmail"`
	AuthorName      string            `gorm:"type:varchar(255)" json:"authorName"`
	AuthorImage     *string           `gorm:"type:text" json:"authorImage,omitempty"`
	AuthorRole      CollaborationRole `gorm:"type:varchar(20)" json:"authorRole"`
	Content         string            `gorm:"type:text;not null" json:"content"`
	Action          TimelineAction    `gorm:"type:varchar(20);not null" json:"action"`
	PreviousContent *string           `gorm:"type:text" json:"previousContent,omitempty"`
	Images          datatypes.JSON    `gorm:"type:jsonb" json:"images,omitempty"`
	Board           Board             `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
}

// TableName specifies the table name for BoardTimelineEntry
func (BoardTimelineEntry) TableName() string {
	return "board_timeline_entries"
}
