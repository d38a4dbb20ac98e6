package domain

import "github.com/google/uuid"

// CardStatus represents the kanban column a card sits in
type CardStatus string

const (
	CardStatusTodo       CardStatus = "todo"
	CardStatusInProgress CardStatus = "in-progress"
	CardStatusDone       CardStatus = "done"
)

// Valid reports whether the status is one of the known values
func (s CardStatus) Valid() bool {
	switch s {
	case CardStatusTodo, CardStatusInProgress, CardStatusDone:
		return true
	}
	return false
}

// CardPriority represents the urgency of a card
type CardPriority string

const (
	CardPriorityLow    CardPriority = "low"
	CardPriorityMedium CardPriority = "medium"
	CardPriorityHigh   CardPriority = "high"
)

// Valid reports whether the priority is one of the known values
func (p CardPriority) Valid() bool {
	switch p {
	case CardPriorityLow, CardPriorityMedium, CardPriorityHigh:
		return true
	}
	return false
}

// BoardCard represents a kanban card on a board
type BoardCard struct {
	BaseModel
	BoardID        uuid.UUID    `gorm:"type:uuid;not null;index:idx_board_cards_board_id" json:"boardId"`
	Title          string       `gorm:"type:varchar(255);not null" json:"title"`
	Description    string       `gorm:"type:text" json:"description"`
	Status         CardStatus   `gorm:"type:varchar(20);not null;default:'todo';index:idx_board_cards_status" json:"status"`
	Priority       CardPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	LinkedFolderID *uuid.UUID   `gorm:"type:uuid" json:"linkedFolderId,omitempty"`
	Board          Board        `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
}

// TableName specifies the table name for BoardCard
func (BoardCard) TableName() string {
	return "board_cards"
}
