package domain

import "github.com/google/uuid"

// Board represents a collaborative workspace containing cards and a timeline
type Board struct {
	BaseModel
	OwnerID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_boards_owner_id" json:"ownerId"`
	Name           string     `gorm:"type:varchar(255);not null" json:"name"`
	Description    string     `gorm:"type:text" json:"description"`
	Content        string     `gorm:"type:text" json:"content"`
	Color          string     `gorm:"type:varchar(20)" json:"color"`
	LinkedFolderID *uuid.UUID `gorm:"type:uuid;index:idx_boards_linked_folder_id" json:"linkedFolderId,omitempty"`
	// CardCount is a denormalized counter maintained alongside card
	// writes. Not transactional with the card insert; may briefly lag.
	CardCount int         `gorm:"type:int;not null;default:0" json:"cardCount"`
	Cards     []BoardCard `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"cards,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
