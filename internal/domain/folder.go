package domain

import "github.com/google/uuid"

// Folder represents a user-owned named collection of bookmarks
type Folder struct {
	BaseModel
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_folders_owner_id;uniqueIndex:uq_folders_owner_name,priority:1" json:"ownerId"`
	Name        string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_folders_owner_name,priority:2" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Color       string     `gorm:"type:varchar(20)" json:"color"`
	Bookmarks   []Bookmark `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE" json:"bookmarks,omitempty"`
}

// TableName specifies the table name for Folder
func (Folder) TableName() string {
	return "folders"
}
