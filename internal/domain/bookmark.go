package domain

import "github.com/google/uuid"

// Bookmark represents a saved link inside a folder
type Bookmark struct {
	BaseModel
	FolderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_bookmarks_folder_id" json:"folderId"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	URL         string    `gorm:"type:text;not null" json:"url"`
	Description string    `gorm:"type:text" json:"description"`
	Favicon     string    `gorm:"type:text" json:"favicon"`
	Position    int       `gorm:"type:int;not null;default:0;index:idx_bookmarks_position" json:"position"`
}

// TableName specifies the table name for Bookmark
func (Bookmark) TableName() string {
	return "bookmarks"
}
