package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
)

// BookmarkRepository defines the interface for bookmark data access
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *domain.Bookmark) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Bookmark, error)
	FindByFolderID(ctx context.Context, folderID uuid.UUID) ([]*domain.Bookmark, error)
	CountByFolderID(ctx context.Context, folderID uuid.UUID) (int64, error)
	Update(ctx context.Context, bookmark *domain.Bookmark) error
	UpdatePositions(ctx context.Context, folderID uuid.UUID, orderedIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// bookmarkRepositoryImpl is the GORM implementation of BookmarkRepository
type bookmarkRepositoryImpl struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new instance of BookmarkRepository
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepositoryImpl{db: db}
}

// Create creates a new bookmark
func (r *bookmarkRepositoryImpl) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

// FindByID finds a bookmark by ID
func (r *bookmarkRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Bookmark, error) {
	var bookmark domain.Bookmark
	if err := r.db.WithContext(ctx).First(&bookmark, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// FindByFolderID finds a folder's bookmarks in position order
func (r *bookmarkRepositoryImpl) FindByFolderID(ctx context.Context, folderID uuid.UUID) ([]*domain.Bookmark, error) {
	var bookmarks []*domain.Bookmark
	if err := r.db.WithContext(ctx).
		Where("folder_id = ?", folderID).
		Order("position ASC, created_at ASC").
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// CountByFolderID counts the live bookmarks in a folder
func (r *bookmarkRepositoryImpl) CountByFolderID(ctx context.Context, folderID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Bookmark{}).
		Where("folder_id = ?", folderID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update saves the full bookmark row
func (r *bookmarkRepositoryImpl) Update(ctx context.Context, bookmark *domain.Bookmark) error {
	return r.db.WithContext(ctx).Save(bookmark).Error
}

// UpdatePositions rewrites the position column to match orderedIDs.
// IDs outside the folder are ignored by the WHERE clause.
func (r *bookmarkRepositoryImpl) UpdatePositions(ctx context.Context, folderID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&domain.Bookmark{}).
				Where("id = ? AND folder_id = ?", id, folderID).
				UpdateColumn("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete soft deletes a bookmark by ID
func (r *bookmarkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Bookmark{}, "id = ?", id).Error
}
