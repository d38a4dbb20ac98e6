package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
)

// FolderRepository defines the interface for folder data access
type FolderRepository interface {
	Create(ctx context.Context, folder *domain.Folder) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	FindByIDWithBookmarks(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Folder, error)
	FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Folder, error)
	Update(ctx context.Context, folder *domain.Folder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// folderRepositoryImpl is the GORM implementation of FolderRepository
type folderRepositoryImpl struct {
	db *gorm.DB
}

// NewFolderRepository creates a new instance of FolderRepository
func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepositoryImpl{db: db}
}

// Create creates a new folder
func (r *folderRepositoryImpl) Create(ctx context.Context, folder *domain.Folder) error {
	return r.db.WithContext(ctx).Create(folder).Error
}

// FindByID finds a folder by ID without its bookmarks
func (r *folderRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	var folder domain.Folder
	if err := r.db.WithContext(ctx).First(&folder, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// FindByIDWithBookmarks finds a folder with its bookmarks in position order
func (r *folderRepositoryImpl) FindByIDWithBookmarks(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	var folder domain.Folder
	if err := r.db.WithContext(ctx).
		Preload("Bookmarks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC")
		}).
		First(&folder, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// FindByOwner finds all folders owned by a user, newest first
func (r *folderRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Folder, error) {
	var folders []*domain.Folder
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

// FindByOwnerAndName finds a folder by its unique (owner, name) pair.
// Returns nil, nil when no such folder exists.
func (r *folderRepositoryImpl) FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error) {
	var folder domain.Folder
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		First(&folder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

// FindByIDs finds folders by their IDs
func (r *folderRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Folder, error) {
	if len(ids) == 0 {
		return []*domain.Folder{}, nil
	}
	var folders []*domain.Folder
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

// Update saves the full folder row
func (r *folderRepositoryImpl) Update(ctx context.Context, folder *domain.Folder) error {
	return r.db.WithContext(ctx).Save(folder).Error
}

// Delete soft deletes a folder and its dependents
func (r *folderRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("folder_id = ?", id).Delete(&domain.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("folder_id = ?", id).Delete(&domain.FolderCollaboration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Folder{}, "id = ?", id).Error
	})
}
